package omission

import (
	"bitcat/helper"
	"fmt"
)

// GetOmissionPatterns returns a list of strings with one letter missing
func GetOmissionPatterns(domain string) []string {
	results := []string{}
	runes := []rune(domain)
	for i := range runes {
		results = append(results, fmt.Sprintf("%s%s", string(runes[:i]), string(runes[i+1:])))
	}
	return helper.RemoveDuplicate(results)
}
