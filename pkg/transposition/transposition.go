package transposition

import (
	"bitcat/helper"
	"fmt"
)

// GetTranspositionPatterns returns a list of strings with two adjacent
// characters swapped
func GetTranspositionPatterns(domain string) []string {
	results := []string{}
	runes := []rune(domain)
	for i := 0; i < len(runes)-1; i++ {
		if runes[i+1] != runes[i] {
			results = append(results, fmt.Sprintf("%s%c%c%s", string(runes[:i]), runes[i+1], runes[i], string(runes[i+2:])))
		}
	}
	return helper.RemoveDuplicate(results)
}
