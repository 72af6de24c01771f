package vowelswap

import (
	"bitcat/helper"
	"fmt"
)

var vowels = []rune{'a', 'e', 'i', 'o', 'u', 'y'}

// GetVowelSwapPatterns returns a list of strings with one vowel
// replaced by another
func GetVowelSwapPatterns(domain string) []string {
	results := []string{}
	runes := []rune(domain)
	for i, c := range runes {
		if !isVowel(c) {
			continue
		}
		for _, v := range vowels {
			if c != v {
				results = append(results, fmt.Sprintf("%s%c%s", string(runes[:i]), v, string(runes[i+1:])))
			}
		}
	}
	return helper.RemoveDuplicate(results)
}

func isVowel(c rune) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
