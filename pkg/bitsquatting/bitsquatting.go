package bitsquatting

import (
	"bitcat/helper"
	"bitcat/pkg/bitflip"
	"bitcat/pkg/charset"
)

// GetBitsquattingPatterns returns the registrable variants of a label
// that are one flipped bit away from it
func GetBitsquattingPatterns(domain string) []string {
	results := []string{}
	seq, err := bitflip.Text(domain)
	if err != nil {
		return results
	}
	for pattern := range charset.Filter(seq, charset.DNS) {
		results = append(results, pattern)
	}
	return helper.RemoveDuplicate(results)
}
