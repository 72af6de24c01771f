package homoglyph

import (
	"strings"

	"github.com/picatz/homoglyphr"
)

// GetHomoglyphMap returns the unicode characters that look like a latin
// lowercase letter, mapped to the letter they resemble
func GetHomoglyphMap() map[string]string {
	alphabet := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z"}
	homoglyph := map[string]string{}
	for _, letter := range alphabet {
		for i := range homoglyphr.StreamAllRelatedCharacters(letter) {
			homoglyph[i] = letter
		}
	}
	return homoglyph
}

// ReplaceHomoglyph replaces every lookalike character in a domain by
// the latin letter it resembles
func ReplaceHomoglyph(domain string, homoglyphs map[string]string) string {
	var sb strings.Builder
	for _, r := range domain {
		if letter, ok := homoglyphs[string(r)]; ok {
			sb.WriteString(letter)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
