// Package checker classifies candidate names against a protected
// domain, entirely offline.
package checker

import (
	"fmt"
	"slices"
	"strings"

	"bitcat/config"
	"bitcat/pkg/bitflip"
	"bitcat/pkg/homoglyph"

	"github.com/agnivade/levenshtein"
	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// Result describes how one candidate name relates to the protected
// domain. Attack is empty when the name is unrelated, Squat tells
// whether the name deserves an alert.
type Result struct {
	Attack   string
	Flip     string
	Distance int
	Squat    bool
}

// Checker holds the precomputed squat patterns of one protected domain
type Checker struct {
	Target string
	Label  string

	cfg        *config.Configuration
	homoglyphs map[string]string
}

// New builds a Checker for a protected domain
func New(domain string) (*Checker, error) {
	cfg := &config.Configuration{Domains: []string{domain}}
	if err := cfg.CompilePatterns(); err != nil {
		return nil, err
	}
	return &Checker{
		Target:     config.Registrable(domain),
		Label:      config.RegistrableLabel(domain),
		cfg:        cfg,
		homoglyphs: homoglyph.GetHomoglyphMap(),
	}, nil
}

// Check classifies a single candidate name
func (c *Checker) Check(candidate string) Result {
	name := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(candidate, "*."), "."))
	masked := false
	if strings.Contains(name, "xn--") {
		unicodeName, _ := idna.ToUnicode(name)
		normalized := norm.NFC.String(unicodeName)
		skeleton := homoglyph.ReplaceHomoglyph(normalized, c.homoglyphs)
		masked = skeleton != normalized
		name = skeleton
	}
	label := config.RegistrableLabel(name)

	result := Result{Distance: levenshtein.ComputeDistance(c.Label, label)}
	switch {
	case label == c.Label && config.Registrable(name) == c.Target:
		result.Attack = "identical"
	case label == c.Label:
		result.Attack = "tldsquatting"
	default:
		result.Attack, result.Flip = c.squatClass(name, label)
	}
	if result.Attack != "" && masked {
		result.Attack, result.Flip = "homoglyph", ""
	}
	if result.Attack == "" && result.Distance == 1 {
		result.Attack = "typo"
	}
	result.Squat = result.Attack != "" && result.Attack != "identical"
	return result
}

// squatClass matches the candidate label against the precomputed
// pattern sets, most specific first
func (c *Checker) squatClass(name, label string) (attack, flip string) {
	domain := c.cfg.Domains[0]
	sets := []struct {
		attack   string
		patterns []string
	}{
		{"bitsquatting", c.cfg.BitsquattingPatterns[domain]},
		{"omission", c.cfg.OmissionPatterns[domain]},
		{"repetition", c.cfg.RepetitionPatterns[domain]},
		{"transposition", c.cfg.TranspositionPatterns[domain]},
		{"vowelswap", c.cfg.VowelSwapPatterns[domain]},
	}
	for _, set := range sets {
		if !slices.Contains(set.patterns, label) {
			continue
		}
		if set.attack == "bitsquatting" {
			if pos, bit, ok := bitflip.FlipPosition([]byte(c.Label), []byte(label)); ok {
				flip = fmt.Sprintf("byte %d, bit %d", pos, bit)
			}
		}
		return set.attack, flip
	}
	for _, pattern := range c.cfg.InclusionPatterns[domain] {
		if strings.Contains(name, pattern) {
			return "inclusion", ""
		}
	}
	return "", ""
}
