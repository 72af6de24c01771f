package main

import (
	"fmt"
	"os"

	"bitcat/pkg/checker"

	"github.com/fatih/color"
)

// runCheck tells how each candidate name relates to the domain
func runCheck(domain string, candidates []string, noColor bool) {
	if noColor {
		color.NoColor = true
	}
	c, err := checker.New(domain)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	squats := 0
	for _, candidate := range candidates {
		result := c.Check(candidate)
		if result.Squat {
			squats++
		}
		fmt.Printf("%s: %s\n", candidate, verdict(c.Target, result))
	}
	if squats > 0 {
		os.Exit(1)
	}
}

// verdict renders a classification, red for the certain hits, yellow
// for the other squat classes, cyan for a plausible typo
func verdict(target string, r checker.Result) string {
	switch {
	case r.Attack == "identical":
		return color.RedString("identical to %s", target)
	case r.Attack == "bitsquatting" && r.Flip != "":
		return color.RedString("bitsquatting of %s (%s)", target, r.Flip)
	case r.Attack == "bitsquatting" || r.Attack == "homoglyph":
		return color.RedString("%s of %s", r.Attack, target)
	case r.Attack == "typo":
		return color.CyanString("typo of %s (distance 1)", target)
	case r.Attack != "":
		return color.YellowString("%s of %s", r.Attack, target)
	}
	return color.GreenString("unrelated to %s (distance %d)", target, r.Distance)
}
