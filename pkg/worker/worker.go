package worker

import (
	"bitcat/config"
	"bitcat/pkg/bitflip"
	"bitcat/pkg/homoglyph"
	"bitcat/pkg/model"
	"bitcat/pkg/screenshot"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"time"

	tld "github.com/jpillora/go-tld"
	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// RunCertCheckWorker parses certificates and raises an alert when one
// of their names matches a squat pattern of a monitored domain
func RunCertCheckWorker(cfg *config.Configuration) {
	for msg := range cfg.Messages {
		result, err := ParseResultCertificate(msg)
		if err != nil {
			cfg.Log.Warnf("Error parsing message: %s", err)
			continue
		}
		if result == nil {
			continue
		}
		if !IsMatchingCert(cfg, result) {
			continue
		}
		domain := alertableDomain(result)
		if domain == "" {
			continue
		}
		result.Registrar, result.CreationDate = getWhoIs(domain, cfg)
		if cfg.IgnoreOlderThan > 0 {
			if result.CreationDate == "" {
				continue
			}
			created, err := time.Parse("2006-01-02", result.CreationDate)
			if err != nil {
				continue
			}
			if time.Since(created).Hours()/24 > float64(cfg.IgnoreOlderThan) {
				continue
			}
		}
		result.Addresses = fetchIPv4Addresses(domain, cfg)
		if cfg.TakeScreenshot {
			result.Screenshot = screenshot.TakeScreenshot(domain, cfg)
		}
		cfg.Buffer <- result
	}
}

// ParseResultCertificate parses certificate details
func ParseResultCertificate(msg []byte) (*model.Result, error) {
	var c model.Certificate

	err := json.Unmarshal(msg, &c)
	if err != nil || c.MessageType == "heartbeat" {
		return nil, err
	}

	return &model.Result{
		Domain:    c.Data.LeafCert.Subject["CN"],
		Issuer:    c.Data.LeafCert.Issuer["O"],
		SAN:       c.Data.LeafCert.AllDomains,
		Addresses: []string{},
	}, nil
}

// alertableDomain picks the first name of the certificate that is
// concrete enough to be enriched, unwrapping wildcards
func alertableDomain(result *model.Result) string {
	domains := append([]string{result.Domain}, result.SAN...)
	for _, d := range domains {
		d = strings.TrimPrefix(d, "*.")
		if d == "" || strings.Contains(d, "*") {
			continue
		}
		return d
	}
	return ""
}

// IsMatchingCert checks if one of the certificate names matches a
// monitored domain, and qualifies the attack on the result. Names
// belonging to a monitored domain itself never match.
func IsMatchingCert(cfg *config.Configuration, result *model.Result) bool {
	domainList := append([]string{result.Domain}, result.SAN...)
	for _, domain := range domainList {
		domain = strings.ToLower(strings.TrimPrefix(domain, "*."))
		if domain == "" {
			continue
		}
		if isProtected(cfg, domain) {
			continue
		}
		if isIDN(domain) {
			unicodeDomain, _ := idna.ToUnicode(domain)
			normalized := norm.NFC.String(unicodeDomain)
			skeleton := homoglyph.ReplaceHomoglyph(normalized, cfg.HomoglyphPatterns)
			if _, protected, _, ok := classify(cfg, skeleton); ok {
				result.IDN = unicodeDomain
				result.UnicodeIDN = normalized
				result.Attack = "homoglyph"
				result.ProtectedDomain = protected
				return true
			}
			continue
		}
		if attack, protected, label, ok := classify(cfg, domain); ok {
			result.Attack = attack
			result.ProtectedDomain = protected
			if attack == "bitsquatting" {
				if patterns := cfg.InclusionPatterns[protected]; len(patterns) > 0 {
					if pos, bit, found := bitflip.FlipPosition([]byte(patterns[0]), []byte(label)); found {
						result.Flip = fmt.Sprintf("byte %d, bit %d", pos, bit)
					}
				}
			}
			return true
		}
	}
	return false
}

// isProtected reports whether the name belongs to one of the monitored
// domains themselves, so that legitimate certificates never alert
func isProtected(cfg *config.Configuration, domain string) bool {
	registrable := config.Registrable(domain)
	for _, d := range cfg.Domains {
		if registrable == config.Registrable(d) {
			return true
		}
	}
	return false
}

// classify qualifies the registrable label of a candidate name against
// every monitored domain
func classify(cfg *config.Configuration, domain string) (attack, protected, label string, found bool) {
	label = config.RegistrableLabel(domain)
	if label == "" {
		return "", "", "", false
	}
	for _, d := range cfg.Domains {
		for _, pattern := range cfg.InclusionPatterns[d] {
			if label == pattern {
				return "tldsquatting", d, label, true
			}
		}
		if contains(cfg.BitsquattingPatterns[d], label) {
			return "bitsquatting", d, label, true
		}
		if contains(cfg.OmissionPatterns[d], label) {
			return "omission", d, label, true
		}
		if contains(cfg.RepetitionPatterns[d], label) {
			return "repetition", d, label, true
		}
		if contains(cfg.TranspositionPatterns[d], label) {
			return "transposition", d, label, true
		}
		if contains(cfg.VowelSwapPatterns[d], label) {
			return "vowelswap", d, label, true
		}
		for _, pattern := range cfg.InclusionPatterns[d] {
			if strings.Contains(domain, pattern) {
				return "inclusion", d, label, true
			}
		}
	}
	return "", "", "", false
}

func contains(list []string, s string) bool {
	for _, i := range list {
		if i == s {
			return true
		}
	}
	return false
}

// isIDN checks if domain is an IDN
func isIDN(domain string) bool {
	s := strings.Split(domain, ".")
	for _, i := range s {
		if strings.HasPrefix(i, "xn--") {
			return true
		}
	}
	return false
}

// fetchIPv4Addresses resolves domain to get its IPv4 addresses
func fetchIPv4Addresses(domain string, cfg *config.Configuration) []string {
	var ipsList []string

	ips, err := net.LookupIP(domain)
	if err != nil || len(ips) == 0 {
		cfg.Log.Debugf("Could not fetch IPv4 addresses of domain %s", domain)
		return ipsList
	}
	for _, j := range ips {
		if j.To4() != nil {
			ipsList = append(ipsList, j.String())
		}
	}
	return ipsList
}

// getWhoIs gets domain WHOIS details
func getWhoIs(domain string, cfg *config.Configuration) (registrar, creationDate string) {
	u, err := tld.Parse("https://" + domain)
	if u == nil || err != nil {
		return "", ""
	}
	if u.Domain == "" || u.TLD == "" {
		cfg.Log.Warningf("Could not get WHOIS details of domain %s", domain)
		return "", ""
	}
	if cfg.WhoisLimiter != nil {
		if err := cfg.WhoisLimiter.Wait(context.Background()); err != nil {
			return "", ""
		}
	}
	whoisRaw, err := whois.Whois(u.Domain + "." + u.TLD)
	if err != nil {
		cfg.Log.Warningf("Could not get WHOIS details of domain %s: %v", domain, err)
		return "", ""
	}
	result, err := whoisparser.Parse(whoisRaw)
	if err != nil {
		cfg.Log.Warningf("Could not parse WHOIS details of domain %s: %v", domain, err)
		return "", ""
	}
	if result.Registrar == nil || result.Domain == nil {
		return "", ""
	}
	return result.Registrar.Name, strings.Split(result.Domain.CreatedDate, "T")[0]
}
