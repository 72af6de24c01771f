package config

import (
	"bitcat/pkg/bitsquatting"
	"bitcat/pkg/cache"
	"bitcat/pkg/homoglyph"
	"bitcat/pkg/model"
	"bitcat/pkg/omission"
	"bitcat/pkg/repetition"
	"bitcat/pkg/transposition"
	"bitcat/pkg/vowelswap"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Configuration represents a configuration element
type Configuration struct {
	Workers         int
	SlackWebHookURL string
	SlackIconURL    string
	SlackUsername   string
	Domains         []string
	IgnoreOlderThan int
	TakeScreenshot  bool
	ScreenshotDir   string
	MetricsAddr     string
	LogFile         string
	DisplayErrors   bool

	HomoglyphPatterns     map[string]string
	InclusionPatterns     map[string][]string
	BitsquattingPatterns  map[string][]string
	OmissionPatterns      map[string][]string
	RepetitionPatterns    map[string][]string
	TranspositionPatterns map[string][]string
	VowelSwapPatterns     map[string][]string
	PreviousCerts         *cache.Cache
	WhoisLimiter          *rate.Limiter
	Messages              chan []byte
	Buffer                chan *model.Result
	Log                   *log.Logger
}

// GetConfig provides a Configuration
func GetConfig(configFile *string) *Configuration {
	c := &Configuration{
		PreviousCerts:     cache.GetNewCache(20),
		Messages:          make(chan []byte, 50),
		Buffer:            make(chan *model.Result, 50),
		HomoglyphPatterns: homoglyph.GetHomoglyphMap(),
		WhoisLimiter:      rate.NewLimiter(rate.Every(2*time.Second), 1),
		Log:               log.New(),
	}

	v := viper.New()
	v.SetDefault("SlackWebhookURL", "")
	v.SetDefault("SlackIconURL", "")
	v.SetDefault("SlackUsername", "Bitcat")
	v.SetDefault("Domains", []string{})
	v.SetDefault("Workers", 20)
	v.SetDefault("IgnoreOlderThan", 0)
	v.SetDefault("TakeScreenshot", false)
	v.SetDefault("ScreenshotDir", "")
	v.SetDefault("MetricsAddr", "localhost:6060")
	v.SetDefault("LogFile", "")
	v.SetDefault("DisplayErrors", false)

	if *configFile != "" {
		d, f := path.Split(*configFile)
		if d == "" {
			d = "."
		}
		v.SetConfigName(f[0 : len(f)-len(filepath.Ext(f))])
		v.AddConfigPath(d)
		err := v.ReadInConfig()
		if err != nil {
			c.Log.Fatalf("[ERROR] : Error when reading config file : %v\n", err)
		}
	}
	v.AutomaticEnv()
	v.Unmarshal(c)

	if c.SlackUsername == "" {
		c.SlackUsername = "Bitcat"
	}
	if c.DisplayErrors {
		c.Log.SetLevel(log.DebugLevel)
	}
	if c.LogFile != "" {
		c.Log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   c.LogFile,
			MaxSize:    20,
			MaxBackups: 5,
			MaxAge:     28,
			Compress:   true,
		}))
	}
	if len(c.Domains) == 0 {
		c.Log.Fatal("Domain list can't be empty")
	}
	if c.Workers < 1 {
		c.Log.Fatal("Workers must be a strictly positive number")
	}
	if c.IgnoreOlderThan < 0 {
		c.Log.Fatal("IgnoreOlderThan must be a number of days, 0 to disable the filter")
	}
	if c.TakeScreenshot && c.ScreenshotDir == "" {
		c.ScreenshotDir = os.TempDir()
	}

	if err := c.CompilePatterns(); err != nil {
		c.Log.Fatal(err)
	}
	for _, domain := range c.Domains {
		count := len(c.OmissionPatterns[domain]) + len(c.RepetitionPatterns[domain]) +
			len(c.BitsquattingPatterns[domain]) + len(c.TranspositionPatterns[domain]) +
			len(c.VowelSwapPatterns[domain])
		c.Log.Debugf("Precomputed %v squat patterns for domain %s", count, domain)
	}

	return c
}

// CompilePatterns precomputes the per-attack squat patterns of every
// monitored domain, keyed by the domain as configured
func (c *Configuration) CompilePatterns() error {
	c.InclusionPatterns = make(map[string][]string)
	c.BitsquattingPatterns = make(map[string][]string)
	c.OmissionPatterns = make(map[string][]string)
	c.RepetitionPatterns = make(map[string][]string)
	c.TranspositionPatterns = make(map[string][]string)
	c.VowelSwapPatterns = make(map[string][]string)
	for _, domain := range c.Domains {
		label := RegistrableLabel(domain)
		if label == "" {
			return fmt.Errorf("cannot extract a registrable label from domain %q", domain)
		}
		c.InclusionPatterns[domain] = []string{label}
		c.BitsquattingPatterns[domain] = bitsquatting.GetBitsquattingPatterns(label)
		c.OmissionPatterns[domain] = omission.GetOmissionPatterns(label)
		c.RepetitionPatterns[domain] = repetition.GetRepetitionPatterns(label)
		c.TranspositionPatterns[domain] = transposition.GetTranspositionPatterns(label)
		c.VowelSwapPatterns[domain] = vowelswap.GetVowelSwapPatterns(label)
	}
	return nil
}

// Registrable returns the registrable part of a domain, its label
// followed by the public suffix, lowercased. Names without a known
// suffix come back as given.
func Registrable(domain string) string {
	d := strings.ToLower(strings.TrimSuffix(domain, "."))
	registrable, err := publicsuffix.EffectiveTLDPlusOne(d)
	if err != nil {
		return d
	}
	return registrable
}

// RegistrableLabel extracts the registrable label of a domain, the part
// just before its public suffix, the part attackers vary
func RegistrableLabel(domain string) string {
	r := Registrable(domain)
	if r == "" {
		return ""
	}
	return strings.Split(r, ".")[0]
}
