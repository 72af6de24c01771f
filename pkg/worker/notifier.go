package worker

import (
	"bitcat/config"
	"bitcat/pkg/slack"
	"encoding/json"
)

// Notifier dedupes alerts and notifies about caught certificates
func Notifier(cfg *config.Configuration) {
	for result := range cfg.Buffer {
		if cfg.PreviousCerts.InCache(result.Domain) {
			cfg.Log.Debugf("Certificate for domain %s has already been notified", result.Domain)
			continue
		}
		cfg.PreviousCerts.StoreCache(result.Domain)
		j, _ := json.Marshal(result)
		cfg.Log.Infof("A certificate for '%v' has been issued : %v", result.Domain, string(j))
		if cfg.SlackWebHookURL != "" {
			go slack.NewPayload(cfg, result).Post(cfg)
		}
	}
}
