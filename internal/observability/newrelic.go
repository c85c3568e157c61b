// Package observability bootstraps the optional New Relic application.
package observability

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/logvault/logvault/internal/config"
)

// NewApplication returns a New Relic application, or nil when observability
// is disabled. A nil application switches database tracing to zerolog.
func NewApplication(cfg *config.ObservabilityConfig) (*newrelic.Application, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}
	appName := cfg.AppName
	if appName == "" {
		appName = cfg.ServiceName
	}
	return newrelic.NewApplication(
		newrelic.ConfigAppName(appName),
		newrelic.ConfigLicense(cfg.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(true),
	)
}
