package config

import (
	"fmt"
	"os"
	"strings"
)

// DashboardConfig is the configuration of the terminal dashboard, assembled
// from [StructuredConfig].
type DashboardConfig struct {
	// Adapter contains the server address and request timeout.
	Adapter Adapter
	// Geocoder points the client-side resolver at the server's
	// reverse-geocode endpoint.
	Geocoder Geocoder
}

// GetDashboardConfig builds and validates the dashboard view of the merged
// structured configuration.
//
// The dashboard never talks to the upstream geocoding service directly: its
// resolver uses the server's /api/reverse-geocode endpoint, keeping the
// configured TTLs and batching parameters.
func GetDashboardConfig() (*DashboardConfig, error) {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newDashboardConfig(cfg)
}

func newDashboardConfig(cfg *StructuredConfig) (*DashboardConfig, error) {
	geocoder := cfg.Geocoder
	geocoder.BaseURL = cfg.Adapter.HTTPAddress
	if geocoder.BaseURL != "" && !strings.Contains(geocoder.BaseURL, "://") {
		geocoder.BaseURL = "http://" + geocoder.BaseURL
	}
	geocoder.ReversePath = "/api/reverse-geocode"
	geocoder.RequestTimeout = cfg.Adapter.RequestTimeout

	dashboardCfg := &DashboardConfig{
		Adapter:  cfg.Adapter,
		Geocoder: geocoder,
	}

	return dashboardCfg, dashboardCfg.validate()
}
