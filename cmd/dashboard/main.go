package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-waste-tracker/internal/adapter"
	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/geocode"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/tui"
	"github.com/MKhiriev/go-waste-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// the alt screen owns stdout, so logs go to a file
	log := logger.NewFileLogger("waste-dashboard", "waste-dashboard.log")
	cfg, err := config.GetDashboardConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	cache := geocode.NewCache(cfg.Geocoder.SuccessTTL, cfg.Geocoder.FailureTTL)
	resolver := geocode.NewResolver(cache, geocode.NewHTTPLookuper(cfg.Geocoder), cfg.Geocoder, log)

	ui, err := tui.New(serverAdapter, resolver, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	if err = ui.Run(context.Background()); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		fmt.Println("dashboard error:", err)
		log.Fatal().Err(err).Msg("dashboard run error")
	}
}
