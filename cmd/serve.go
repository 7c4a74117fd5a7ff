package cmd

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/color-collector/api/api"
	"github.com/color-collector/api/geocode"
	"github.com/color-collector/api/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the color collection HTTP API",
	Long:  "start the color collection HTTP API\nconfiguration is read from the environment and an optional .env file",
	RunE:  serveFn,
}

func serveFn(_ *cobra.Command, _ []string) error {
	cfg := api.ConfigFromEnv()

	engine, err := loadEngine(cfg.VendorCodesFile)
	if err != nil {
		return err
	}

	st, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	app := &api.Application{
		Config:        cfg,
		Engine:        engine,
		UserRepo:      st.users,
		ColorRepo:     st.colors,
		SpotlightRepo: st.spotlights,
	}
	if cfg.GeocoderURL != "" {
		app.Geocoder = geocode.NewClient(cfg.GeocoderURL, cfg.GeocoderUserAgent, cfg.GeocoderTimeout)
		log.WithField("url", cfg.GeocoderURL).Info("reverse geocoding enabled")
	}

	spotlightScheduler := scheduler.NewScheduler(st.spotlights, st.colors)
	spotlightScheduler.Start()

	log.Info("Color Collection API starting")
	return app.Serve(http.NewServeMux(), spotlightScheduler.Stop)
}
