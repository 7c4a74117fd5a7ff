package api

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
)

const shutdownGrace = 5 * time.Second

// Serve runs the API until SIGINT or SIGTERM, then drains open requests.
// onShutdown hooks run once the server starts shutting down.
func (app *Application) Serve(mux *http.ServeMux, onShutdown ...func()) error {
	srv := &http.Server{
		Addr:         app.Config.HTTPPort,
		Handler:      app.BuildRoutes(mux),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	for _, fn := range onShutdown {
		srv.RegisterOnShutdown(fn)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("starting server")
		listenErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	log.WithField("addr", srv.Addr).Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-listenErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.WithField("addr", srv.Addr).Info("stopped server")
	return nil
}
