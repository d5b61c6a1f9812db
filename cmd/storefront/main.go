package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/storefront-services/storefront-backend/pkg/config"
	"github.com/storefront-services/storefront-backend/pkg/db"
	"github.com/storefront-services/storefront-backend/pkg/instrumentation"
	"github.com/storefront-services/storefront-backend/pkg/instrumentation/custom"
	"github.com/storefront-services/storefront-backend/pkg/router"
)

func main() {
	config.Load()
	config.ConfigureLogging()

	if err := db.Connect(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database connection")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := instrumentation.NewMetrics(prometheus.NewRegistry())
	if collector := custom.NewCollector(ctx, metrics, db.DB); collector != nil {
		go collector.Run()
	}
	go serveMetrics(metrics)

	echo := router.ConfigureEchoWithMetrics(metrics)
	go func() {
		if err := echo.Start(":8000"); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := echo.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down server")
	}
}

func serveMetrics(metrics *instrumentation.Metrics) {
	cfg := config.Get().Metrics
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))
	address := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Msgf("Starting metrics server at %s%s", address, cfg.Path)
	if err := http.ListenAndServe(address, mux); err != nil {
		log.Error().Err(err).Msg("Metrics server stopped")
	}
}
