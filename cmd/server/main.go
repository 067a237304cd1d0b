package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"suraksha/internal/alert"
	"suraksha/internal/bridge"
	"suraksha/internal/jwttoken"
	"suraksha/internal/platform/config"
	"suraksha/internal/platform/httpserver"
	"suraksha/internal/platform/logger"
	"suraksha/internal/platform/metrics"
	"suraksha/internal/realtime"
	"suraksha/internal/tourist"
	httptransport "suraksha/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	touristStore := tourist.NewInMemoryStore()
	alertLog := alert.NewInMemoryLog()
	tourist.SeedFromFile(context.Background(), cfg.SeedPath, touristStore, log)

	bridgeClient := bridge.NewHTTPClient(cfg.BlockchainAPIURL, cfg.AIMLAPIURL, cfg.UpstreamTimeout, log)
	hub := realtime.NewHub(log, m)

	touristSvc := tourist.NewService(touristStore, bridgeClient, log)
	alertSvc := alert.NewService(alertLog, touristStore, hub, log)
	tokens := jwttoken.NewService(cfg.JWTSigningKey, "suraksha")

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Logger:      log,
		Metrics:     m,
		Auth:        httptransport.NewAuthHandler(touristSvc, tokens, m, log),
		Tourists:    httptransport.NewTouristHandler(touristSvc, log),
		Alerts:      httptransport.NewAlertHandler(alertSvc, m, log),
		Admin:       httptransport.NewAdminHandler(touristSvc, log),
		Bridge:      httptransport.NewBridgeHandler(bridgeClient, m, log),
		Realtime:    hub.HandleWebSocket,
		MetricsPage: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		PingMessage: cfg.PingMessage,
	})

	srv := httpserver.New(cfg.Addr, router)
	log.Info("starting suraksha gateway", "addr", cfg.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
