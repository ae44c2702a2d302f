package main

import (
	"context"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/api/rest"
	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/config"
	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/infra/health"
	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/infra/http/middleware"
	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/infra/log"
	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/infra/metrics"
	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/infra/netutil"
	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/infra/runner"
	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/infra/version"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	logger := log.NewLogger(cfg)

	// Init metrics and build the HTTP surface
	registry := metrics.Init(logger)
	mux := http.NewServeMux()
	// admin endpoints (metrics, pprof) behind IP allowlist gate
	adminCIDRs := netutil.MustParseCIDRs(cfg.Server.AdminAllowCIDRs)
	mux.Handle("/metrics", middleware.AdminGate(adminCIDRs, metrics.Handler(registry)))
	mux.HandleFunc("/healthz", health.Healthz)
	mux.HandleFunc("/readyz", health.Readyz)
	mux.HandleFunc("/version", version.Handler)
	if cfg.Server.Pprof {
		mux.Handle("/debug/pprof/", middleware.AdminGate(adminCIDRs, http.HandlerFunc(pprof.Index)))
		mux.Handle("/debug/pprof/cmdline", middleware.AdminGate(adminCIDRs, http.HandlerFunc(pprof.Cmdline)))
		mux.Handle("/debug/pprof/profile", middleware.AdminGate(adminCIDRs, http.HandlerFunc(pprof.Profile)))
		mux.Handle("/debug/pprof/symbol", middleware.AdminGate(adminCIDRs, http.HandlerFunc(pprof.Symbol)))
		mux.Handle("/debug/pprof/trace", middleware.AdminGate(adminCIDRs, http.HandlerFunc(pprof.Trace)))
	}
	// analysis endpoints
	mux.Handle("/", rest.New(cfg, logger).Handler())

	// wrap mux with middlewares (request id and logging)
	handler := middleware.RequestID(middleware.Logger(logger)(mux))

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	g := &runner.Group{}
	serverErrCh := g.Go(ctx, func(ctx context.Context) error {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	logger.Info().
		Str("addr", cfg.Server.Addr).
		Str("data_dir", cfg.Server.DataDir).
		Msg("orderbook analyzer service started")
	health.SetReady(true)

	// Wait for termination signals or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-ctx.Done():
	case s := <-sigCh:
		logger.Info().Str("signal", s.String()).Msg("shutdown signal received")
	case err := <-serverErrCh:
		if err != nil {
			logger.Error().Err(err).Msg("http server error")
		}
	}

	health.SetReady(false)
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	logger.Info().Msg("shutdown complete")
}
