package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"

	"fitnflex/internal/config"
	"fitnflex/internal/database"
	"fitnflex/internal/domain/payment"
	"fitnflex/internal/pkg/jwt"
	"fitnflex/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("open store", "error", err)
		os.Exit(1)
	}

	if cfg.StripeSecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY is empty; payment intents are disabled")
	}
	services := server.NewServices(store, payment.NewIntentProvider(cfg.StripeSecretKey), cfg.PaymentCurrency, logger)
	tokens := jwt.New(cfg.AccessTokenSecret, jwt.DefaultTTL)

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: server.NewRouter(server.Options{
			Store:       store,
			Services:    services,
			Tokens:      tokens,
			Logger:      logger,
			CORSOrigins: cfg.CORSAllowedOrigins,
		}),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Fit-N-Flex-Arena-server listening", "port", cfg.Port, "env", cfg.AppEnv, "store", store.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	exitCode := 0
	select {
	case err := <-serveErr:
		logger.Error("http server", "error", err)
		exitCode = 1
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Error("close store", "error", err)
	}
	cancel()
	stop()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func newLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
