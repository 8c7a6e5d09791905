package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	_ "golang.org/x/crypto/x509roots/fallback"

	"github.com/chesswrapped/chesswrapped/internal/adapters/gameprovider"
	"github.com/chesswrapped/chesswrapped/internal/config"
	"github.com/chesswrapped/chesswrapped/internal/domain"
	"github.com/chesswrapped/chesswrapped/internal/getwrapped"
	"github.com/chesswrapped/chesswrapped/internal/ports"
	"github.com/chesswrapped/chesswrapped/internal/reporting"
	"github.com/chesswrapped/chesswrapped/internal/telemetry"
)

// TODO: Put in config
const PROD_DOMAIN_SUFFIX = "chesswrapped.com"
const STAGING_DOMAIN_SUFFIX = "chesswrapped.pages.dev"

func main() {
	instanceID := uuid.New().String()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("instanceID", instanceID)

	fail := func(msg string, args ...any) {
		logger.Error(msg, args...)
		os.Exit(1)
	}

	config, err := config.ConfigFromEnv()
	if err != nil {
		fail("Failed to load config", "error", err.Error())
	}
	logger.Info("Loaded config", "config", config.NonSensitiveString())

	ctx := context.Background()

	shutdownTelemetry, err := telemetry.SetupOTelSDK(ctx, "chesswrapped")
	if err != nil {
		fail("Failed to initialize telemetry", "error", err.Error())
	}
	defer func() {
		if err := shutdownTelemetry(ctx); err != nil {
			logger.Error("Failed to shut down telemetry", "error", err.Error())
		}
	}()
	logger.Info("Initialized telemetry")

	sentryMiddleware, flush, err := reporting.NewSentryMiddlewareOrMock(config)
	if err != nil {
		fail("Failed to initialize Sentry", "error", err.Error())
	}
	defer flush()
	logger.Info("Initialized Sentry middleware")

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
		Transport: otelhttp.NewTransport(
			http.DefaultTransport,
		),
	}

	chessComProvider, err := gameprovider.NewChessComProvider(httpClient, 0)
	if err != nil {
		fail("Failed to initialize chess.com provider", "error", err.Error())
	}
	lichessProvider, err := gameprovider.NewLichessProvider(httpClient, config.LichessToken(), 0, time.Now)
	if err != nil {
		fail("Failed to initialize Lichess provider", "error", err.Error())
	}
	logger.Info("Initialized game providers")

	allowedOrigins, err := ports.NewDomainSuffixes(PROD_DOMAIN_SUFFIX, STAGING_DOMAIN_SUFFIX)
	if err != nil {
		fail("Failed to initialize allowed origins", "error", err.Error())
	}

	getWrapped := getwrapped.BuildGetWrapped(
		map[domain.Platform]gameprovider.GameProvider{
			domain.PlatformChessCom: chessComProvider,
			domain.PlatformLichess:  lichessProvider,
		},
	)

	http.HandleFunc(
		"OPTIONS /v1/wrapped/{platform}/{username}",
		ports.BuildCORSHandler(allowedOrigins),
	)
	http.HandleFunc(
		"GET /v1/wrapped/{platform}/{username}",
		ports.MakeGetWrappedHandler(
			getWrapped,
			allowedOrigins,
			logger.With("port", "wrapped"),
			sentryMiddleware,
			time.Now,
		),
	)

	logger.Info("Init complete")
	err = http.ListenAndServe(fmt.Sprintf(":%s", config.Port()), nil)
	if errors.Is(err, http.ErrServerClosed) {
		logger.Info("Server shutdown")
	} else {
		fail("Server error", "error", err.Error())
	}
}
