package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/endpoint/summary-panel/internal/config"
	"github.com/endpoint/summary-panel/internal/db"
	"github.com/endpoint/summary-panel/internal/host"
	httpapi "github.com/endpoint/summary-panel/internal/http"
	"github.com/endpoint/summary-panel/internal/service"
	"github.com/endpoint/summary-panel/internal/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "summary-panel").Logger()

	ctx := context.Background()

	var (
		hosts host.Factory
		store *db.Store
	)
	switch {
	case cfg.HostURL != "":
		hosts = host.NewHTTPFactory(cfg.HostURL, cfg.HostToken, cfg.HostTimeout)
		logger.Info().Str("host_url", cfg.HostURL).Msg("using platform host bridge")
	case cfg.DatabaseURL != "":
		store, err = db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect db")
		}
		defer store.Close()
		if err := store.Migrate(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to migrate db")
		}
		hosts = host.NewStoreFactory(store, cfg.DevUserID, logger)
		logger.Info().Msg("using postgres development host")
	default:
		hosts = host.NewMockFactory(demoTicket(cfg.DefaultLocale))
		logger.Info().Msg("using mock host")
	}

	panels := &service.PanelService{
		Logger:        logger,
		DefaultLocale: cfg.DefaultLocale,
		WriteTimeout:  cfg.HostTimeout,
	}
	router := httpapi.Router(cfg, panels, hosts, store, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}

func demoTicket(locale string) func(ticketID string) *host.MockClient {
	return func(ticketID string) *host.MockClient {
		return &host.MockClient{
			Locale: locale,
			Settings: map[string]string{
				settings.LabelOneSentenceSummary: "1001",
				settings.LabelClientSentiment:    "1002",
				settings.LabelBulletPoints:       "1003",
				settings.LabelActionItems:        "1004",
				settings.LabelAIFeedback:         "1005",
			},
			Fields: map[string]any{
				host.KeyCreatedAt:            time.Now().UTC().Format(time.RFC3339),
				host.CustomFieldKey("1001"): "Customer " + ticketID + " cannot log in since the last update.",
				host.CustomFieldKey("1002"): "frustrated",
				host.CustomFieldKey("1003"): "- Login fails with a generic error\n- Started after version 4.2",
				host.CustomFieldKey("1004"): "- Reset the session cache\n- Follow up within 24h",
			},
		}
	}
}
