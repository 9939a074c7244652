package app

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"mlserve/internal/config"
	"mlserve/internal/middleware"
	"mlserve/internal/model"
	"mlserve/internal/pkg/logging"
	"mlserve/internal/platform/blob"
	"mlserve/internal/platform/db"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
)

const cfgFile = "config.json"

func Run(signalCtx context.Context) error {
	appEnv := os.Getenv("ENV")
	if appEnv != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	logging.SetupLogger(appEnv, os.Getenv("LOG_LEVEL"), os.Stderr)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	dbConn, err := db.NewPostgresDB(signalCtx, cfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	// The classifier is constructed exactly once, before any request is
	// served. A missing or malformed artifact aborts startup.
	fetcher, err := blob.NewMinioFetcher(cfg.Model)
	if err != nil {
		return err
	}

	fetchCtx, cancel := context.WithTimeout(signalCtx, cfg.Model.FetchTimeout.Duration)
	defer cancel()

	classifier, err := model.Load(fetchCtx, fetcher)
	if err != nil {
		return err
	}

	provider := newProvider(dbConn, classifier)
	if err := provider.Store.Migrate(signalCtx); err != nil {
		return err
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
	}

	apiServer := New(cfg, provider, middlewares)
	if err := apiServer.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return apiServer.Shutdown()
}
