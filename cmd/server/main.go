package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/rentalhub/backoffice/internal/config"
	"github.com/rentalhub/backoffice/internal/repository/mongodb"
	"github.com/rentalhub/backoffice/internal/repository/sheets"
	"github.com/rentalhub/backoffice/internal/scheduler"
	"github.com/rentalhub/backoffice/internal/server/handlers"
	"github.com/rentalhub/backoffice/internal/server/router"
	reportingsvc "github.com/rentalhub/backoffice/internal/service/reporting"
	"github.com/rentalhub/backoffice/pkg/clients/rentalhub"
	"github.com/rentalhub/backoffice/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	apiClient := rentalhub.NewClient(cfg.RentalAPI, baseLogger.Named("client.rentalhub"))

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	// The sheets export sink is optional; snapshots are only archived to
	// MongoDB when it is not configured.
	var exporter sheets.Exporter
	if cfg.SheetsEnabled() {
		exporter, err = sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		baseLogger.Info("sheets export sink enabled")
	} else {
		baseLogger.Warn("sheets export not configured, snapshot export disabled")
	}

	reportingSvc := reportingsvc.NewService(apiClient, baseLogger.Named("svc.reporting"))
	runner := reportingsvc.NewRunner(reportingSvc, baseLogger.Named("svc.reporting.runner"))

	reportHandler := handlers.NewReportHandler(runner, mongoRepo, baseLogger.Named("handlers.reports"))
	engine := router.New(reportHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Reporting, reportingSvc, mongoRepo, exporter, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
