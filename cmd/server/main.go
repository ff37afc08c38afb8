package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/yassirrachad97/DepotSmart/internal/config"
	"github.com/yassirrachad97/DepotSmart/internal/messaging"
	"github.com/yassirrachad97/DepotSmart/internal/messaging/kafka"
	"github.com/yassirrachad97/DepotSmart/internal/repository/mongodb"
	"github.com/yassirrachad97/DepotSmart/internal/repository/sheets"
	"github.com/yassirrachad97/DepotSmart/internal/scheduler"
	"github.com/yassirrachad97/DepotSmart/internal/server/handlers"
	"github.com/yassirrachad97/DepotSmart/internal/server/router"
	authsvc "github.com/yassirrachad97/DepotSmart/internal/service/auth"
	"github.com/yassirrachad97/DepotSmart/internal/service/catalog"
	inventorysvc "github.com/yassirrachad97/DepotSmart/internal/service/inventory"
	reportingsvc "github.com/yassirrachad97/DepotSmart/internal/service/reporting"
	"github.com/yassirrachad97/DepotSmart/pkg/clients/catalogstore"
	"github.com/yassirrachad97/DepotSmart/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(logger.Options{Level: cfg.Log.Level, Development: cfg.Log.Development}))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store := catalogstore.NewClient(cfg.Catalog)

	locale, err := language.Parse(cfg.Catalog.Locale)
	if err != nil {
		baseLogger.Warn("unknown catalog locale, falling back to root collation",
			zap.String("locale", cfg.Catalog.Locale), zap.Error(err))
		locale = language.Und
	}
	engine := catalog.NewEngine(locale)

	var publisher messaging.Publisher = messaging.NopPublisher{}
	if cfg.Kafka.Enabled() {
		publisher = kafka.NewPublisher(cfg.Kafka, baseLogger.Named("messaging.kafka"))
		baseLogger.Info("stock events enabled", zap.Strings("brokers", cfg.Kafka.Brokers))
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			baseLogger.Error("failed to close stock event publisher", zap.Error(err))
		}
	}()

	// interfaces stay nil unless the backing store is configured
	var snapshots reportingsvc.SnapshotRepository
	if cfg.MongoDB.Enabled() {
		connectCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		mongoRepo, err := mongodb.NewMongoDBRepository(connectCtx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		cancel()
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		snapshots = mongoRepo
	} else {
		baseLogger.Warn("mongodb uri missing, statistics history disabled")
	}

	var exporter reportingsvc.SnapshotExporter
	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		exporter = sheets.NewStatisticsExporter(sheetsRepo)
	}

	inventorySvc := inventorysvc.NewService(store, engine, publisher, baseLogger.Named("svc.inventory"))
	authSvc := authsvc.NewService(store, baseLogger.Named("svc.auth"))
	reportingSvc := reportingsvc.NewService(store, snapshots, exporter, baseLogger.Named("svc.reporting"))

	httpEngine := router.New(router.Handlers{
		Catalog:    handlers.NewCatalogHandler(inventorySvc, baseLogger.Named("handlers.catalog")),
		Auth:       handlers.NewAuthHandler(authSvc, baseLogger.Named("handlers.auth")),
		Statistics: handlers.NewStatisticsHandler(reportingSvc, baseLogger.Named("handlers.statistics")),
	}, baseLogger.Named("router"))

	sched, err := scheduler.NewScheduler(cfg.Reporting, reportingSvc, baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpEngine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
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
