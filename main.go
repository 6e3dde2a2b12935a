// main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"erpdash/config"
	"erpdash/database"
	"erpdash/extractor"
	"erpdash/handlers"
	"erpdash/reports"
	"erpdash/services"
	"erpdash/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	if err := config.LoadConfig(configPath); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting ERP automation dashboard",
		zap.String("port", config.AppConfig.Server.Port),
		zap.String("source", config.AppConfig.Source.Driver),
	)

	var source extractor.Source
	switch config.AppConfig.Source.Driver {
	case "mysql":
		db, err := database.Open(config.AppConfig.Database)
		if err != nil {
			logger.Fatal("failed to connect to ERP database", zap.Error(err))
		}
		defer db.Close()
		logger.Info("connected to ERP database", zap.String("dbname", config.AppConfig.Database.DBName))
		source = extractor.NewSQLSource(db)
	default:
		source = extractor.NewDemoSource()
	}

	snapshots := store.New()
	writer := reports.NewWriter(config.AppConfig.Reports, logger)
	sweeper := reports.NewSweeper(config.AppConfig.Reports, logger)
	refresher := services.NewRefresher(source, snapshots, writer, sweeper, logger)

	scheduler, err := services.NewScheduler(config.AppConfig.Schedule, refresher, logger)
	if err != nil {
		logger.Fatal("failed to build scheduler", zap.Error(err))
	}

	// Initial fetch before serving, so the API has data from the start.
	refresher.TryRefresh(context.Background())
	scheduler.Start()

	query := services.NewQuery(snapshots, refresher, scheduler)

	router := gin.Default()
	handlers.NewDashboard(query, refresher, config.AppConfig.Reports, logger).Register(router)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutdown requested")
	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
