package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/ataxihosur/dispatch/internal/pkg/config"
	"github.com/ataxihosur/dispatch/internal/pkg/database"
	"github.com/ataxihosur/dispatch/internal/pkg/events"
	"github.com/ataxihosur/dispatch/internal/pkg/health"
	"github.com/ataxihosur/dispatch/internal/pkg/logger"
	availabilityHandler "github.com/ataxihosur/dispatch/services/availability/handler"
	availabilityRepo "github.com/ataxihosur/dispatch/services/availability/repository"
	availabilityUC "github.com/ataxihosur/dispatch/services/availability/usecase"
	dispatchGW "github.com/ataxihosur/dispatch/services/dispatch/gateway"
	dispatchHandler "github.com/ataxihosur/dispatch/services/dispatch/handler"
	dispatchRepo "github.com/ataxihosur/dispatch/services/dispatch/repository"
	dispatchUC "github.com/ataxihosur/dispatch/services/dispatch/usecase"
	fareHandler "github.com/ataxihosur/dispatch/services/fare/handler"
	fareRepo "github.com/ataxihosur/dispatch/services/fare/repository"
	fareUC "github.com/ataxihosur/dispatch/services/fare/usecase"
	locationGW "github.com/ataxihosur/dispatch/services/location/gateway"
	locationHandler "github.com/ataxihosur/dispatch/services/location/handler"
	locationRepo "github.com/ataxihosur/dispatch/services/location/repository"
	locationUC "github.com/ataxihosur/dispatch/services/location/usecase"
)

func main() {
	appName := "dispatch-engine"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger.SetGlobalLogger(appLogger)

	pgClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}
	defer pgClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Error("Failed to connect to Redis", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}
	defer redisClient.Close()

	producer, err := events.NewProducer(configs.NSQ.Address)
	if err != nil {
		logger.Error("Failed to connect to NSQ", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}
	defer producer.Stop()

	db := pgClient.GetDB()

	// Fare engine
	fareRepository := fareRepo.NewFareRepository(configs, db)
	fareUsecase := fareUC.NewFareUC(configs, fareRepository)

	// Location tracking
	locationRepository := locationRepo.NewLocationRepo(redisClient)
	locationGateway := locationGW.NewLocationGW(producer)
	locationUsecase := locationUC.NewLocationUC(configs, locationRepository, locationGateway)

	// Availability resolver
	availabilityRepository := availabilityRepo.NewAvailabilityRepo(db, redisClient)
	availabilityUsecase := availabilityUC.NewAvailabilityUC(configs, availabilityRepository)

	// Assignment coordinator
	dispatchRepository := dispatchRepo.NewDispatchRepository(db)
	dispatchGateway := dispatchGW.NewDispatchGW(producer)
	dispatchUsecase := dispatchUC.NewDispatchUC(configs, dispatchRepository, dispatchGateway, fareUsecase)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	fareHandler.NewHandler(fareUsecase, configs).RegisterRoutes(e)
	locationHandler.NewHandler(locationUsecase, configs).RegisterRoutes(e)
	availabilityHandler.NewHandler(availabilityUsecase, configs).RegisterRoutes(e)
	dispatchHandler.NewHandler(dispatchUsecase, configs).RegisterRoutes(e)

	health.RegisterHealthEndpoints(e, appName,
		health.NewPostgresHealthChecker(pgClient),
		health.NewRedisHealthChecker(redisClient),
	)

	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		logger.Info("Starting server", logger.Fields{"service": appName, "addr": addr})
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped", logger.Fields{"error": err.Error()})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down", logger.Fields{"service": appName})
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", logger.Fields{"error": err.Error()})
	}
}
