package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bank-sampah-service/src/internal/config"
	"bank-sampah-service/src/internal/delivery/http/middleware"
	"bank-sampah-service/src/pkg/log"

	"github.com/hibiken/asynq"
)

func main() {
	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "BANK_SAMPAH_SERVICE")
	viperConfig.SetDefault("web.port", 8080)
	viperConfig.SetDefault("asynq.concurrency", 5)
	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	config.LoadRedisConfig(viperConfig)
	db := config.NewDatabase(viperConfig, logger)
	redisClient := config.NewRedis()
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	asynqClient := config.NewAsynqClient(viperConfig)
	asynqServer := config.NewAsynqServer(viperConfig)
	asynqMux := asynq.NewServeMux()

	app := config.NewFiber(viperConfig)
	app.Use(middleware.NewLogger())
	config.Bootstrap(&config.BootstrapConfig{
		DB:          db,
		App:         app,
		Log:         logger,
		Validate:    validate,
		Config:      viperConfig,
		Producer:    producer,
		Redis:       redisClient,
		AsynqClient: asynqClient,
		Async:       asynqMux,
	})

	go func() {
		if err := asynqServer.Run(asynqMux); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start asynq server: %v", err), "asynq", "")
		}
	}()

	go func() {
		webPort := viperConfig.GetInt("web.port")
		if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("main", "Server bank-sampah-service is shutting down...", "graceful", "")
	asynqServer.Shutdown()
	if err := app.Shutdown(); err != nil {
		logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
	}
	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
