package config

import (
	"bank-sampah-service/src/internal/delivery/http"
	"bank-sampah-service/src/internal/delivery/http/middleware"
	"bank-sampah-service/src/internal/delivery/http/route"
	"bank-sampah-service/src/internal/gateway/messaging"
	"bank-sampah-service/src/internal/repository"
	"bank-sampah-service/src/internal/usecase"
	"bank-sampah-service/src/pkg/databases/mysql"
	"bank-sampah-service/src/pkg/kafka"
	"bank-sampah-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB          mysql.DBInterface
	App         *fiber.App
	Log         log.Log
	Validate    *validator.Validate
	Config      *viper.Viper
	Producer    kafka.Producer
	Redis       redis.UniversalClient
	AsynqClient *asynq.Client
	Async       *asynq.ServeMux
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	userRepository := repository.NewUserRepository(config.DB)
	submissionRepository := repository.NewSubmissionRepository(config.DB)
	wasteBankRepository := repository.NewWasteBankRepository(config.DB)
	var submissionProducer *messaging.SubmissionProducer
	if config.Producer != nil {
		submissionProducer = messaging.NewSubmissionProducer(config.Producer, config.Log)
	}
	priceTable := NewPriceTable(config.Config)

	// setup use cases
	userUseCase := usecase.NewUserUseCase(
		config.Log,
		config.Validate,
		userRepository,
		config.Config,
	)
	submissionUseCase := usecase.NewSubmissionUseCase(
		config.Log,
		config.Validate,
		submissionRepository,
		userRepository,
		priceTable,
		config.Config,
		submissionProducer,
		config.AsynqClient,
	)
	wasteBankUseCase := usecase.NewWasteBankUseCase(
		config.Log,
		config.Validate,
		wasteBankRepository,
		config.Config,
	)
	statsUseCase := usecase.NewStatsUseCase(
		config.Log,
		config.Validate,
		submissionRepository,
		userRepository,
		config.Config,
		config.Redis,
	)

	// setup controllers
	userController := http.NewUserController(userUseCase, config.Log)
	submissionController := http.NewSubmissionController(submissionUseCase, config.Log)
	wasteBankController := http.NewWasteBankController(wasteBankUseCase, config.Log)
	statsController := http.NewStatsController(statsUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config)

	if config.Async != nil {
		config.Async.HandleFunc(usecase.TypePickupReminder, submissionUseCase.HandlePickupReminder)
	}

	routeConfig := route.RouteConfig{
		App:                  config.App,
		UserController:       userController,
		SubmissionController: submissionController,
		WasteBankController:  wasteBankController,
		StatsController:      statsController,
		AuthMiddleware:       authMiddleware,
	}
	routeConfig.Setup()
}
