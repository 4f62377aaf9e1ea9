package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/piresc/taxe/internal/pkg/apierror"
	"github.com/piresc/taxe/internal/pkg/config"
	"github.com/piresc/taxe/internal/pkg/database"
	httpclient "github.com/piresc/taxe/internal/pkg/http"
	"github.com/piresc/taxe/internal/pkg/logger"
	"github.com/piresc/taxe/internal/pkg/session"
	bookingGateway "github.com/piresc/taxe/services/bookings/gateway/http"
	bookingUsecase "github.com/piresc/taxe/services/bookings/usecase"
	userGateway "github.com/piresc/taxe/services/users/gateway/http"
	userUsecase "github.com/piresc/taxe/services/users/usecase"
)

func main() {
	configPath := config.GetEnv("TAXE_CONFIG", "config/taxe.env")
	configs := config.InitConfig(configPath)
	if err := config.Validate(configs); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store session.Store
	switch configs.Session.Backend {
	case config.SessionBackendRedis:
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		defer redisClient.Close()
		store = session.NewRedisStore(redisClient, configs.Session)
	default:
		store = session.NewMemoryStore()
	}

	client := httpclient.NewClient(httpclient.Config{
		BaseURL: configs.API.BaseURL,
		Timeout: configs.API.Timeout,
	})
	classifier := apierror.NewClassifier(store, zapLogger)

	userUC := userUsecase.NewUserUC(userGateway.NewHTTPGateway(client), store, classifier)
	bookingUC := bookingUsecase.NewBookingUC(bookingGateway.NewHTTPGateway(client), store, classifier)

	zapLogger.Debug("Starting taxe client",
		logger.String("api", configs.API.BaseURL),
		logger.String("session_backend", configs.Session.Backend))

	c := newCLI(userUC, bookingUC, classifier, os.Stdout)
	if err := c.run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		zapLogger.Close()
		os.Exit(1)
	}
}
