package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sangkips/medrep-crm/internal/application/service"
	"github.com/sangkips/medrep-crm/internal/config"
	domainRepo "github.com/sangkips/medrep-crm/internal/domain/repository"
	"github.com/sangkips/medrep-crm/internal/infrastructure/billingstore"
	"github.com/sangkips/medrep-crm/internal/infrastructure/database"
	"github.com/sangkips/medrep-crm/internal/infrastructure/repository"
	"github.com/sangkips/medrep-crm/internal/presentation/http/handler"
	"github.com/sangkips/medrep-crm/internal/presentation/http/middleware"
	"github.com/sangkips/medrep-crm/internal/presentation/http/routes"
	"github.com/sangkips/medrep-crm/pkg/logger"
	"github.com/sangkips/medrep-crm/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db, zlog); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	// Billing namespaces
	var registry domainRepo.BillingRegistry
	switch cfg.Billing.Store {
	case "memory":
		zlog.Warn("billing entries are kept in memory and are lost on restart")
		registry = billingstore.NewMemoryRegistry(cfg.Mongo.CollectionPrefix)
	default:
		mongoClient, mongoDB, err := database.NewMongoDB(ctx, &cfg.Mongo, zlog)
		if err != nil {
			zlog.Fatal("failed to connect to mongo", zap.Error(err))
		}
		defer func() { _ = mongoClient.Disconnect(context.Background()) }()
		registry = billingstore.NewMongoRegistry(mongoDB, cfg.Mongo.CollectionPrefix, cfg.Mongo.Timeout, zlog)
	}

	// Idempotency keys need Redis
	var idempotencyRepo domainRepo.IdempotencyRepository
	if cfg.Redis.IdempotencyEnabled() {
		var redisClient *redis.Client
		redisClient, err = database.NewRedisClient(ctx, &cfg.Redis, zlog)
		if err != nil {
			zlog.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()
		idempotencyRepo = repository.NewIdempotencyRepository(redisClient)
	} else {
		zlog.Info("REDIS_ADDR not set, idempotency keys are ignored")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours, cfg.App.Name)

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	txManager := repository.NewTxManager(db)

	// Initialize services
	billingService := service.NewBillingService(registry, doctorRepo)
	reportService := service.NewReportService(registry, profileRepo)
	exportService := service.NewExportService(registry, reportService)
	profileService := service.NewProfileService(profileRepo, visitRepo, doctorRepo, txManager)
	doctorService := service.NewDoctorService(doctorRepo, visitRepo, txManager)

	// Initialize handlers
	handlers := &routes.Handlers{
		Billing: handler.NewBillingHandler(billingService, exportService),
		Report:  handler.NewReportHandler(reportService, exportService),
		Profile: handler.NewProfileHandler(profileService),
		Doctor:  handler.NewDoctorHandler(doctorService),
	}

	rateLimiter := middleware.NewUserRateLimiter(
		middleware.RateLimiterConfigFrom(cfg.RateLimit.Requests, cfg.RateLimit.Duration),
	)
	defer rateLimiter.Stop()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		Logger:          zlog,
		RateLimiter:     rateLimiter,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "5000"
	}

	zlog.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", port),
		zap.String("env", cfg.App.Env),
		zap.String("billing_store", cfg.Billing.Store),
	)

	if err := router.Run(":" + port); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
