package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/medrep-crm/internal/config"
	domainRepo "github.com/sangkips/medrep-crm/internal/domain/repository"
	"github.com/sangkips/medrep-crm/internal/presentation/http/handler"
	"github.com/sangkips/medrep-crm/internal/presentation/http/middleware"
	"github.com/sangkips/medrep-crm/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Billing *handler.BillingHandler
	Report  *handler.ReportHandler
	Profile *handler.ProfileHandler
	Doctor  *handler.DoctorHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager  *utils.JWTManager
	Cfg         *config.Config
	Logger      *zap.Logger
	RateLimiter *middleware.UserRateLimiter
	// IdempotencyRepo is nil when no Redis server is configured
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes, all authenticated
	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(deps.JWTManager))
	if deps.RateLimiter != nil {
		v1.Use(deps.RateLimiter.Middleware())
	}

	registerBillingRoutes(v1, h, deps)
	registerDoctorRoutes(v1, h)

	return router
}

func registerBillingRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	billing := v1.Group("/billing")
	{
		save := []gin.HandlerFunc{h.Billing.Save}
		if deps.IdempotencyRepo != nil {
			// Replays the first response when a client retries with the same key
			save = append([]gin.HandlerFunc{middleware.Idempotency(middleware.IdempotencyConfig{
				Repo:   deps.IdempotencyRepo,
				TTL:    deps.Cfg.Redis.IdempotencyTTL,
				Logger: deps.Logger,
			})}, save...)
		}
		billing.POST("/save", save...)
		billing.GET("/all", h.Billing.List)
		billing.GET("/download", h.Billing.Download)
		billing.POST("/create-sample", h.Billing.CreateSample)
		billing.DELETE("/clean-corrupted-data", h.Billing.CleanCorrupted)

		// Profile and visits
		billing.GET("/profile", h.Profile.Get)
		billing.PUT("/profile", h.Profile.Update)
		billing.POST("/profile/visit", h.Profile.RecordVisit)
		billing.DELETE("/profile/visit/:visitId", h.Profile.DeleteVisit)
		billing.PUT("/profile/visits/update", h.Profile.ReplaceVisits)
		billing.GET("/profile/business-summary", h.Report.BusinessSummary)

		// Reports
		billing.GET("/reports", h.Report.SalesReport)
		billing.GET("/reports/download", h.Report.DownloadReport)

		// Entries
		billing.PUT("/:id", h.Billing.Update)
		billing.DELETE("/:id", h.Billing.Delete)
	}
}

func registerDoctorRoutes(v1 *gin.RouterGroup, h *Handlers) {
	doctors := v1.Group("/doctors")
	{
		doctors.POST("", h.Doctor.Add)
		doctors.GET("", h.Doctor.List)
		doctors.PUT("", h.Doctor.Update)
	}
}
