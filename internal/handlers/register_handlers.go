package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/tradetrack/tradetrack_backend/internal/core/ports/services"
	"github.com/tradetrack/tradetrack_backend/internal/middleware"
	"github.com/tradetrack/tradetrack_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public calculator and rate endpoints, rate limited per IP
	setupPublicRoutes(r, cfg, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupPublicRoutes configures the unauthenticated calculator and currency
// lookup group behind an IP rate limiter.
func setupPublicRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	rate, err := limiter.NewRateFromFormatted(cfg.CalcRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("100-H")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	public := r.Group("/api/public", middleware.RateLimit(ipLimiter))

	registerCalculationRoutes(public, services.Calculation)
	registerCurrencyRoutes(public, services.Currency)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	registerAccountRoutes(v1, services.Account)
	registerTradeRoutes(v1, services.Trade)
	registerTransferRoutes(v1, services.Transfer)
	registerAnalyticsRoutes(v1, services.Analytics)
}
