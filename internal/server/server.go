// Package server contains the HTTP handlers and routing for the API.
package server

import (
	"context"
	"fmt"
	"time"

	"stockroom/internal/auth"
	"stockroom/internal/cache"
	"stockroom/internal/config"
	"stockroom/internal/database"
	"stockroom/internal/featureflags"
	"stockroom/internal/middleware"
	"stockroom/internal/models"
	"stockroom/internal/repository"
	"stockroom/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const identityLocalKey = "identity"

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	itemRepo       repository.ItemRepository
	requestRepo    repository.RequestRepository
	authenticator  *auth.Authenticator
	featureFlags   *featureflags.Manager
	itemService    *service.ItemService
	requestService *service.RequestService
}

// NewServer creates a new server instance, establishing the database and
// Redis connections itself.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and
// performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("stockroom-api"),
		userRepo:       userRepo,
		itemRepo:       itemRepo,
		requestRepo:    requestRepo,
		featureFlags:   featureflags.NewManager(cfg.FeatureFlags),
	}
	server.authenticator = auth.NewAuthenticator(
		userRepo,
		cfg.JWTSecret,
		time.Duration(cfg.TokenTTLHours)*time.Hour,
	)
	server.itemService = service.NewItemService(itemRepo)
	server.requestService = service.NewRequestService(requestRepo, itemRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// OpenTelemetry span per request, sets the traceID local
	app.Use(middleware.TracingMiddleware())

	// Context middleware propagates request ID, user ID and trace ID into UserContext
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS must run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:4200,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Stockroom Backend Metrics Dashboard",
	}))

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	authGroup.Get("/me", s.AuthRequired(), s.Me)

	protected := api.Group("", s.AuthRequired())

	// Item routes: reads for everyone, mutations admin-only
	items := protected.Group("/items")
	items.Get("/", s.GetItems)
	items.Post("/", s.AdminRequired(), s.CreateItem)
	items.Get("/:id", s.GetItem)
	items.Put("/:id", s.AdminRequired(), s.UpdateItem)
	items.Delete("/:id", s.AdminRequired(), s.DeleteItem)

	// Request lifecycle routes
	requests := protected.Group("/requests")
	requests.Get("/", s.AdminRequired(), s.GetAllRequests)
	requests.Post("/", s.CreateRequest)
	requests.Get("/user/:id", s.GetUserRequests)
	requests.Get("/:id", s.GetRequest)
	requests.Put("/:id/approve", s.AdminRequired(), s.ApproveRequest)
	requests.Put("/:id/reject", s.AdminRequired(), s.RejectRequest)
	requests.Put("/:id/cancel", s.CancelRequest)

	// Admin routes
	admin := protected.Group("/admin", s.AdminRequired())
	admin.Get("/feature-flags", s.GetFeatureFlags)
	admin.Get("/requests/summary", s.GetRequestSummary)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// Redis is optional, the app degrades to uncached operation
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns middleware that validates the bearer token and stores
// the resolved identity in locals.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := auth.ExtractBearer(c.Get("Authorization"))
		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewInvalidTokenError("Authorization required"))
		}

		identity, err := s.authenticator.Authenticate(c.UserContext(), tokenString)
		if err != nil {
			return models.RespondWithAppError(c, err)
		}

		c.Locals(identityLocalKey, identity)
		c.Locals("userID", identity.UserID)

		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, identity.UserID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// AdminRequired returns middleware that rejects non-admin callers with 403.
// Must be placed after AuthRequired so the identity is available in locals.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := s.callerIdentity(c)
		if !identity.IsAdmin() {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Admin access required"))
		}
		return c.Next()
	}
}

func (s *Server) callerIdentity(c *fiber.Ctx) auth.Identity {
	identity, _ := c.Locals(identityLocalKey).(auth.Identity)
	return identity
}

// GetFeatureFlags handles GET /api/admin/feature-flags
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	identity := s.callerIdentity(c)
	return c.JSON(fiber.Map{
		"raw":       s.featureFlags.Raw(),
		"evaluated": s.featureFlags.Snapshot(identity.UserID),
	})
}
