package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/foundly/lostfound-api/docs"
	"github.com/foundly/lostfound-api/internal/api/handler"
	"github.com/foundly/lostfound-api/internal/api/middleware"
	"github.com/foundly/lostfound-api/internal/core/domain"
	"github.com/foundly/lostfound-api/internal/core/service"
	"github.com/foundly/lostfound-api/internal/infrastructure/config"
	mongodb "github.com/foundly/lostfound-api/internal/infrastructure/db/mongo"
	redisdb "github.com/foundly/lostfound-api/internal/infrastructure/db/redis"
	"github.com/foundly/lostfound-api/pkg/logger"
	"github.com/foundly/lostfound-api/web"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("lostfound"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	itemRepo := mongodb.NewItemRepository(db)
	idemStore := redisdb.NewIdempotencyStore(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	itemService := service.NewItemService(itemRepo, userRepo, idemStore, logger.Get())
	userService := service.NewUserService(userRepo, itemRepo, logger.Get())

	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(itemService)
	userHandler := handler.NewUserHandler(userService)

	authRequired := middleware.Auth(cfg.JWTSecret, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authRequired)

	// --- Item routes ---
	items := e.Group("/api/items")
	items.GET("", itemHandler.List)
	items.GET("/stats/admin", itemHandler.AdminStats, authRequired, adminOnly)
	items.GET("/:id", itemHandler.Get)
	items.POST("", itemHandler.Create, authRequired)
	items.PATCH("/:id", itemHandler.Update, authRequired)
	items.PATCH("/:id/resolve", itemHandler.Resolve, authRequired)
	items.DELETE("/:id", itemHandler.Delete, authRequired)

	// --- User routes ---
	users := e.Group("/api/users", authRequired)
	users.GET("/profile", userHandler.Profile)
	users.GET("/my-items", userHandler.MyItems)
	users.PATCH("/profile", userHandler.UpdateProfile)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	if !cfg.Production() {
		e.GET("/swagger/*", echoswagger.WrapHandler)
	}

	// --- Embedded client ---
	e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
		Filesystem: http.FS(web.StaticFS()),
		// SPA index fallback only in production; in development a missing
		// asset should surface as a plain 404.
		HTML5: cfg.Production(),
	}))

	return e
}
