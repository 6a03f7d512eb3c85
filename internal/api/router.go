package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fcamara/user-address-api/internal/api/handler"
	"github.com/fcamara/user-address-api/internal/api/middleware"
	"github.com/fcamara/user-address-api/internal/core/service"
	"github.com/fcamara/user-address-api/internal/infrastructure/config"
	mongodb "github.com/fcamara/user-address-api/internal/infrastructure/db/mongo"
	redisdb "github.com/fcamara/user-address-api/internal/infrastructure/db/redis"
	"github.com/fcamara/user-address-api/internal/infrastructure/postal"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("user_address"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	addressRepo := mongodb.NewAddressRepository(db)

	viaCEP := postal.NewViaCEPClient(cfg.ViaCEP.BaseURL, cfg.ViaCEP.Timeout)
	postalGateway := redisdb.NewPostalCache(rdb, viaCEP, log)

	codec := service.NewTokenCodec([]byte(cfg.JWTSecret), cfg.TokenTTL, nil)
	authService := service.NewAuthService(userRepo, codec, log)
	userService := service.NewUserService(userRepo, addressRepo, log)
	addressService := service.NewAddressService(addressRepo, userRepo, postalGateway, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	addressHandler := handler.NewAddressHandler(addressService)
	requireAuth := middleware.Auth(authService)

	// --- Public routes ---
	e.POST("/api/v1/auth/login", authHandler.Login)
	e.POST("/api/v1/users", userHandler.Create)

	// --- User routes ---
	users := e.Group("/api/v1/users", requireAuth)
	users.GET("", userHandler.List)
	users.GET("/me", userHandler.Me)
	users.GET("/count", userHandler.Count)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Address routes ---
	address := e.Group("/api/v1/address", requireAuth)
	address.POST("", addressHandler.Create)
	address.GET("", addressHandler.ListOwn)
	address.GET("/all", addressHandler.ListOthers)
	address.GET("/count", addressHandler.Count)
	address.POST("/user/:userId", addressHandler.CreateForUser)
	address.GET("/user/:userId", addressHandler.ListByUser)
	address.GET("/:id", addressHandler.Get)
	address.PUT("/:id", addressHandler.Update)
	address.DELETE("/:id", addressHandler.Delete)

	// --- Operational endpoints (no auth required) ---
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", handler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
