package main

import (
	"context"
	"net/http"
	"time"

	_ "medstore/docs" // swagger docs

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"medstore/internal/auth"
	"medstore/internal/cache"
	"medstore/internal/config"
	"medstore/internal/db"
	"medstore/internal/handler"
	"medstore/internal/logger"
	"medstore/internal/model"
	"medstore/internal/repository"
	"medstore/internal/router"
	"medstore/internal/service"
)

// @title Medstore API
// @version 1.0
// @description Medicine catalog API with user registration and JWT authentication.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel)

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Manufacturer{},
		&model.Medicine{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize auth components
	hasher := auth.NewPasswordHasher(0)
	jwtService := auth.NewJWTService(cfg.JWTSecret, time.Duration(cfg.AccessTokenTTL)*time.Second)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	manufacturerRepo := repository.NewManufacturerRepository(gormDB)
	medicineRepo := repository.NewMedicineRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, hasher)
	categoryService := service.NewCategoryService(categoryRepo, cacheClient)
	manufacturerService := service.NewManufacturerService(manufacturerRepo)
	medicineService := service.NewMedicineService(medicineRepo, categoryRepo, manufacturerRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	medicineHandler := handler.NewMedicineHandler(medicineService)
	manufacturerHandler := handler.NewManufacturerHandler(manufacturerService)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = router.NewHTTPErrorHandler(log)
	e.Use(requestLogger(log))

	router.Register(
		e,
		cfg,
		userHandler,
		authHandler,
		categoryHandler,
		medicineHandler,
		manufacturerHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Str("prefix", cfg.APIPrefix).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}

// requestLogger emits one structured log line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
