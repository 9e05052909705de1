package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"medstore/internal/auth"
	"medstore/internal/config"
	"medstore/internal/handler"
	"medstore/internal/middleware"
	"medstore/internal/model"
)

// Register wires routes and middleware. The route table here is the single
// place that decides which endpoints are public, which need a valid token,
// and which additionally need the ADMIN role.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
	categoryHandler *handler.CategoryHandler,
	medicineHandler *handler.MedicineHandler,
	manufacturerHandler *handler.ManufacturerHandler,
) {
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(cfg.APIPrefix)

	// Public routes
	api.GET("/users", userHandler.Greet)
	api.POST("/users", userHandler.Register)

	authGroup := api.Group("/auth", middleware.RateLimit(rate.Limit(5), 10))
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)

	// Secured routes (require a valid bearer token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// echo-jwt reports a missing token as 400; the API treats
			// missing and invalid tokens alike.
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
		},
	}))

	secured.GET("/categories", categoryHandler.List)
	secured.GET("/medicines", medicineHandler.List)
	secured.GET("/medicines/search", medicineHandler.Search)
	secured.GET("/medicines/:id", medicineHandler.Get)
	secured.GET("/manufacturers", manufacturerHandler.List)

	// Admin-only routes
	admin := secured.Group("", middleware.RequireRole(model.RoleAdmin))
	admin.POST("/categories", categoryHandler.Create)
	admin.DELETE("/categories/:id", categoryHandler.Delete)
	admin.POST("/medicines", medicineHandler.Create)
	admin.POST("/manufacturers", manufacturerHandler.Create)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
