package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimit caps the request rate on a route group with a shared token
// bucket. Used on the auth endpoints to slow down credential stuffing;
// everything else stays unlimited.
func RateLimit(r rate.Limit, burst int) echo.MiddlewareFunc {
	limiter := rate.NewLimiter(r, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
