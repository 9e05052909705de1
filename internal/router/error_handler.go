package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	apperrors "medstore/internal/errors"
	"medstore/internal/handler"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps domain
// errors to their HTTP status, logs unexpected errors without leaking
// detail to the client, and renders everything in the response envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// Echo's own errors: bind failures, 404 from the router,
		// validation and middleware rejections.
		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, handler.Response{
				Code:    he.Code,
				Message: fmt.Sprintf("%v", he.Message),
			})
			return
		}

		code, msg := apperrors.MapError(err)
		if code == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		}

		_ = c.JSON(code, handler.Response{Code: code, Message: msg})
	}
}
