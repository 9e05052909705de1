package handler

import "github.com/labstack/echo/v4"

// Response is the envelope wrapping every JSON payload the API returns.
// Code mirrors the HTTP status; Data is omitted when nil.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Response{
		Code:    status,
		Message: message,
		Data:    data,
	})
}
