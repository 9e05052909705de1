package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"medstore/internal/service"
)

// UserHandler handles user registration.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} Response{data=bool}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.userService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "User created successfully", created)
}

// Greet godoc
// @Summary Greeting placeholder
// @Tags users
// @Produce plain
// @Success 200 {string} string
// @Router /users [get]
func (h *UserHandler) Greet(c echo.Context) error {
	return c.String(http.StatusOK, "Welcome to the medstore API")
}
