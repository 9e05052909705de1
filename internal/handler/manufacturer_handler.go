package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"medstore/internal/service"
)

// ManufacturerHandler handles manufacturer endpoints.
type ManufacturerHandler struct {
	manufacturerService service.ManufacturerService
}

// NewManufacturerHandler creates a new manufacturer handler.
func NewManufacturerHandler(manufacturerService service.ManufacturerService) *ManufacturerHandler {
	return &ManufacturerHandler{manufacturerService: manufacturerService}
}

// CreateManufacturerRequest represents a manufacturer creation request.
type CreateManufacturerRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Country     string `json:"country"`
	Description string `json:"description"`
}

// Create godoc
// @Summary Create a manufacturer (admin only)
// @Tags manufacturers
// @Accept json
// @Produce json
// @Param request body CreateManufacturerRequest true "Manufacturer data"
// @Success 201 {object} Response{data=model.Manufacturer}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Security BearerAuth
// @Router /manufacturers [post]
func (h *ManufacturerHandler) Create(c echo.Context) error {
	var req CreateManufacturerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	manufacturer, err := h.manufacturerService.Create(c.Request().Context(), req.Name, req.Country, req.Description)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "Successfully created a new manufacturer", manufacturer)
}

// List godoc
// @Summary List manufacturers
// @Tags manufacturers
// @Produce json
// @Success 200 {object} Response{data=[]model.Manufacturer}
// @Security BearerAuth
// @Router /manufacturers [get]
func (h *ManufacturerHandler) List(c echo.Context) error {
	manufacturers, err := h.manufacturerService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "OK", manufacturers)
}
