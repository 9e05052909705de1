package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"medstore/internal/service"
)

// CategoryHandler handles catalog category endpoints.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the multipart form fields for category
// creation.
type CreateCategoryRequest struct {
	Name         string `form:"name" validate:"required,max=255"`
	Description  string `form:"description"`
	ThumbnailURL string `form:"thumbnailUrl"`
	Position     int    `form:"position"`
}

// Create godoc
// @Summary Create a category (admin only)
// @Tags categories
// @Accept mpfd
// @Produce json
// @Param name formData string true "Category name"
// @Param description formData string false "Description"
// @Param thumbnailUrl formData string false "Thumbnail reference"
// @Param position formData int false "Display position"
// @Success 201 {object} Response{data=model.Category}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 403 {object} Response
// @Failure 409 {object} Response
// @Security BearerAuth
// @Router /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categoryService.Create(c.Request().Context(), service.CreateCategoryInput{
		Name:         req.Name,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		Position:     req.Position,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "Successfully created a new category", category)
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Param page query int false "Page number, zero-based"
// @Param size query int false "Page size"
// @Success 200 {object} Response{data=[]model.Category}
// @Security BearerAuth
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	page, size := pageParams(c)
	categories, err := h.categoryService.List(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "OK", categories)
}

// Delete godoc
// @Summary Delete a category (admin only)
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Param cascade query bool false "Also delete the category's medicines"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category id")
	}
	cascade, _ := strconv.ParseBool(c.QueryParam("cascade"))

	if err := h.categoryService.Delete(c.Request().Context(), id, cascade); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Category deleted", nil)
}

func pageParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, err := strconv.Atoi(c.QueryParam("size"))
	if err != nil || size <= 0 {
		size = 10
	}
	if page < 0 {
		page = 0
	}
	return page, size
}
