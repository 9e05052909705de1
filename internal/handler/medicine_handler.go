package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"medstore/internal/service"
)

// MedicineHandler handles catalog medicine endpoints.
type MedicineHandler struct {
	medicineService service.MedicineService
}

// NewMedicineHandler creates a new medicine handler.
func NewMedicineHandler(medicineService service.MedicineService) *MedicineHandler {
	return &MedicineHandler{medicineService: medicineService}
}

// CreateMedicineRequest represents a medicine creation request.
type CreateMedicineRequest struct {
	Name           string `json:"name" validate:"required,max=255"`
	Description    string `json:"description"`
	Price          string `json:"price" validate:"required"`
	CategoryID     string `json:"categoryId" validate:"required,uuid"`
	ManufacturerID string `json:"manufacturerId" validate:"required,uuid"`
}

// Create godoc
// @Summary Create a medicine (admin only)
// @Tags medicines
// @Accept json
// @Produce json
// @Param request body CreateMedicineRequest true "Medicine data"
// @Success 201 {object} Response{data=model.Medicine}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Security BearerAuth
// @Router /medicines [post]
func (h *MedicineHandler) Create(c echo.Context) error {
	var req CreateMedicineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category id")
	}
	manufacturerID, err := uuid.Parse(req.ManufacturerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid manufacturer id")
	}

	medicine, err := h.medicineService.Create(c.Request().Context(), service.CreateMedicineInput{
		Name:           req.Name,
		Description:    req.Description,
		Price:          price,
		CategoryID:     categoryID,
		ManufacturerID: manufacturerID,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "Successfully created a new medicine", medicine)
}

// Get godoc
// @Summary Get medicine detail
// @Tags medicines
// @Produce json
// @Param id path string true "Medicine ID"
// @Success 200 {object} Response{data=model.Medicine}
// @Failure 404 {object} Response
// @Security BearerAuth
// @Router /medicines/{id} [get]
func (h *MedicineHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid medicine id")
	}

	medicine, err := h.medicineService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "OK", medicine)
}

// List godoc
// @Summary List medicines
// @Tags medicines
// @Produce json
// @Param page query int false "Page number, zero-based"
// @Param size query int false "Page size"
// @Success 200 {object} Response{data=[]model.Medicine}
// @Security BearerAuth
// @Router /medicines [get]
func (h *MedicineHandler) List(c echo.Context) error {
	page, size := pageParams(c)
	medicines, err := h.medicineService.List(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "OK", medicines)
}

// Search godoc
// @Summary Search medicines by name
// @Tags medicines
// @Produce json
// @Param keyword query string true "Search keyword"
// @Param page query int false "Page number, zero-based"
// @Param size query int false "Page size"
// @Success 200 {object} Response{data=[]model.Medicine}
// @Security BearerAuth
// @Router /medicines/search [get]
func (h *MedicineHandler) Search(c echo.Context) error {
	page, size := pageParams(c)
	medicines, err := h.medicineService.Search(c.Request().Context(), c.QueryParam("keyword"), page, size)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "OK", medicines)
}
