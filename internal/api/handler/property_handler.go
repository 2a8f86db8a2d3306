package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/habitatmx/realestate-api/internal/core/domain"
	"github.com/habitatmx/realestate-api/internal/core/ports"
)

// PropertyHandler serves the public listing pages and the admin CRUD.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

type propertyLocationRequest struct {
	Address string `json:"address" validate:"required"`
	City    string `json:"city"    validate:"required"`
	State   string `json:"state"   validate:"required"`
	ZipCode string `json:"zip_code"`
}

type propertyRequest struct {
	Title       string                  `json:"title"       validate:"required"`
	Description string                  `json:"description" validate:"required"`
	Type        string                  `json:"type"        validate:"required,oneof=house apartment land commercial"`
	Price       float64                 `json:"price"       validate:"required,gt=0"`
	Currency    string                  `json:"currency"    validate:"required,len=3"`
	Bedrooms    int                     `json:"bedrooms"`
	Bathrooms   int                     `json:"bathrooms"`
	AreaM2      float64                 `json:"area_m2"     validate:"omitempty,gt=0"`
	Location    propertyLocationRequest `json:"location"    validate:"required"`
	ImageURLs   []string                `json:"image_urls"`
	Published   bool                    `json:"published"`
}

type propertyResponse struct {
	Message  string           `json:"message"`
	Property *domain.Property `json:"property"`
}

func (r propertyRequest) toInput() ports.PropertyInput {
	return ports.PropertyInput{
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		Price:       r.Price,
		Currency:    r.Currency,
		Bedrooms:    r.Bedrooms,
		Bathrooms:   r.Bathrooms,
		AreaM2:      r.AreaM2,
		Location: domain.PropertyLocation{
			Address: r.Location.Address,
			City:    r.Location.City,
			State:   r.Location.State,
			ZipCode: r.Location.ZipCode,
		},
		ImageURLs: r.ImageURLs,
		Published: r.Published,
	}
}

// ListPublic handles GET /properties — published listings only.
//
// @Summary      List published properties
// @Tags         properties
// @Produce      json
// @Success      200  {array}  domain.Property
// @Router       /properties [get]
func (h *PropertyHandler) ListPublic(c echo.Context) error {
	listings, err := h.service.ListPublic(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listings)
}

// Get handles GET /properties/:id.
//
// @Summary      Get a property
// @Tags         properties
// @Produce      json
// @Param        id  path  string  true  "Property id"
// @Success      200  {object}  domain.Property
// @Failure      404  {object}  errorResponse
// @Router       /properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	property, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}

// ListAll handles GET /admin/properties — drafts included.
//
// @Summary      List all properties
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Property
// @Failure      401  {object}  errorResponse
// @Router       /admin/properties [get]
func (h *PropertyHandler) ListAll(c echo.Context) error {
	listings, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listings)
}

// Create handles POST /admin/properties.
//
// @Summary      Create a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      propertyRequest  true  "Listing details"
// @Success      201   {object}  propertyResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /admin/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, propertyResponse{Message: "property created", Property: created})
}

// Update handles PUT /admin/properties/:id.
//
// @Summary      Update a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Property id"
// @Param        body  body      propertyRequest  true  "Listing details"
// @Success      200   {object}  propertyResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, propertyResponse{Message: "property updated", Property: updated})
}

// Delete handles DELETE /admin/properties/:id.
//
// @Summary      Delete a property
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Property id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "property deleted"})
}
