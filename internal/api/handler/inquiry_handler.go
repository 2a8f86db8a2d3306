package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/habitatmx/realestate-api/internal/core/domain"
	"github.com/habitatmx/realestate-api/internal/core/ports"
)

// InquiryHandler handles contact-form intake and back-office review.
type InquiryHandler struct {
	service ports.InquiryService
}

func NewInquiryHandler(service ports.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

type inquiryRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type inquiryResponse struct {
	Message string          `json:"message"`
	Inquiry *domain.Inquiry `json:"inquiry"`
}

// Submit handles POST /inquiries — public contact form.
//
// @Summary      Submit a contact inquiry
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        body  body      inquiryRequest  true  "Inquiry"
// @Success      201   {object}  inquiryResponse
// @Failure      400   {object}  errorResponse
// @Router       /inquiries [post]
func (h *InquiryHandler) Submit(c echo.Context) error {
	var req inquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Submit(c.Request().Context(), &domain.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, inquiryResponse{Message: "inquiry received", Inquiry: created})
}

// List handles GET /admin/inquiries.
//
// @Summary      List inquiries
// @Tags         inquiries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Inquiry
// @Failure      401  {object}  errorResponse
// @Router       /admin/inquiries [get]
func (h *InquiryHandler) List(c echo.Context) error {
	inquiries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inquiries)
}

// Delete handles DELETE /admin/inquiries/:id.
//
// @Summary      Delete an inquiry
// @Tags         inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Inquiry id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/inquiries/{id} [delete]
func (h *InquiryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "inquiry deleted"})
}
