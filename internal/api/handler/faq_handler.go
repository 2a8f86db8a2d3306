package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/habitatmx/realestate-api/internal/core/domain"
	"github.com/habitatmx/realestate-api/internal/core/ports"
)

// FAQHandler serves the public FAQ page and the admin CRUD.
type FAQHandler struct {
	service ports.FAQService
}

func NewFAQHandler(service ports.FAQService) *FAQHandler {
	return &FAQHandler{service: service}
}

type faqRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer"   validate:"required"`
	Order    int    `json:"order"`
}

// List handles GET /faqs — public.
//
// @Summary      List FAQs
// @Tags         faqs
// @Produce      json
// @Success      200  {array}  domain.FAQ
// @Router       /faqs [get]
func (h *FAQHandler) List(c echo.Context) error {
	faqs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, faqs)
}

// Create handles POST /admin/faqs.
//
// @Summary      Create an FAQ entry
// @Tags         faqs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      faqRequest  true  "Question and answer"
// @Success      201   {object}  domain.FAQ
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /admin/faqs [post]
func (h *FAQHandler) Create(c echo.Context) error {
	var req faqRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), &domain.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
		Order:    req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /admin/faqs/:id.
//
// @Summary      Update an FAQ entry
// @Tags         faqs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string      true  "FAQ id"
// @Param        body  body      faqRequest  true  "Question and answer"
// @Success      200   {object}  domain.FAQ
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/faqs/{id} [put]
func (h *FAQHandler) Update(c echo.Context) error {
	var req faqRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), &domain.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
		Order:    req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /admin/faqs/:id.
//
// @Summary      Delete an FAQ entry
// @Tags         faqs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "FAQ id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/faqs/{id} [delete]
func (h *FAQHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "faq deleted"})
}
