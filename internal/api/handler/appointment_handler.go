package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/habitatmx/realestate-api/internal/core/domain"
	"github.com/habitatmx/realestate-api/internal/core/ports"
)

// AppointmentHandler handles public booking and back-office management.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type bookAppointmentRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"required"`
	Service string `json:"service" validate:"required"`
	Date    string `json:"date"    validate:"required,datetime=2006-01-02"`
	Note    string `json:"note"`
}

type appointmentResponse struct {
	Message     string              `json:"message"`
	Appointment *domain.Appointment `json:"appointment"`
}

type transitionRequest struct {
	Status    string `json:"status" validate:"required"`
	UpdatedBy string `json:"updatedBy"`
}

type transitionResponse struct {
	Message     string              `json:"message"`
	Appointment *domain.Appointment `json:"appointment"`
	EmailSent   bool                `json:"email_sent"`
}

// Book handles POST /appointments — public booking submission.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      bookAppointmentRequest  true  "Booking details"
// @Success      201   {object}  appointmentResponse
// @Failure      400   {object}  errorResponse
// @Router       /appointments [post]
func (h *AppointmentHandler) Book(c echo.Context) error {
	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Book(c.Request().Context(), ports.BookAppointmentInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Date:    req.Date,
		Note:    req.Note,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, appointmentResponse{Message: "appointment requested", Appointment: created})
}

// List handles GET /appointments — protected, newest first.
//
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Appointment
// @Failure      401  {object}  errorResponse
// @Router       /appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	appointments, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// Transition handles PATCH /appointments/:id — applies a status change.
// The notification outcome is reported separately from the transition:
// email_sent=false never means the status change failed.
//
// @Summary      Transition an appointment's status
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Appointment id"
// @Param        body  body      transitionRequest  true  "New status"
// @Success      200   {object}  transitionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /appointments/{id} [patch]
func (h *AppointmentHandler) Transition(c echo.Context) error {
	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor := req.UpdatedBy
	if actor == "" {
		actor, _ = c.Get("username").(string)
	}

	result, err := h.service.Transition(c.Request().Context(), c.Param("id"), domain.AppointmentStatus(req.Status), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, transitionResponse{
		Message:     "appointment updated",
		Appointment: result.Appointment,
		EmailSent:   result.EmailSent,
	})
}

// Delete handles DELETE /appointments/:id.
//
// @Summary      Delete an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Appointment id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "appointment deleted"})
}
