package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/habitatmx/realestate-api/internal/core/domain"
	"github.com/habitatmx/realestate-api/internal/core/ports"
)

// StaffHandler manages back-office accounts. Routes are admin-role-only.
type StaffHandler struct {
	authService ports.AuthService
}

func NewStaffHandler(authService ports.AuthService) *StaffHandler {
	return &StaffHandler{authService: authService}
}

type createStaffRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=admin staff"`
}

// Create handles POST /admin/staff.
//
// @Summary      Provision a back-office account
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStaffRequest  true  "Account details"
// @Success      201   {object}  domain.Account
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/staff [post]
func (h *StaffHandler) Create(c echo.Context) error {
	var req createStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.authService.CreateStaff(c.Request().Context(), req.Username, req.Password, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /admin/staff.
//
// @Summary      List back-office accounts
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Account
// @Failure      403  {object}  errorResponse
// @Router       /admin/staff [get]
func (h *StaffHandler) List(c echo.Context) error {
	accounts, err := h.authService.ListStaff(c.Request().Context())
	if err != nil {
		return err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return c.JSON(http.StatusOK, accounts)
}

// Delete handles DELETE /admin/staff/:id.
//
// @Summary      Delete a back-office account
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Account id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/staff/{id} [delete]
func (h *StaffHandler) Delete(c echo.Context) error {
	if err := h.authService.DeleteStaff(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "account deleted"})
}
