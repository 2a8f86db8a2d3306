package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/habitatmx/realestate-api/internal/core/domain"
	"github.com/habitatmx/realestate-api/internal/core/ports"
)

type stubPropertyService struct {
	created  *domain.Property
	gotInput ports.PropertyInput
}

func (s *stubPropertyService) Create(_ context.Context, in ports.PropertyInput) (*domain.Property, error) {
	s.gotInput = in
	if s.created != nil {
		return s.created, nil
	}
	return &domain.Property{ID: "prop-1", Title: in.Title, Published: in.Published}, nil
}

func (s *stubPropertyService) Get(_ context.Context, _ string) (*domain.Property, error) {
	return nil, domain.ErrPropertyNotFound
}

func (s *stubPropertyService) ListPublic(_ context.Context) ([]domain.Property, error) {
	return nil, nil
}

func (s *stubPropertyService) ListAll(_ context.Context) ([]domain.Property, error) {
	return nil, nil
}

func (s *stubPropertyService) Update(_ context.Context, _ string, in ports.PropertyInput) (*domain.Property, error) {
	s.gotInput = in
	return &domain.Property{ID: "prop-1", Title: in.Title}, nil
}

func (s *stubPropertyService) Delete(_ context.Context, _ string) error {
	return nil
}

func TestPropertyHandler_Create_AreaOptional(t *testing.T) {
	svc := &stubPropertyService{}
	h := NewPropertyHandler(svc)

	e := echo.New()
	e.Validator = NewValidator()
	c, rec := newTestContext(e, http.MethodPost, "/admin/properties",
		`{"title":"Terreno Norte","description":"Unmeasured lot","type":"land","price":900000,"currency":"MXN","location":{"address":"Km 4 Carretera Norte","city":"Monterrey","state":"NL"}}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("omitted area must be accepted: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.gotInput.AreaM2 != 0 {
		t.Fatalf("expected zero area forwarded, got %v", svc.gotInput.AreaM2)
	}
}

func TestPropertyHandler_Create_NegativeAreaRejected(t *testing.T) {
	h := NewPropertyHandler(&stubPropertyService{})

	e := echo.New()
	e.Validator = NewValidator()
	c, _ := newTestContext(e, http.MethodPost, "/admin/properties",
		`{"title":"Terreno Norte","description":"Bad lot","type":"land","price":900000,"currency":"MXN","area_m2":-50,"location":{"address":"Km 4 Carretera Norte","city":"Monterrey","state":"NL"}}`)

	err := h.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative area, got %v", err)
	}
}

func TestPropertyHandler_Create_UnknownTypeRejected(t *testing.T) {
	h := NewPropertyHandler(&stubPropertyService{})

	e := echo.New()
	e.Validator = NewValidator()
	c, _ := newTestContext(e, http.MethodPost, "/admin/properties",
		`{"title":"Castillo","description":"Not a supported type","type":"castle","price":900000,"currency":"MXN","location":{"address":"Calle 1","city":"Monterrey","state":"NL"}}`)

	err := h.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown type, got %v", err)
	}
}
