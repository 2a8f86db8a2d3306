package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/habitatmx/realestate-api/internal/core/domain"
	"github.com/habitatmx/realestate-api/pkg/logger"
)

type stubInquiryRepo struct {
	byID   map[string]*domain.Inquiry
	nextID int
}

func newStubInquiryRepo() *stubInquiryRepo {
	return &stubInquiryRepo{byID: make(map[string]*domain.Inquiry)}
}

func (r *stubInquiryRepo) Create(_ context.Context, in *domain.Inquiry) (*domain.Inquiry, error) {
	r.nextID++
	clone := *in
	clone.ID = "inq-" + strconv.Itoa(r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubInquiryRepo) List(_ context.Context) ([]domain.Inquiry, error) {
	out := make([]domain.Inquiry, 0, len(r.byID))
	for _, in := range r.byID {
		out = append(out, *in)
	}
	return out, nil
}

func (r *stubInquiryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrInquiryNotFound
	}
	delete(r.byID, id)
	return nil
}

func sampleInquiry() *domain.Inquiry {
	return &domain.Inquiry{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Viewing request",
		Message: "Is the Roma house still available?",
	}
}

func TestInquiryService_Submit_SendsAlert(t *testing.T) {
	repo := newStubInquiryRepo()
	mailer := &stubMailer{}
	svc := NewInquiryService(repo, mailer, "office@habitatmx.com", logger.Nop())

	created, err := svc.Submit(context.Background(), sampleInquiry())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one alert mail, got %d", len(mailer.sent))
	}
	if mailer.sent[0].to != "office@habitatmx.com" {
		t.Fatalf("alert sent to wrong address: %s", mailer.sent[0].to)
	}
}

func TestInquiryService_Submit_MailerFailureStillStores(t *testing.T) {
	repo := newStubInquiryRepo()
	mailer := &stubMailer{err: errors.New("smtp down")}
	svc := NewInquiryService(repo, mailer, "office@habitatmx.com", logger.Nop())

	created, err := svc.Submit(context.Background(), sampleInquiry())
	if err != nil {
		t.Fatalf("a failed alert must not fail the submission: %v", err)
	}

	stored, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != created.ID {
		t.Fatalf("inquiry not stored despite alert failure: %+v", stored)
	}
}

func TestInquiryService_Submit_NoAlertAddressConfigured(t *testing.T) {
	repo := newStubInquiryRepo()
	mailer := &stubMailer{}
	svc := NewInquiryService(repo, mailer, "", logger.Nop())

	if _, err := svc.Submit(context.Background(), sampleInquiry()); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("no alert expected without a configured address, got %d", len(mailer.sent))
	}
}
