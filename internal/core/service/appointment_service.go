package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/habitatmx/realestate-api/internal/api/metrics"
	"github.com/habitatmx/realestate-api/internal/core/domain"
	"github.com/habitatmx/realestate-api/internal/core/ports"
)

// notifyTimeout bounds the approval-email send so a hung mail provider
// cannot keep a transition response pending.
const notifyTimeout = 5 * time.Second

// AppointmentService implements booking intake and the status workflow.
type AppointmentService struct {
	repo   ports.AppointmentRepository
	mailer ports.Mailer
	logger zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, mailer ports.Mailer, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, mailer: mailer, logger: logger}
}

// Book stores a public booking submission with status pending.
func (s *AppointmentService) Book(ctx context.Context, in ports.BookAppointmentInput) (*domain.Appointment, error) {
	now := time.Now().UTC()
	appointment := &domain.Appointment{
		Reference: generateReference(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Service:   in.Service,
		Date:      in.Date,
		Note:      in.Note,
		Status:    domain.AppointmentPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, appointment)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create appointment")
		return nil, err
	}

	metrics.AppointmentsCreatedTotal.WithLabelValues(created.Service).Inc()
	s.logger.Info().Str("reference", created.Reference).Str("service", created.Service).Msg("appointment booked")
	return created, nil
}

// Transition applies a status change and, iff the new status is approved,
// sends a best-effort notification to the requester. The two phases are
// strictly ordered: the state change commits first and is never rolled
// back or reported as failed because of a notification problem.
func (s *AppointmentService) Transition(ctx context.Context, id string, newStatus domain.AppointmentStatus, actor string) (*ports.TransitionResult, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: %q (valid: %s)", domain.ErrInvalidStatus, newStatus, joinStatuses())
	}
	if actor == "" {
		actor = domain.UpdatedBySystem
	}

	updated, err := s.repo.UpdateStatus(ctx, id, newStatus, time.Now().UTC(), actor)
	if err != nil {
		return nil, err
	}

	metrics.AppointmentTransitionsTotal.WithLabelValues(string(newStatus)).Inc()
	s.logger.Info().
		Str("id", updated.ID).
		Str("status", string(newStatus)).
		Str("actor", actor).
		Msg("appointment transitioned")

	emailSent := false
	if newStatus == domain.AppointmentApproved {
		emailSent = s.notifyApproval(ctx, updated)
	}

	return &ports.TransitionResult{Appointment: updated, EmailSent: emailSent}, nil
}

// notifyApproval sends the approval email with a bounded timeout. Every
// failure path is logged and counted; none propagates to the caller.
func (s *AppointmentService) notifyApproval(ctx context.Context, a *domain.Appointment) bool {
	if !domain.NotifiableEmail(a.Email) {
		metrics.AppointmentNotificationsTotal.WithLabelValues("skipped").Inc()
		s.logger.Warn().Str("id", a.ID).Str("email", a.Email).Msg("approval email skipped: invalid address")
		return false
	}

	sendCtx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	subject := "Your appointment has been approved"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour %s appointment for %s has been approved. Reference: %s.\n\nSee you soon,\nHabitat MX",
		a.Name, a.Service, a.Date, a.Reference,
	)
	if err := s.mailer.Send(sendCtx, a.Email, subject, body); err != nil {
		metrics.AppointmentNotificationsTotal.WithLabelValues("failed").Inc()
		s.logger.Error().Err(err).Str("id", a.ID).Msg("approval email failed")
		return false
	}

	metrics.AppointmentNotificationsTotal.WithLabelValues("sent").Inc()
	s.logger.Info().Str("id", a.ID).Str("email", a.Email).Msg("approval email sent")
	return true
}

func (s *AppointmentService) List(ctx context.Context) ([]domain.Appointment, error) {
	return s.repo.List(ctx)
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// generateReference returns a short human-shareable booking code.
func generateReference() string {
	return "APT-" + strings.ToUpper(uuid.NewString()[:8])
}

func joinStatuses() string {
	names := make([]string, len(domain.AppointmentStatuses))
	for i, st := range domain.AppointmentStatuses {
		names[i] = string(st)
	}
	return strings.Join(names, ", ")
}
