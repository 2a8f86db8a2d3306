package ports

import (
	"context"

	"github.com/habitatmx/realestate-api/internal/core/domain"
)

// BookAppointmentInput carries a public booking submission.
type BookAppointmentInput struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Date    string
	Note    string
}

// TransitionResult separates the committed state change from the
// best-effort notification outcome. EmailSent is false both when the
// status did not call for an email and when the send was skipped or
// failed; the transition itself has committed either way.
type TransitionResult struct {
	Appointment *domain.Appointment
	EmailSent   bool
}

// AppointmentService implements the booking intake and status workflow.
type AppointmentService interface {
	Book(ctx context.Context, in BookAppointmentInput) (*domain.Appointment, error)
	Transition(ctx context.Context, id string, newStatus domain.AppointmentStatus, actor string) (*TransitionResult, error)
	List(ctx context.Context) ([]domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}
