package ports

import (
	"context"
	"time"

	"github.com/habitatmx/realestate-api/internal/core/domain"
)

// AppointmentRepository defines the interface for appointment persistence.
// UpdateStatus must be atomic with respect to concurrent readers: a reader
// observes either the old record or the new one, never a torn write.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus, updatedAt time.Time, updatedBy string) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}
