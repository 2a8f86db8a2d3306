package ports

import (
	"context"

	"github.com/habitatmx/realestate-api/internal/core/domain"
)

// AccountRepository defines the interface for back-office account persistence.
type AccountRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	UpdatePasswordHash(ctx context.Context, username, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
