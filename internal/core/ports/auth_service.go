package ports

import (
	"context"
	"time"

	"github.com/habitatmx/realestate-api/internal/core/domain"
)

// LoginResult carries a freshly issued session token and its expiry.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Identity  domain.Identity
}

// AuthService implements login, password changes and staff provisioning.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error
	CreateStaff(ctx context.Context, username, password, role string) (*domain.Account, error)
	ListStaff(ctx context.Context) ([]domain.Account, error)
	DeleteStaff(ctx context.Context, id string) error
}
