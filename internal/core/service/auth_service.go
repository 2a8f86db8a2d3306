package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/habitatmx/realestate-api/internal/auth"
	"github.com/habitatmx/realestate-api/internal/core/domain"
	"github.com/habitatmx/realestate-api/internal/core/ports"
)

// AuthService implements login, password changes and staff provisioning.
type AuthService struct {
	repo   ports.AccountRepository
	tokens *auth.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, tokens *auth.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Login authenticates username/password and issues a session token.
// An unknown username and a wrong password return the same error, so the
// response cannot be used to probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	identity := domain.Identity{Username: account.Username, Role: account.Role}
	token, expiresAt, err := s.tokens.Issue(identity)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", account.Username).Str("role", account.Role).Msg("login succeeded")

	return &ports.LoginResult{Token: token, ExpiresAt: expiresAt, Identity: identity}, nil
}

// ChangePassword re-hashes and stores a new password after checking the
// current one against the stored hash.
func (s *AuthService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	if username == "" || currentPassword == "" || newPassword == "" {
		return domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.ErrInvalidCredentials
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePasswordHash(ctx, username, string(hash))
}

// CreateStaff provisions a back-office account.
func (s *AuthService) CreateStaff(ctx context.Context, username, password, role string) (*domain.Account, error) {
	if username == "" || password == "" || !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Str("role", role).Msg("staff account created")
	return created, nil
}

func (s *AuthService) ListStaff(ctx context.Context) ([]domain.Account, error) {
	return s.repo.List(ctx)
}

func (s *AuthService) DeleteStaff(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
