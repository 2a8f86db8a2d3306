package service

import (
	"context"
	"time"

	"github.com/habitatmx/realestate-api/internal/core/domain"
	"github.com/habitatmx/realestate-api/internal/core/ports"
)

// FAQService is thin CRUD glue over the FAQ repository.
type FAQService struct {
	repo ports.FAQRepository
}

func NewFAQService(repo ports.FAQRepository) *FAQService {
	return &FAQService{repo: repo}
}

func (s *FAQService) Create(ctx context.Context, f *domain.FAQ) (*domain.FAQ, error) {
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now
	return s.repo.Create(ctx, f)
}

func (s *FAQService) List(ctx context.Context) ([]domain.FAQ, error) {
	return s.repo.List(ctx)
}

func (s *FAQService) Update(ctx context.Context, id string, f *domain.FAQ) (*domain.FAQ, error) {
	f.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, id, f)
}

func (s *FAQService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
