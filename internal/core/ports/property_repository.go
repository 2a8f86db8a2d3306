package ports

import (
	"context"

	"github.com/habitatmx/realestate-api/internal/core/domain"
)

// PropertyRepository defines the interface for listing persistence.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context, publishedOnly bool) ([]domain.Property, error)
	Update(ctx context.Context, id string, p *domain.Property) (*domain.Property, error)
	Delete(ctx context.Context, id string) error
}

// InquiryRepository defines the interface for contact-message persistence.
type InquiryRepository interface {
	Create(ctx context.Context, in *domain.Inquiry) (*domain.Inquiry, error)
	List(ctx context.Context) ([]domain.Inquiry, error)
	Delete(ctx context.Context, id string) error
}

// FAQRepository defines the interface for FAQ persistence.
type FAQRepository interface {
	Create(ctx context.Context, f *domain.FAQ) (*domain.FAQ, error)
	List(ctx context.Context) ([]domain.FAQ, error)
	Update(ctx context.Context, id string, f *domain.FAQ) (*domain.FAQ, error)
	Delete(ctx context.Context, id string) error
}
