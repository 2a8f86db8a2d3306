package ports

import (
	"context"

	"github.com/habitatmx/realestate-api/internal/core/domain"
)

// PropertyInput carries the writable fields of a listing.
type PropertyInput struct {
	Title       string
	Description string
	Type        string
	Price       float64
	Currency    string
	Bedrooms    int
	Bathrooms   int
	AreaM2      float64
	Location    domain.PropertyLocation
	ImageURLs   []string
	Published   bool
}

// PropertyService implements listing CRUD with a cached public read path.
type PropertyService interface {
	Create(ctx context.Context, in PropertyInput) (*domain.Property, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
	ListPublic(ctx context.Context) ([]domain.Property, error)
	ListAll(ctx context.Context) ([]domain.Property, error)
	Update(ctx context.Context, id string, in PropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, id string) error
}

// InquiryService implements contact-message intake and review.
type InquiryService interface {
	Submit(ctx context.Context, in *domain.Inquiry) (*domain.Inquiry, error)
	List(ctx context.Context) ([]domain.Inquiry, error)
	Delete(ctx context.Context, id string) error
}

// FAQService implements FAQ CRUD.
type FAQService interface {
	Create(ctx context.Context, f *domain.FAQ) (*domain.FAQ, error)
	List(ctx context.Context) ([]domain.FAQ, error)
	Update(ctx context.Context, id string, f *domain.FAQ) (*domain.FAQ, error)
	Delete(ctx context.Context, id string) error
}
