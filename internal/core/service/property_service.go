package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/habitatmx/realestate-api/internal/core/domain"
	"github.com/habitatmx/realestate-api/internal/core/ports"
)

const listingCacheKey = "listings:public"

// PropertyService implements listing CRUD. Public reads go through the
// cache; every admin write invalidates it.
type PropertyService struct {
	repo   ports.PropertyRepository
	cache  ports.ListingCache
	logger zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, cache ports.ListingCache, logger zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, cache: cache, logger: logger}
}

func (s *PropertyService) Create(ctx context.Context, in ports.PropertyInput) (*domain.Property, error) {
	now := time.Now().UTC()
	property := &domain.Property{
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Price:       in.Price,
		Currency:    in.Currency,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		AreaM2:      in.AreaM2,
		Location:    in.Location,
		ImageURLs:   in.ImageURLs,
		Published:   in.Published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, property)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, listingCacheKey)
	s.logger.Info().Str("id", created.ID).Str("title", created.Title).Msg("property created")
	return created, nil
}

func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

// ListPublic returns published listings, served from cache when possible.
func (s *PropertyService) ListPublic(ctx context.Context) ([]domain.Property, error) {
	if payload, ok := s.cache.Get(ctx, listingCacheKey); ok {
		var cached []domain.Property
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
		s.cache.Invalidate(ctx, listingCacheKey)
	}

	listings, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(listings); err == nil {
		s.cache.Set(ctx, listingCacheKey, payload)
	}
	return listings, nil
}

func (s *PropertyService) ListAll(ctx context.Context) ([]domain.Property, error) {
	return s.repo.List(ctx, false)
}

func (s *PropertyService) Update(ctx context.Context, id string, in ports.PropertyInput) (*domain.Property, error) {
	property := &domain.Property{
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Price:       in.Price,
		Currency:    in.Currency,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		AreaM2:      in.AreaM2,
		Location:    in.Location,
		ImageURLs:   in.ImageURLs,
		Published:   in.Published,
		UpdatedAt:   time.Now().UTC(),
	}

	updated, err := s.repo.Update(ctx, id, property)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, listingCacheKey)
	return updated, nil
}

func (s *PropertyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, listingCacheKey)
	return nil
}
