package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/habitatmx/realestate-api/internal/core/domain"
	"github.com/habitatmx/realestate-api/internal/core/ports"
	"github.com/habitatmx/realestate-api/pkg/logger"
)

type stubPropertyRepo struct {
	byID      map[string]*domain.Property
	nextID    int
	listCalls int
}

func newStubPropertyRepo() *stubPropertyRepo {
	return &stubPropertyRepo{byID: make(map[string]*domain.Property)}
}

func (r *stubPropertyRepo) Create(_ context.Context, p *domain.Property) (*domain.Property, error) {
	r.nextID++
	clone := *p
	clone.ID = "prop-" + strconv.Itoa(r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPropertyRepo) FindByID(_ context.Context, id string) (*domain.Property, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPropertyRepo) List(_ context.Context, publishedOnly bool) ([]domain.Property, error) {
	r.listCalls++
	out := make([]domain.Property, 0, len(r.byID))
	for _, p := range r.byID {
		if publishedOnly && !p.Published {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPropertyRepo) Update(_ context.Context, id string, p *domain.Property) (*domain.Property, error) {
	existing, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	clone := *p
	clone.ID = id
	clone.CreatedAt = existing.CreatedAt
	r.byID[id] = &clone
	out := clone
	return &out, nil
}

func (r *stubPropertyRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrPropertyNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubListingCache struct {
	entries     map[string][]byte
	invalidates int
}

func newStubListingCache() *stubListingCache {
	return &stubListingCache{entries: make(map[string][]byte)}
}

func (c *stubListingCache) Get(_ context.Context, key string) ([]byte, bool) {
	payload, ok := c.entries[key]
	return payload, ok
}

func (c *stubListingCache) Set(_ context.Context, key string, payload []byte) {
	c.entries[key] = payload
}

func (c *stubListingCache) Invalidate(_ context.Context, keys ...string) {
	for _, key := range keys {
		delete(c.entries, key)
	}
	c.invalidates++
}

func publishedInput(title string) ports.PropertyInput {
	return ports.PropertyInput{
		Title:     title,
		Type:      "house",
		Price:     2500000,
		Currency:  "MXN",
		Published: true,
	}
}

func TestPropertyService_ListPublic_CachesResult(t *testing.T) {
	repo := newStubPropertyRepo()
	cache := newStubListingCache()
	svc := NewPropertyService(repo, cache, logger.Nop())

	if _, err := svc.Create(context.Background(), publishedInput("Casa Roma")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, err := svc.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(first))
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected 1 repo hit, got %d", repo.listCalls)
	}

	second, err := svc.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected 1 cached listing, got %d", len(second))
	}
	if repo.listCalls != 1 {
		t.Fatalf("second list must be served from cache, repo hits: %d", repo.listCalls)
	}
}

func TestPropertyService_WritesInvalidateCache(t *testing.T) {
	repo := newStubPropertyRepo()
	cache := newStubListingCache()
	svc := NewPropertyService(repo, cache, logger.Nop())

	created, err := svc.Create(context.Background(), publishedInput("Casa Roma"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.ListPublic(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if _, ok := cache.entries[listingCacheKey]; !ok {
		t.Fatalf("expected listing cached after read")
	}

	in := publishedInput("Casa Roma Norte")
	if _, err := svc.Update(context.Background(), created.ID, in); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if _, ok := cache.entries[listingCacheKey]; ok {
		t.Fatalf("update must invalidate the listing cache")
	}

	listings, err := svc.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("list after update failed: %v", err)
	}
	if len(listings) != 1 || listings[0].Title != "Casa Roma Norte" {
		t.Fatalf("stale listing after invalidation: %+v", listings)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := cache.entries[listingCacheKey]; ok {
		t.Fatalf("delete must invalidate the listing cache")
	}
}

func TestPropertyService_ListPublic_ExcludesUnpublished(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, newStubListingCache(), logger.Nop())

	if _, err := svc.Create(context.Background(), publishedInput("Visible")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	draft := publishedInput("Draft")
	draft.Published = false
	if _, err := svc.Create(context.Background(), draft); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	public, err := svc.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(public) != 1 || public[0].Title != "Visible" {
		t.Fatalf("unpublished listing leaked: %+v", public)
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 listings for staff, got %d", len(all))
	}
}
