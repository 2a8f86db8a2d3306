package ports

import "context"

// Mailer abstracts the outbound email provider. Sends are best-effort:
// callers treat a returned error as a logged, non-fatal outcome.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ListingCache abstracts the read cache in front of the public property
// listing. Misses and cache errors fall through to the repository.
type ListingCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte)
	Invalidate(ctx context.Context, keys ...string)
}
