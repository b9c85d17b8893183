package ports

import "context"

// SeedSource provides a starter word list for an empty library.
// The payload has the same shape as a JSON library export.
type SeedSource interface {
	Fetch(ctx context.Context) ([]byte, error)
}
