package snapshot

import "context"

// Store is a flat key-value blob store. Implementations are stateless
// and perform I/O on each call without caching.
type Store interface {
	// List returns all available keys in the store.
	List(ctx context.Context) ([]string, error)
	// Load retrieves the bytes stored under key. A missing key is
	// reported as ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save persists data under key, creating or overwriting as needed.
	Save(ctx context.Context, key string, data []byte) error
	// Delete removes key from storage. Missing keys are ignored.
	Delete(ctx context.Context, key string) error
}
