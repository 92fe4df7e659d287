package snapshot

import "errors"

// Sentinel errors for store operations.
var (
	ErrNotFound   = errors.New("snapshot: key not found")
	ErrLoadFailed = errors.New("snapshot: load failed")
	ErrSaveFailed = errors.New("snapshot: save failed")
	ErrBadKey     = errors.New("snapshot: invalid key")
)
