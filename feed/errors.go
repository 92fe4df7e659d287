package feed

import "errors"

var (
	// ErrBadSource is returned by Publish for an empty name or a nil
	// source.
	ErrBadSource = errors.New("feed: invalid source")

	// ErrDuplicateSource is returned by Publish when the name is taken.
	ErrDuplicateSource = errors.New("feed: duplicate source name")
)
