// Package backend defines the byte-store abstraction persisted config
// sources write through.
//
// Implementations MUST be byte-for-byte transparent: Read must return
// exactly the same []byte previously passed to Write for a name. If a
// store performs internal transforms they must be fully reversed. This
// matters because the crypt package layers encryption on top and treats
// any mutation of the stored bytes as corruption.
//
// Unlike a cache provider there is no TTL and no eviction: config must
// survive restarts, so a Backend is persistence, not caching.
package backend

import "context"

// Backend is a minimal named byte store. Must be safe for concurrent use.
type Backend interface {
	// Read returns (data, true, nil) when name exists and (nil, false,
	// nil) when nothing was persisted yet. IO/remote failures return
	// (nil, false, err).
	Read(ctx context.Context, name string) ([]byte, bool, error)

	// Write persists data under name, replacing any previous content.
	Write(ctx context.Context, name string, data []byte) error

	// Delete removes name (best-effort; absent names are not an error).
	Delete(ctx context.Context, name string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
