// Package cache stores computed layouts and rendered artifacts so that
// repeated runs over unchanged menus skip straight to the result. Backends
// share one small interface: a local file cache for CLI use, Redis for
// fleets of boards served from one process group, and a null cache for
// turning the whole thing off.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key value store with per-entry expiry.
// A miss is reported through the bool, not through an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default expiries per entry kind. Layouts are cheap to recompute, so they
// expire daily; rendered artifacts are larger and favored longer.
const (
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)
