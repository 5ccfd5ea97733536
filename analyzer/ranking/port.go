package ranking

import (
	"context"
	"time"
)

// ResultCache stores serialized analyze responses keyed by a request digest.
// Implementations must treat a miss as (nil, nil), not an error; the service
// degrades to a direct computation when the cache is down.
type ResultCache interface {
	// Get returns the cached payload for key, or nil when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the payload under key with the given TTL.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}
