package querycache

import (
	"context"
	"time"
)

// Store is the contract against the backing key-value store.
//
// Get returns (payload, true, nil) for a live entry and (nil, false, nil)
// when the key is absent or expired: absence is a normal outcome, never an
// error. A non-nil error means the store itself could not be reached, which
// callers may treat as a miss to keep serving.
//
// Set stores the payload with an expiration ttl from now, overwriting any
// existing entry for the key including its TTL. Expiry is the only removal
// mechanism; nothing ever deletes entries explicitly.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
