package querycache

import (
	"context"
	"time"

	"github.com/mirtechlab/mt-analytics/infrastructure/valkey"
)

// ValkeyStore implements Store on top of the shared Valkey client using
// plain GET / SET-with-EX semantics. It holds nothing beyond the connection
// handle; the server owns the physical entries and their expiry.
type ValkeyStore struct {
	client *valkey.Client
}

func NewValkeyStore(client *valkey.Client) *ValkeyStore {
	return &ValkeyStore{client: client}
}

func (s *ValkeyStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	inner := s.client.Inner()
	cmd := inner.B().Get().Key(s.client.Key(key)).Build()
	data, err := inner.Do(ctx, cmd).AsBytes()
	if err != nil {
		if valkey.IsNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (s *ValkeyStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	inner := s.client.Inner()
	cmd := inner.B().Set().
		Key(s.client.Key(key)).
		Value(string(value)).
		Ex(ttl).
		Build()
	return inner.Do(ctx, cmd).Error()
}
