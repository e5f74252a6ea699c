package repositories

import (
	"context"
	"time"
)

// VideoCache keeps rendered catalog listings out of the database's hot path.
type VideoCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration)
	InvalidateLists(ctx context.Context)
}
