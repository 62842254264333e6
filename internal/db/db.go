package db

import (
	"context"
	"time"
)

// Store is the database facade for the append-only review log.
type Store interface {
	Pinger
	ListStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ListStore provides append-only list operations. Append never overwrites;
// Range returns every element in insertion order.
type ListStore interface {
	Append(ctx context.Context, key string, value []byte) error
	Range(ctx context.Context, key string) ([][]byte, error)
	Len(ctx context.Context, key string) (int64, error)
}
