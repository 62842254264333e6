package redis

import (
	"context"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/db"
)

// Append pushes a value onto the tail of the list at key (RPUSH).
func (s *Store) Append(ctx context.Context, key string, value []byte) error {
	cmd := s.b().Rpush().Key(key).Element(string(value)).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpRPush, Err: err}
	}
	return nil
}

// Range returns every element of the list at key in insertion order.
func (s *Store) Range(ctx context.Context, key string) ([][]byte, error) {
	cmd := s.b().Lrange().Key(key).Start(0).Stop(-1).Build()
	vals, err := s.do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, &db.Error{Op: db.OpLRange, Err: err}
	}
	out := make([][]byte, len(vals))
	for i, v := range vals {
		out[i] = []byte(v)
	}
	return out, nil
}

// Len returns the number of elements in the list at key.
func (s *Store) Len(ctx context.Context, key string) (int64, error) {
	cmd := s.b().Llen().Key(key).Build()
	n, err := s.do(ctx, cmd).AsInt64()
	if err != nil {
		return 0, &db.Error{Op: db.OpLLen, Err: err}
	}
	return n, nil
}
