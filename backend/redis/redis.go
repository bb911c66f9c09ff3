// Package redis persists config bytes in Redis. Useful when several
// instances of an application share configuration, or when the host has no
// writable config directory.
package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kingwingfly/encrypt-config/backend"
)

var ErrNilClient = errors.New("redis backend: nil client")

// Store implements backend.Backend over a go-redis client. Entries are
// written without expiry: config is persistence, not a cache.
type Store struct {
	rdb         goredis.UniversalClient
	prefix      string
	closeClient bool
}

var _ backend.Backend = (*Store)(nil)

type Config struct {
	Client goredis.UniversalClient
	// Prefix namespaces keys, e.g. "cfg:myapp:". May be empty.
	Prefix string
	// CloseClient should be true only if this store exclusively owns the
	// client.
	CloseClient bool
}

func New(cfg Config) (*Store, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	return &Store{rdb: cfg.Client, prefix: cfg.Prefix, closeClient: cfg.CloseClient}, nil
}

func (s *Store) key(name string) string { return s.prefix + name }

func (s *Store) Read(ctx context.Context, name string) ([]byte, bool, error) {
	b, err := s.rdb.Get(ctx, s.key(name)).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *Store) Write(ctx context.Context, name string, data []byte) error {
	return s.rdb.Set(ctx, s.key(name), data, 0).Err()
}

func (s *Store) Delete(ctx context.Context, name string) error {
	return s.rdb.Del(ctx, s.key(name)).Err()
}

// Close releases the underlying client only when this store owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (s *Store) Close(context.Context) error {
	if s.closeClient {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
