package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrEmptyCart is returned when checkout is requested on an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// ErrNoStore is returned when no cart store is configured.
var ErrNoStore = errors.New("cart store not configured")

// Store mirrors carts keyed by session token. The policy is single writer,
// last write wins; concurrent sessions do not coordinate.
type Store interface {
	Load(ctx context.Context, token string) (*Cart, error)
	Save(ctx context.Context, token string, ct *Cart) error
	Delete(ctx context.Context, token string) error
}

// NewSessionToken mints a fresh cart session token.
func NewSessionToken() string {
	return uuid.NewString()
}

// RedisStore persists carts in Redis with a sliding TTL.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore creates a cart store over the given Redis client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: 24 * time.Hour}
}

func cartKey(token string) string { return "cart:" + token }

// Load fetches the cart for a session token; a missing key yields nil.
func (s *RedisStore) Load(ctx context.Context, token string) (*Cart, error) {
	if s == nil || s.rdb == nil {
		return nil, ErrNoStore
	}
	raw, err := s.rdb.Get(ctx, cartKey(token)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ct Cart
	if err := json.Unmarshal([]byte(raw), &ct); err != nil {
		return nil, err
	}
	return &ct, nil
}

// Save writes the cart, refreshing its TTL.
func (s *RedisStore) Save(ctx context.Context, token string, ct *Cart) error {
	if s == nil || s.rdb == nil {
		return ErrNoStore
	}
	raw, err := json.Marshal(ct)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, cartKey(token), raw, s.ttl).Err()
}

// Delete removes the mirrored cart.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if s == nil || s.rdb == nil {
		return ErrNoStore
	}
	return s.rdb.Del(ctx, cartKey(token)).Err()
}

// MemoryStore is an in-process fallback used when Redis is not configured.
// Carts do not survive a restart.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewMemoryStore creates an empty in-process cart store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]*Cart)}
}

// Load returns a copy of the stored cart, or nil.
func (s *MemoryStore) Load(_ context.Context, token string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ct := s.carts[token]
	if ct == nil {
		return nil, nil
	}
	cp := *ct
	cp.Lines = append([]Line(nil), ct.Lines...)
	return &cp, nil
}

// Save stores a copy of the cart.
func (s *MemoryStore) Save(_ context.Context, token string, ct *Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *ct
	cp.Lines = append([]Line(nil), ct.Lines...)
	s.carts[token] = &cp
	return nil
}

// Delete removes the cart.
func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, token)
	return nil
}
