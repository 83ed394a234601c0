package repo

import (
	"context"
	"sync"

	"github.com/murkotick/b2b-catalog-service/internal/app/cart/domain"
)

// MemoryCartRepo keeps carts in process memory. It serves single-instance
// deployments and tests; carts do not expire.
type MemoryCartRepo struct {
	mu    sync.Mutex
	carts map[string][]byte
}

func NewMemoryCartRepo() *MemoryCartRepo {
	return &MemoryCartRepo{carts: map[string][]byte{}}
}

func (r *MemoryCartRepo) Get(_ context.Context, clientID string) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(clientID)
}

func (r *MemoryCartRepo) Update(_ context.Context, clientID string, fn func(*domain.Cart) error) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.load(clientID)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if c.IsEmpty() && !c.IsOpen() {
		delete(r.carts, clientID)
		return c, nil
	}
	raw, err := encodeCart(c)
	if err != nil {
		return nil, err
	}
	r.carts[clientID] = raw
	return c, nil
}

// load decodes a private copy so callers never share state with the store.
func (r *MemoryCartRepo) load(clientID string) (*domain.Cart, error) {
	raw, ok := r.carts[clientID]
	if !ok {
		return domain.NewCart(clientID)
	}
	return decodeCart(raw)
}
