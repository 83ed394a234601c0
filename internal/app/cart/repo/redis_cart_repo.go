package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/murkotick/b2b-catalog-service/internal/app/cart/domain"
)

// ErrCartBusy is returned when concurrent writers kept invalidating an update.
var ErrCartBusy = errors.New("cart is being modified concurrently")

const defaultUpdateAttempts = 5

// RedisCartRepo keeps each client's cart as one JSON value under cart:{clientID}.
// Every write refreshes the TTL; an empty closed cart is deleted.
type RedisCartRepo struct {
	client      *redis.Client
	ttl         time.Duration
	maxAttempts int
}

func NewRedisCartRepo(client *redis.Client, ttl time.Duration) *RedisCartRepo {
	return &RedisCartRepo{client: client, ttl: ttl, maxAttempts: defaultUpdateAttempts}
}

func cartKey(clientID string) string {
	return "cart:" + clientID
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func load(ctx context.Context, g getter, clientID string) (*domain.Cart, error) {
	raw, err := g.Get(ctx, cartKey(clientID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.NewCart(clientID)
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return decodeCart(raw)
}

func (r *RedisCartRepo) Get(ctx context.Context, clientID string) (*domain.Cart, error) {
	return load(ctx, r.client, clientID)
}

// Update runs fn inside a WATCH on the cart key and retries when another
// writer touched the key before EXEC.
func (r *RedisCartRepo) Update(ctx context.Context, clientID string, fn func(*domain.Cart) error) (*domain.Cart, error) {
	key := cartKey(clientID)
	var saved *domain.Cart

	txf := func(tx *redis.Tx) error {
		c, err := load(ctx, tx, clientID)
		if err != nil {
			return err
		}
		if err := fn(c); err != nil {
			return err
		}
		payload, err := encodeCart(c)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if c.IsEmpty() && !c.IsOpen() {
				pipe.Del(ctx, key)
				return nil
			}
			pipe.Set(ctx, key, payload, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		saved = c
		return nil
	}

	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, ErrCartBusy
}
