package cache

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// Breaker wraps a Cache with a circuit breaker. While the circuit is open,
// reads are misses and writes are skipped without touching the backend;
// deletes report gobreaker.ErrOpenState so callers can log the stale keys.
type Breaker struct {
	next Cache
	cb   *gobreaker.CircuitBreaker
}

func NewBreaker(next Cache, log zerolog.Logger) *Breaker {
	st := gobreaker.Settings{
		Name:        "catalog-cache",
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("cache circuit state changed")
		},
	}
	return &Breaker{next: next, cb: gobreaker.NewCircuitBreaker(st)}
}

func isOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

type hit struct {
	val []byte
	ok  bool
}

func (b *Breaker) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := b.cb.Execute(func() (interface{}, error) {
		val, ok, err := b.next.Get(ctx, key)
		return hit{val: val, ok: ok}, err
	})
	if isOpen(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	h := v.(hit)
	return h.val, h.ok, nil
}

func (b *Breaker) Set(ctx context.Context, key string, val []byte) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Set(ctx, key, val)
	})
	if isOpen(err) {
		return nil
	}
	return err
}

func (b *Breaker) Delete(ctx context.Context, keys ...string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Delete(ctx, keys...)
	})
	return err
}

// State reports the current circuit state.
func (b *Breaker) State() gobreaker.State { return b.cb.State() }
