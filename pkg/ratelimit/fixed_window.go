package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// FixedWindow allows up to limit requests per key in each window.
type FixedWindow struct {
	store  Store
	limit  int
	window time.Duration
	prefix string
}

// FixedWindowOption configures a FixedWindow.
type FixedWindowOption func(*FixedWindow)

// WithKeyPrefix namespaces the keys written to the store.
func WithKeyPrefix(prefix string) FixedWindowOption {
	return func(fw *FixedWindow) {
		fw.prefix = prefix
	}
}

// NewFixedWindow creates a fixed-window limiter.
func NewFixedWindow(store Store, limit int, window time.Duration, opts ...FixedWindowOption) (*FixedWindow, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidInterval
	}

	fw := &FixedWindow{
		store:  store,
		limit:  limit,
		window: window,
		prefix: "ratelimit:",
	}
	for _, opt := range opts {
		opt(fw)
	}
	return fw, nil
}

// NewFromConfig creates a fixed-window limiter from cfg.
func NewFromConfig(store Store, cfg Config, opts ...FixedWindowOption) (*FixedWindow, error) {
	return NewFixedWindow(store, cfg.Requests, cfg.Window, opts...)
}

// Allow counts one request for key.
func (fw *FixedWindow) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	current, ttl, err := fw.store.IncrementAndGet(ctx, fw.prefix+key, 1, fw.window)
	if err != nil {
		return nil, fmt.Errorf("increment counter: %w", err)
	}
	if ttl <= 0 {
		ttl = fw.window
	}

	return &Result{
		Allowed:   current <= int64(fw.limit),
		Limit:     fw.limit,
		Remaining: max(fw.limit-int(current), 0),
		ResetAt:   time.Now().Add(ttl),
	}, nil
}

// Reset clears the counter for key.
func (fw *FixedWindow) Reset(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	return fw.store.Delete(ctx, fw.prefix+key)
}
