package godelta

import (
	"context"
	"errors"
	"time"
)

// RetryConfig holds configuration for retry behavior.
type RetryConfig struct {
	MaxRetries int           // Maximum number of retry attempts
	BaseDelay  time.Duration // Initial delay between retries
	MaxDelay   time.Duration // Maximum delay between retries
}

// DefaultRetryConfig returns sensible defaults for cache retry behavior.
// Cache writes are cheap, so the backoff is much shorter than it would be
// for a remote API.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   2 * time.Second,
	}
}

// RetryFunc is a function that can be retried.
type RetryFunc[T any] func() (T, error)

// WithRetry executes a function with exponential backoff retry.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, fn RetryFunc[T]) (T, error) {
	var lastErr error
	var zero T

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		// Check context before each attempt
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		// Check if error is retryable
		if !IsRetryable(err) {
			return zero, err
		}

		// Don't sleep after the last attempt
		if attempt < cfg.MaxRetries {
			delay := cfg.BaseDelay * time.Duration(1<<attempt)
			if delay > cfg.MaxDelay {
				delay = cfg.MaxDelay
			}

			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return zero, lastErr
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	// Check for CacheError with Retryable flag
	var cacheErr *CacheError
	if errors.As(err, &cacheErr) {
		return cacheErr.Retryable
	}

	// Context errors are not retryable
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	return false
}

// RetryingCache wraps a DiffCache with retry logic for transient failures
// (e.g. a Redis backend riding out a failover). Lookups are not retried: a
// failed Get is just a miss and the engine recomputes.
type RetryingCache struct {
	cache  DiffCache
	config RetryConfig
}

// NewRetryingCache creates a new cache wrapper with retry logic.
func NewRetryingCache(cache DiffCache, cfg RetryConfig) *RetryingCache {
	return &RetryingCache{
		cache:  cache,
		config: cfg,
	}
}

// Get implements DiffCache by delegating to the wrapped cache.
func (c *RetryingCache) Get(key string) (string, bool) {
	return c.cache.Get(key)
}

// Set implements DiffCache with retry on retryable errors.
func (c *RetryingCache) Set(key string, value string) error {
	_, err := WithRetry(context.Background(), c.config, func() (struct{}, error) {
		return struct{}{}, c.cache.Set(key, value)
	})
	return err
}

// Verify RetryingCache implements DiffCache
var _ DiffCache = (*RetryingCache)(nil)
