package godelta

import (
	"context"
	"errors"
	"testing"
	"time"
)

// flakyCache fails Set a configured number of times before succeeding.
type flakyCache struct {
	entries   map[string]string
	failures  int
	attempts  int
	retryable bool
}

func newFlakyCache(failures int, retryable bool) *flakyCache {
	return &flakyCache{
		entries:   make(map[string]string),
		failures:  failures,
		retryable: retryable,
	}
}

func (c *flakyCache) Get(key string) (string, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *flakyCache) Set(key string, value string) error {
	c.attempts++
	if c.attempts <= c.failures {
		return &CacheError{Message: "transient failure", Retryable: c.retryable}
	}
	c.entries[key] = value
	return nil
}

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
	}
}

func TestWithRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	result, err := WithRetry(context.Background(), fastRetryConfig(), func() (string, error) {
		calls++
		if calls < 3 {
			return "", &CacheError{Message: "transient", Retryable: true}
		}
		return "ok", nil
	})

	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if result != "ok" {
		t.Errorf("Expected %q, got %q", "ok", result)
	}
	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
}

func TestWithRetry_NonRetryableShortCircuits(t *testing.T) {
	calls := 0
	_, err := WithRetry(context.Background(), fastRetryConfig(), func() (string, error) {
		calls++
		return "", &CacheError{Message: "permanent", Retryable: false}
	})

	if err == nil {
		t.Fatal("Expected an error")
	}
	if calls != 1 {
		t.Errorf("Non-retryable error must not be retried, got %d calls", calls)
	}
}

func TestWithRetry_ExhaustsRetries(t *testing.T) {
	cfg := fastRetryConfig()
	calls := 0
	_, err := WithRetry(context.Background(), cfg, func() (int, error) {
		calls++
		return 0, &CacheError{Message: "always failing", Retryable: true}
	})

	if err == nil {
		t.Fatal("Expected an error after exhausting retries")
	}
	if calls != cfg.MaxRetries+1 {
		t.Errorf("Expected %d calls, got %d", cfg.MaxRetries+1, calls)
	}
}

func TestWithRetry_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(ctx, fastRetryConfig(), func() (int, error) {
		t.Fatal("Function must not run with a canceled context")
		return 0, nil
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"retryable cache error", &CacheError{Retryable: true}, true},
		{"non-retryable cache error", &CacheError{Retryable: false}, false},
		{"wrapped retryable", &CacheError{Cause: errors.New("inner"), Retryable: true}, true},
		{"context canceled", context.Canceled, false},
		{"deadline exceeded", context.DeadlineExceeded, false},
		{"plain error", errors.New("plain"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRetryingCache_SetRecovers(t *testing.T) {
	inner := newFlakyCache(2, true)
	cache := NewRetryingCache(inner, fastRetryConfig())

	if err := cache.Set("key", "value"); err != nil {
		t.Fatalf("Expected set to recover, got %v", err)
	}
	if inner.attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", inner.attempts)
	}
	if v, ok := cache.Get("key"); !ok || v != "value" {
		t.Errorf("Expected the value to land, got (%q, %v)", v, ok)
	}
}

func TestRetryingCache_NonRetryableFailure(t *testing.T) {
	inner := newFlakyCache(10, false)
	cache := NewRetryingCache(inner, fastRetryConfig())

	if err := cache.Set("key", "value"); err == nil {
		t.Fatal("Expected the non-retryable error to surface")
	}
	if inner.attempts != 1 {
		t.Errorf("Expected a single attempt, got %d", inner.attempts)
	}
}

func TestRetryingCache_GetDelegates(t *testing.T) {
	inner := newFlakyCache(0, true)
	inner.entries["present"] = "cached"
	cache := NewRetryingCache(inner, fastRetryConfig())

	if v, ok := cache.Get("present"); !ok || v != "cached" {
		t.Errorf("Expected delegation to the wrapped cache, got (%q, %v)", v, ok)
	}
	if _, ok := cache.Get("absent"); ok {
		t.Error("Expected a miss for an absent key")
	}
}
