package retry

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func fastConfig() Config {
	return Config{
		Enabled:     true,
		MaxAttempts: 2,
		BaseDelay:   time.Millisecond,
		MaxDelay:    5 * time.Millisecond,
	}
}

func TestDoSuccessFirstTry(t *testing.T) {
	calls := 0
	got, err := Do(context.Background(), fastConfig(), func() (string, error) {
		calls++
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if got != "ok" || calls != 1 {
		t.Errorf("got %q after %d calls, want ok after 1", got, calls)
	}
}

func TestDoRetriesTransientError(t *testing.T) {
	calls := 0
	got, err := Do(context.Background(), fastConfig(), func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("503 service unavailable")
		}
		return "recovered", nil
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if got != "recovered" || calls != 3 {
		t.Errorf("got %q after %d calls, want recovered after 3", got, calls)
	}
}

func TestDoFailsFastOnClientError(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), fastConfig(), func() (string, error) {
		calls++
		return "", errors.New("401 unauthorized")
	})
	if err == nil {
		t.Fatal("Do() expected error")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry on auth errors)", calls)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), fastConfig(), func() (string, error) {
		calls++
		return "", errors.New("connection refused")
	})
	if err == nil {
		t.Fatal("Do() expected error")
	}
	if !strings.Contains(err.Error(), "max retries exceeded") {
		t.Errorf("error = %v, want max retries exceeded", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3 (initial + 2 retries)", calls)
	}
}

func TestDoDisabled(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), Config{Enabled: false}, func() (string, error) {
		calls++
		return "", errors.New("timeout")
	})
	if err == nil {
		t.Fatal("Do() expected error")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 when disabled", calls)
	}
}

func TestDoContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := fastConfig()
	cfg.BaseDelay = time.Second

	_, err := Do(ctx, cfg, func() (string, error) {
		return "", errors.New("connection refused")
	})
	if err == nil || !strings.Contains(err.Error(), "retry cancelled") {
		t.Errorf("error = %v, want retry cancelled", err)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"rate limited", errors.New("429 too many requests"), true},
		{"server error", errors.New("500 internal server error"), true},
		{"timeout", errors.New("context deadline exceeded"), true},
		{"bad request", errors.New("400 bad request"), false},
		{"unauthorized", errors.New("401 unauthorized"), false},
		{"invalid input", errors.New("invalid model name"), false},
		{"unknown defaults to retry", errors.New("something odd"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
