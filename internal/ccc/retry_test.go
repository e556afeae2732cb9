package ccc_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"c3media/internal/ccc"
)

func TestIsRetriable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"not found", fmt.Errorf("wrapped: %w", ccc.ErrNotFound), false},
		{"cancelled", context.Canceled, false},
		{"deadline", context.DeadlineExceeded, true},
		{"rate limited", errors.New("request failed (429 Too Many Requests)"), true},
		{"bad gateway", errors.New("request failed (502 Bad Gateway)"), true},
		{"unavailable", errors.New("request failed (503 Service Unavailable)"), true},
		{"server error", errors.New("request failed (500 Internal Server Error)"), false},
		{"connection reset", errors.New("read tcp: connection reset by peer"), true},
		{"plain failure", errors.New("invalid payload"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ccc.IsRetriable(tc.err); got != tc.want {
				t.Fatalf("IsRetriable(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestSleepWithContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := ccc.SleepWithContext(ctx, time.Minute); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSleepWithContextZeroDuration(t *testing.T) {
	if err := ccc.SleepWithContext(context.Background(), 0); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
