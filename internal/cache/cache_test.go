// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package cache

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestGenerateKey(t *testing.T) {
	k1 := GenerateKey("hybrid", []any{int64(1), 7, 5})
	k2 := GenerateKey("hybrid", []any{int64(1), 7, 5})
	if k1 != k2 {
		t.Errorf("same parameters produced different keys: %q vs %q", k1, k2)
	}
	if !strings.HasPrefix(k1, "hybrid:") {
		t.Errorf("key %q should be prefixed by the method", k1)
	}

	others := []string{
		GenerateKey("hybrid", []any{int64(2), 7, 5}),
		GenerateKey("hybrid", []any{int64(1), 8, 5}),
		GenerateKey("hybrid", []any{int64(1), 7, 6}),
		GenerateKey("content", []any{int64(1), 7, 5}),
	}
	for _, other := range others {
		if other == k1 {
			t.Errorf("different parameters produced the same key %q", k1)
		}
	}
}

func TestGenerateKey_Unmarshalable(t *testing.T) {
	key := GenerateKey("x", make(chan int))
	if !strings.HasPrefix(key, "x:") {
		t.Errorf("fallback key %q should keep the method prefix", key)
	}
}

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) CleanupExpired() int {
	s.calls.Add(1)
	return 1
}

func TestJanitor_Serve(t *testing.T) {
	sweeper := &countingSweeper{}
	j := NewJanitor("responses", sweeper, 5*time.Millisecond)

	if j.String() != "responses-janitor" {
		t.Errorf("String() = %q", j.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- j.Serve(ctx) }()

	deadline := time.After(2 * time.Second)
	for sweeper.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("janitor never swept")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() error = %v, want context.Canceled", err)
	}
}

func TestNewJanitor_DefaultInterval(t *testing.T) {
	if j := NewJanitor("x", &countingSweeper{}, 0); j.interval != DefaultTTL {
		t.Errorf("interval = %v, want %v", j.interval, DefaultTTL)
	}
}
