// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/shelfwise/internal/metrics"
	"github.com/tomtom215/shelfwise/internal/recommend"
)

// Reload results recorded in shelfwise_engine_reloads_total.
const (
	ReloadSuccess  = "success"
	ReloadFailure  = "failure"
	ReloadRejected = "rejected"
	ReloadSkipped  = "skipped"
)

// ErrReloadInProgress is returned when a reload is triggered while another
// one is still building.
var ErrReloadInProgress = errors.New("snapshot reload already in progress")

// SnapshotBuilder reads the feeds and builds a complete engine snapshot.
type SnapshotBuilder interface {
	BuildSnapshot(ctx context.Context) (*recommend.Engine, error)
}

// SnapshotBuilderFunc adapts a function to SnapshotBuilder.
type SnapshotBuilderFunc func(ctx context.Context) (*recommend.Engine, error)

// BuildSnapshot calls f(ctx).
func (f SnapshotBuilderFunc) BuildSnapshot(ctx context.Context) (*recommend.Engine, error) {
	return f(ctx)
}

// SnapshotPublisher installs a built snapshot. Satisfied by *recommend.Holder.
type SnapshotPublisher interface {
	Swap(e *recommend.Engine) *recommend.Engine
}

// ReloadServiceConfig holds configuration for the reload service.
type ReloadServiceConfig struct {
	// Schedule is a standard cron expression or descriptor such as "@every 1h".
	Schedule string

	// BuildTimeout bounds a single read-and-build run.
	BuildTimeout time.Duration

	// BreakerMaxFailures consecutive failures open the circuit.
	BreakerMaxFailures uint32

	// BreakerTimeout is how long the circuit stays open before a trial run.
	BreakerTimeout time.Duration
}

// ReloadService periodically rebuilds the recommendation snapshot and swaps
// it in atomically. Readers keep the old snapshot until the swap.
type ReloadService struct {
	builder   SnapshotBuilder
	publisher SnapshotPublisher
	schedule  cron.Schedule
	spec      string
	timeout   time.Duration
	breaker   *gobreaker.CircuitBreaker[*recommend.Engine]
	running   atomic.Bool
	logger    zerolog.Logger
	name      string
}

// NewReloadService creates a reload service. The schedule is parsed with the
// standard cron parser; an invalid schedule is an error.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewReloadService(builder SnapshotBuilder, publisher SnapshotPublisher, cfg ReloadServiceConfig, logger zerolog.Logger) (*ReloadService, error) {
	schedule, err := cron.ParseStandard(cfg.Schedule)
	if err != nil {
		return nil, fmt.Errorf("invalid reload schedule %q: %w", cfg.Schedule, err)
	}
	if cfg.BuildTimeout <= 0 {
		cfg.BuildTimeout = 2 * time.Minute
	}
	if cfg.BreakerMaxFailures == 0 {
		cfg.BreakerMaxFailures = 3
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = 10 * time.Minute
	}

	s := &ReloadService{
		builder:   builder,
		publisher: publisher,
		schedule:  schedule,
		spec:      cfg.Schedule,
		timeout:   cfg.BuildTimeout,
		logger:    logger.With().Str("service", "snapshot-reload").Logger(),
		name:      "snapshot-reload",
	}

	maxFailures := cfg.BreakerMaxFailures
	s.breaker = gobreaker.NewCircuitBreaker[*recommend.Engine](gobreaker.Settings{
		Name:        "snapshot-build",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("reload circuit breaker state change")
		},
	})

	return s, nil
}

// Serve implements suture.Service. It runs the cron scheduler until ctx is
// canceled and waits for an in-flight reload to finish before returning.
func (s *ReloadService) Serve(ctx context.Context) error {
	c := cron.New()
	c.Schedule(s.schedule, cron.FuncJob(func() {
		if err := s.Reload(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Warn().Err(err).Msg("scheduled reload failed, previous snapshot keeps serving")
		}
	}))

	c.Start()
	s.logger.Info().
		Str("schedule", s.spec).
		Time("next_run", s.schedule.Next(time.Now())).
		Msg("snapshot reload service running")

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info().Msg("snapshot reload service stopped")
	return ctx.Err()
}

// Reload rebuilds the snapshot once and publishes it on success. Concurrent
// calls are rejected with ErrReloadInProgress.
func (s *ReloadService) Reload(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		metrics.RecordReload(ReloadSkipped)
		return ErrReloadInProgress
	}
	defer s.running.Store(false)

	buildCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	engine, err := s.breaker.Execute(func() (*recommend.Engine, error) {
		e, err := s.builder.BuildSnapshot(buildCtx)
		if err == nil && e == nil {
			err = recommend.ErrNotBuilt
		}
		return e, err
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordReload(ReloadRejected)
			return fmt.Errorf("reload rejected: %w", err)
		}
		metrics.RecordReload(ReloadFailure)
		return fmt.Errorf("reload failed: %w", err)
	}

	previous := s.publisher.Swap(engine)
	stats := engine.Stats()
	metrics.RecordEngineBuild(stats.Version, stats.Items, stats.Users, stats.VocabularySize, stats.Duration)
	metrics.RecordReload(ReloadSuccess)

	event := s.logger.Info().
		Int64("version", stats.Version).
		Int("items", stats.Items).
		Int("users", stats.Users).
		Dur("duration", time.Since(start))
	if previous != nil {
		event = event.Int64("previous_version", previous.Version())
	}
	event.Msg("snapshot reloaded")

	return nil
}

// BreakerState reports the circuit breaker state for diagnostics.
func (s *ReloadService) BreakerState() gobreaker.State {
	return s.breaker.State()
}

// String returns the service name for logging.
func (s *ReloadService) String() string {
	return s.name
}
