// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shelfwise/internal/config"
	"github.com/tomtom215/shelfwise/internal/database"
	"github.com/tomtom215/shelfwise/internal/metrics"
	"github.com/tomtom215/shelfwise/internal/recommend"
)

// toRecommendConfig maps the service configuration onto the engine build
// configuration.
func toRecommendConfig(cfg *config.RecommendConfig) recommend.Config {
	return recommend.Config{
		MaxFeatures:        cfg.MaxFeatures,
		Neighbors:          cfg.Neighbors,
		HybridOverfetch:    cfg.HybridOverfetch,
		PriceBucketProfile: cfg.PriceBucketProfile,
		DuplicatePolicy:    cfg.DuplicatePolicy,
		NumWorkers:         cfg.NumWorkers,
	}
}

// snapshotBuilder reads the feeds through a short-lived DuckDB connection and
// builds a fresh engine snapshot. It is used for the startup build and for
// every scheduled reload.
type snapshotBuilder struct {
	data      *config.DataConfig
	recommend recommend.Config
	logger    zerolog.Logger
}

//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func newSnapshotBuilder(cfg *config.Config, logger zerolog.Logger) *snapshotBuilder {
	return &snapshotBuilder{
		data:      &cfg.Data,
		recommend: toRecommendConfig(&cfg.Recommend),
		logger:    logger,
	}
}

// BuildSnapshot implements services.SnapshotBuilder.
func (b *snapshotBuilder) BuildSnapshot(ctx context.Context) (*recommend.Engine, error) {
	db, err := database.Open(b.data)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			b.logger.Warn().Err(cerr).Msg("failed to close feed reader")
		}
	}()

	items, ratings, err := db.LoadStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load feeds: %w", err)
	}

	engine, err := recommend.Build(items, ratings, b.recommend, b.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build engine: %w", err)
	}
	return engine, nil
}

// buildInitialSnapshot performs the startup build. The service refuses to
// start without a snapshot.
func buildInitialSnapshot(ctx context.Context, b *snapshotBuilder) (*recommend.Engine, error) {
	engine, err := b.BuildSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	stats := engine.Stats()
	metrics.RecordEngineBuild(stats.Version, stats.Items, stats.Users, stats.VocabularySize, stats.Duration)
	return engine, nil
}
