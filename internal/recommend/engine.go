// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shelfwise/internal/catalog"
	"github.com/tomtom215/shelfwise/internal/recommend/algorithms"
)

// ErrNotBuilt is returned when a snapshot is requested before one exists.
var ErrNotBuilt = errors.New("recommendation engine not built")

var versionCounter atomic.Int64

// Engine is an immutable recommendation snapshot. All read operations are
// safe for concurrent use without synchronization.
type Engine struct {
	config Config
	logger zerolog.Logger
	stats  BuildStats

	catalog *catalog.Catalog
	content *algorithms.ContentIndex
	users   *algorithms.UserItemMatrix
	userSim *algorithms.Matrix
	popular *algorithms.PopularityRanking
}

// Build computes a complete snapshot from the catalog and ratings stores.
// Any error means no engine was produced.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Build(items *catalog.Catalog, ratings *catalog.Ratings, cfg Config, logger zerolog.Logger) (*Engine, error) {
	start := time.Now()

	if items == nil || items.Len() == 0 {
		return nil, catalog.ErrEmptyCatalog
	}
	if ratings == nil {
		ratings, _ = catalog.NewRatings(nil)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	policy, _ := algorithms.ParseDuplicatePolicy(cfg.DuplicatePolicy)

	logger = logger.With().Str("component", "recommend").Logger()

	ids := make([]int, items.Len())
	profiles := make([]string, items.Len())
	itemRatings := make([]float64, items.Len())
	for i := 0; i < items.Len(); i++ {
		item := items.At(i)
		ids[i] = item.ID
		profiles[i] = Profile(item, cfg.PriceBucketProfile)
		itemRatings[i] = item.Rating
	}

	content := algorithms.BuildContentIndex(ids, profiles, algorithms.ContentConfig{
		Vectorizer: algorithms.VectorizerConfig{MaxFeatures: cfg.MaxFeatures},
		NumWorkers: cfg.NumWorkers,
	})

	users := algorithms.BuildUserItemMatrix(ratings.All(), policy)
	userSim := users.UserSimilarity(cfg.NumWorkers)

	orphans := 0
	for _, id := range users.Items() {
		if _, ok := items.Get(id); !ok {
			orphans++
		}
	}

	e := &Engine{
		config:  cfg,
		logger:  logger,
		catalog: items,
		content: content,
		users:   users,
		userSim: userSim,
		popular: algorithms.NewPopularityRanking(ids, itemRatings),
	}
	e.stats = BuildStats{
		Version:        versionCounter.Add(1),
		BuiltAt:        time.Now(),
		Duration:       time.Since(start),
		Items:          items.Len(),
		Ratings:        ratings.Len(),
		Users:          users.Rows(),
		RatedItems:     users.Cols(),
		Duplicates:     users.Duplicates(),
		OrphanRatings:  orphans,
		VocabularySize: content.VocabularySize(),
		EmptyProfiles:  content.EmptyProfiles(),
	}

	if users.Duplicates() > 0 {
		logger.Warn().
			Int("duplicates", users.Duplicates()).
			Str("policy", string(policy)).
			Msg("collapsed duplicate ratings")
	}
	if orphans > 0 {
		logger.Warn().
			Int("items", orphans).
			Msg("rated items missing from catalog will never be recommended")
	}
	logger.Info().
		Int64("version", e.stats.Version).
		Int("items", e.stats.Items).
		Int("users", e.stats.Users).
		Int("ratings", e.stats.Ratings).
		Int("vocabulary", e.stats.VocabularySize).
		Dur("duration", e.stats.Duration).
		Msg("engine snapshot built")

	return e, nil
}

// Version returns the snapshot version.
func (e *Engine) Version() int64 {
	return e.stats.Version
}

// Stats returns the build statistics.
func (e *Engine) Stats() BuildStats {
	return e.stats
}

// Config returns the configuration the snapshot was built with.
func (e *Engine) Config() Config {
	return e.config
}

// Item looks up a catalog item.
func (e *Engine) Item(id int) (catalog.Item, bool) {
	return e.catalog.Get(id)
}

// Items returns the catalog in ascending id order.
func (e *Engine) Items() []catalog.Item {
	return e.catalog.Items()
}

// RatedItems returns the ids the user rated above zero.
func (e *Engine) RatedItems(userID int) map[int]struct{} {
	return e.users.RatedItems(userID)
}

// ContentRecommendations returns up to n items most similar to itemID,
// never including itemID itself. Unknown ids yield an empty result.
func (e *Engine) ContentRecommendations(itemID, n int) (res Result) {
	defer e.guard("content", &res)

	row, ok := e.catalog.Index(itemID)
	if !ok || n <= 0 {
		return emptyResult()
	}

	similar := e.content.Similar(row, n)
	recs := make([]Recommendation, 0, len(similar))
	for _, s := range similar {
		recs = append(recs, Recommendation{
			Item:   e.catalog.At(s.Index),
			Score:  s.Score,
			Source: SourceContent,
		})
	}
	return newResult(recs, OutcomePersonalized)
}

// CollaborativeRecommendations returns up to n items the user has not
// rated, scored by the mean rating of the user's nearest neighbors. Users
// without ratings or without positive-similarity neighbors receive the
// popularity ranking, minus anything they already rated.
func (e *Engine) CollaborativeRecommendations(userID, n int) (res Result) {
	defer e.guard("collaborative", &res)

	if n <= 0 {
		return emptyResult()
	}

	row, ok := e.users.UserRow(userID)
	if !ok {
		return e.popularity(n, nil)
	}
	rated := e.users.RatedItems(userID)

	neighbors := algorithms.TopNeighbors(e.userSim, row, e.config.Neighbors)
	if len(neighbors) == 0 {
		return e.popularity(n, rated)
	}

	predictions := algorithms.PredictNeighborhoodMean(e.users, row, neighbors)
	recs := make([]Recommendation, 0, min(n, len(predictions)))
	for _, p := range predictions {
		item, ok := e.catalog.Get(p.ItemID)
		if !ok {
			continue
		}
		recs = append(recs, Recommendation{
			Item:    item,
			Score:   p.Score,
			RatedBy: p.RatedBy,
			Source:  SourceCollaborative,
		})
		if len(recs) == n {
			break
		}
	}

	if len(recs) == 0 {
		return e.popularity(n, rated)
	}
	return newResult(recs, OutcomePersonalized)
}

// PopularRecommendations returns the n highest rated catalog items.
func (e *Engine) PopularRecommendations(n int) (res Result) {
	defer e.guard("popular", &res)

	if n <= 0 {
		return emptyResult()
	}
	res = e.popularity(n, nil)
	res.Outcome = OutcomePersonalized
	if res.Len() == 0 {
		res.Outcome = OutcomeEmpty
	}
	return res
}

func (e *Engine) popularity(n int, exclude map[int]struct{}) Result {
	ids := e.popular.Top(n, exclude)
	recs := make([]Recommendation, 0, len(ids))
	for _, id := range ids {
		item, _ := e.catalog.Get(id)
		recs = append(recs, Recommendation{
			Item:   item,
			Score:  item.Rating,
			Source: SourcePopularity,
		})
	}
	return newResult(recs, OutcomeFallback)
}

// guard converts a panic inside a read operation into an empty result so a
// single bad request can never take the process down.
func (e *Engine) guard(operation string, res *Result) {
	if r := recover(); r != nil {
		e.logger.Error().
			Str("operation", operation).
			Interface("panic", r).
			Msg("recommendation failed, returning empty result")
		*res = emptyResult()
	}
}

func newResult(recs []Recommendation, outcome Outcome) Result {
	if len(recs) == 0 {
		return emptyResult()
	}
	return Result{Recommendations: recs, Outcome: outcome}
}

func emptyResult() Result {
	return Result{Recommendations: []Recommendation{}, Outcome: OutcomeEmpty}
}
