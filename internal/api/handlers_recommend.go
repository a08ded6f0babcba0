// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/shelfwise/internal/cache"
	"github.com/tomtom215/shelfwise/internal/logging"
	"github.com/tomtom215/shelfwise/internal/metrics"
	"github.com/tomtom215/shelfwise/internal/models"
	"github.com/tomtom215/shelfwise/internal/recommend"
)

// Operation names used for metrics labels, cache keys and response bodies.
const (
	OperationSimilar       = "content"
	OperationHybrid        = "hybrid"
	OperationCollaborative = "collaborative"
	OperationPopular       = "popular"
)

// computeFunc runs one engine read operation.
type computeFunc func(e *recommend.Engine, n int) recommend.Result

// SimilarItems handles GET /api/v1/recommend/similar/{itemID}.
// Unknown items yield an empty list, not an error.
func (h *Handler) SimilarItems(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemID")
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidItemID, "Item ID must be an integer", err)
		return
	}

	h.serveRecommendations(w, r, OperationSimilar, &itemID, nil, func(e *recommend.Engine, n int) recommend.Result {
		return e.ContentRecommendations(itemID, n)
	})
}

// UserRecommendations handles GET /api/v1/recommend/user/{userID}.
// It serves the hybrid merge of collaborative and content signals.
func (h *Handler) UserRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidUserID, "User ID must be an integer", err)
		return
	}

	h.serveRecommendations(w, r, OperationHybrid, nil, &userID, func(e *recommend.Engine, n int) recommend.Result {
		return e.HybridRecommendations(userID, n)
	})
}

// CollaborativeRecommendations handles
// GET /api/v1/recommend/user/{userID}/collaborative.
func (h *Handler) CollaborativeRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidUserID, "User ID must be an integer", err)
		return
	}

	h.serveRecommendations(w, r, OperationCollaborative, nil, &userID, func(e *recommend.Engine, n int) recommend.Result {
		return e.CollaborativeRecommendations(userID, n)
	})
}

// PopularItems handles GET /api/v1/recommend/popular.
func (h *Handler) PopularItems(w http.ResponseWriter, r *http.Request) {
	h.serveRecommendations(w, r, OperationPopular, nil, nil, func(e *recommend.Engine, n int) recommend.Result {
		return e.PopularRecommendations(n)
	})
}

// serveRecommendations validates n, consults the response cache and runs
// compute against a single snapshot.
func (h *Handler) serveRecommendations(w http.ResponseWriter, r *http.Request, op string, itemID, userID *int, compute computeFunc) {
	e, ok := h.engine(w)
	if !ok {
		return
	}

	req, ok := parseRecommendRequest(r, h.config.Recommend.DefaultN, h.config.Recommend.MaxN)
	if !ok {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, "n must be an integer", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	version := e.Version()
	var key string
	if h.cache != nil {
		key = cache.GenerateKey(op, []any{version, subjectID(itemID, userID), req.N})
		if list, found := h.cache.Get(key); found {
			metrics.RecordCacheLookup(true)
			respondSuccess(w, list, models.Metadata{Cached: true, SnapshotVersion: version})
			return
		}
		metrics.RecordCacheLookup(false)
	}

	start := time.Now()
	res := compute(e, req.N)
	elapsed := time.Since(start)
	metrics.RecordRecommendation(op, string(res.Outcome), elapsed)

	logging.Ctx(r.Context()).Debug().
		Str("operation", op).
		Int("n", req.N).
		Int("count", res.Len()).
		Str("outcome", string(res.Outcome)).
		Int64("snapshot_version", version).
		Dur("duration", elapsed).
		Msg("Recommendations computed")

	list := h.recommendationList(op, itemID, userID, req.N, res)
	if h.cache != nil {
		h.cache.Add(key, list)
	}

	respondSuccess(w, list, models.Metadata{
		QueryTimeMS:     elapsed.Milliseconds(),
		SnapshotVersion: version,
	})
}

// recommendationList converts an engine result to its API representation.
func (h *Handler) recommendationList(op string, itemID, userID *int, n int, res recommend.Result) *models.RecommendationList {
	recs := make([]models.Recommendation, len(res.Recommendations))
	for i, rec := range res.Recommendations {
		recs[i] = models.Recommendation{
			Rank:    i + 1,
			Product: h.images.Product(rec.Item),
			Score:   rec.Score,
			RatedBy: rec.RatedBy,
			Source:  string(rec.Source),
		}
	}

	return &models.RecommendationList{
		Operation:       op,
		ItemID:          itemID,
		UserID:          userID,
		N:               n,
		Outcome:         string(res.Outcome),
		Count:           len(recs),
		Recommendations: recs,
	}
}

// subjectID folds the request subject into the cache key. Item and user
// ids never share an operation, so one slot is enough.
func subjectID(itemID, userID *int) any {
	switch {
	case itemID != nil:
		return *itemID
	case userID != nil:
		return *userID
	default:
		return nil
	}
}
