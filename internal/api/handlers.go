// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/shelfwise/internal/cache"
	"github.com/tomtom215/shelfwise/internal/config"
	"github.com/tomtom215/shelfwise/internal/models"
	"github.com/tomtom215/shelfwise/internal/recommend"
)

// Version is reported by the health endpoints. Overridden at link time.
var Version = "dev"

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: JSON envelope, errors and validation helpers
//   - handlers_health.go: liveness and readiness probes
//   - handlers_recommend.go: the four recommendation endpoints
//   - handlers_products.go: catalog and engine statistics endpoints
type Handler struct {
	holder    *recommend.Holder
	config    *config.Config
	images    *ImageResolver
	cache     *cache.LRUCache[*models.RecommendationList] // nil when caching is disabled
	startTime time.Time
}

// NewHandler creates a new API handler serving the snapshots published by
// holder. The response cache follows cfg.Cache.
func NewHandler(holder *recommend.Holder, cfg *config.Config) *Handler {
	h := &Handler{
		holder:    holder,
		config:    cfg,
		images:    NewImageResolver(&cfg.Images),
		startTime: time.Now(),
	}
	if cfg.Cache.Enabled {
		h.cache = cache.NewLRUCache[*models.RecommendationList](cfg.Cache.Capacity, cfg.Cache.TTL)
	}
	return h
}

// Cache returns the response cache, or nil when caching is disabled.
func (h *Handler) Cache() *cache.LRUCache[*models.RecommendationList] {
	return h.cache
}

// engine returns the serving snapshot or writes a 503 when none is
// installed yet.
func (h *Handler) engine(w http.ResponseWriter) (*recommend.Engine, bool) {
	e := h.holder.Current()
	if e == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"Recommendation engine is not ready", recommend.ErrNotBuilt)
		return nil, false
	}
	return e, true
}
