// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"net/http"

	"github.com/tomtom215/shelfwise/internal/models"
)

// Products handles GET /api/v1/products and returns the catalog in
// ascending id order.
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	e, ok := h.engine(w)
	if !ok {
		return
	}

	items := e.Items()
	products := make([]models.Product, len(items))
	for i, item := range items {
		products[i] = h.images.Product(item)
	}

	respondSuccess(w, models.ProductList{
		Count:    len(products),
		Products: products,
	}, models.Metadata{SnapshotVersion: e.Version()})
}

// Product handles GET /api/v1/products/{itemID}.
func (h *Handler) Product(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemID")
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidItemID, "Item ID must be an integer", err)
		return
	}

	e, ok := h.engine(w)
	if !ok {
		return
	}

	item, found := e.Item(itemID)
	if !found {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Product not found", nil)
		return
	}

	respondSuccess(w, h.images.Product(item), models.Metadata{SnapshotVersion: e.Version()})
}

// EngineStats handles GET /api/v1/engine/stats.
func (h *Handler) EngineStats(w http.ResponseWriter, r *http.Request) {
	e, ok := h.engine(w)
	if !ok {
		return
	}

	stats := e.Stats()
	cfg := e.Config()

	respondSuccess(w, models.EngineStats{
		SnapshotVersion:    stats.Version,
		BuiltAt:            stats.BuiltAt,
		BuildTimeMS:        stats.Duration.Milliseconds(),
		Items:              stats.Items,
		Ratings:            stats.Ratings,
		Users:              stats.Users,
		RatedItems:         stats.RatedItems,
		Duplicates:         stats.Duplicates,
		OrphanRatings:      stats.OrphanRatings,
		VocabularySize:     stats.VocabularySize,
		EmptyProfiles:      stats.EmptyProfiles,
		Neighbors:          cfg.Neighbors,
		MaxFeatures:        cfg.MaxFeatures,
		HybridOverfetch:    cfg.HybridOverfetch,
		DuplicatePolicy:    cfg.DuplicatePolicy,
		PriceBucketProfile: cfg.PriceBucketProfile,
	}, models.Metadata{SnapshotVersion: e.Version()})
}
