// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/shelfwise/internal/catalog"
	"github.com/tomtom215/shelfwise/internal/config"
	"github.com/tomtom215/shelfwise/internal/models"
	"github.com/tomtom215/shelfwise/internal/recommend"
)

func testConfig() *config.Config {
	return &config.Config{
		Recommend: config.RecommendConfig{
			MaxFeatures:     100,
			Neighbors:       9,
			HybridOverfetch: 3,
			DuplicatePolicy: "mean",
			DefaultN:        5,
			MaxN:            50,
		},
		Cache: config.CacheConfig{
			Enabled:  true,
			TTL:      time.Minute,
			Capacity: 100,
		},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
		},
		Images: config.ImagesConfig{
			StaticPrefix:    "/static/images/",
			FallbackPattern: "product_%d.jpg",
			Names:           config.DefaultImageNames(),
		},
	}
}

func testEngine(t *testing.T) *recommend.Engine {
	t.Helper()

	cat, err := catalog.NewCatalog([]catalog.Item{
		{ID: 1, Name: "Wireless Earbuds", Category: "Electronics", Brand: "Boat", Price: 1500, Rating: 4.5},
		{ID: 2, Name: "Wireless Headphones", Category: "Electronics", Brand: "Boat", Price: 2500, Rating: 4.2},
		{ID: 3, Name: "Cotton T-Shirt", Category: "Fashion", Brand: "Levis", Price: 500, Rating: 4.0},
		{ID: 4, Name: "Running Shoes", Category: "Fashion", Brand: "Nike", Price: 3000, Rating: 4.7},
		{ID: 5, Name: "Bluetooth Speaker", Category: "Electronics", Brand: "JBL", Price: 2000, Rating: 3.9},
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	ratings, err := catalog.NewRatings([]catalog.Rating{
		{UserID: 1, ItemID: 1, Value: 5},
		{UserID: 1, ItemID: 2, Value: 4},
		{UserID: 2, ItemID: 1, Value: 5},
		{UserID: 2, ItemID: 2, Value: 4},
		{UserID: 2, ItemID: 4, Value: 5},
		{UserID: 3, ItemID: 3, Value: 2},
	})
	if err != nil {
		t.Fatalf("NewRatings() error = %v", err)
	}

	e, err := recommend.Build(cat, ratings, recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return e
}

// newTestServer returns the full chi handler around a built snapshot.
func newTestServer(t *testing.T, cfg *config.Config) (http.Handler, *Handler) {
	t.Helper()

	h := NewHandler(recommend.NewHolder(testEngine(t)), cfg)
	router := NewRouter(h, NewChiMiddleware(NewChiMiddlewareConfig(&cfg.Security)))
	return router.SetupChi(), h
}

type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func doGet(t *testing.T, handler http.Handler, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("GET %s: invalid JSON body %q: %v", path, rec.Body.String(), err)
	}
	return rec, env
}

func decodeList(t *testing.T, env envelope) models.RecommendationList {
	t.Helper()

	var list models.RecommendationList
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("invalid recommendation list: %v", err)
	}
	return list
}

func productIDs(list models.RecommendationList) []int {
	out := make([]int, len(list.Recommendations))
	for i, rec := range list.Recommendations {
		out[i] = rec.Product.ID
	}
	return out
}
