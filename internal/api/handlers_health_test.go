// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/shelfwise/internal/models"
	"github.com/tomtom215/shelfwise/internal/recommend"
)

func TestHealthLive(t *testing.T) {
	h := NewHandler(recommend.NewHolder(nil), testConfig())
	server := NewRouter(h, nil).SetupChi()

	rec, env := doGet(t, server, "/health/live")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even without a snapshot", rec.Code)
	}
	if env.Status != "success" {
		t.Errorf("status field = %q", env.Status)
	}
}

func TestHealthReady(t *testing.T) {
	server, _ := newTestServer(t, testConfig())

	rec, env := doGet(t, server, "/health/ready")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var status models.HealthStatus
	if err := json.Unmarshal(env.Data, &status); err != nil {
		t.Fatalf("invalid health status: %v", err)
	}
	if !status.EngineReady || status.Status != "ready" || status.SnapshotVersion == 0 {
		t.Errorf("health = %+v", status)
	}
}

func TestRouter_Basics(t *testing.T) {
	server, _ := newTestServer(t, testConfig())

	t.Run("unknown route uses the error envelope", func(t *testing.T) {
		rec, env := doGet(t, server, "/api/v1/nope")
		if rec.Code != http.StatusNotFound || env.Error == nil || env.Error.Code != ErrCodeNotFound {
			t.Errorf("status = %d error = %+v", rec.Code, env.Error)
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/products", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", rec.Code)
		}
	})

	t.Run("request id and security headers", func(t *testing.T) {
		rec, _ := doGet(t, server, "/api/v1/products")
		if rec.Header().Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID")
		}
		if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
			t.Error("missing X-Content-Type-Options")
		}
		if etag := rec.Header().Get("ETag"); !strings.HasPrefix(etag, `"`) {
			t.Errorf("ETag = %q, want a quoted value", etag)
		}
	})

	t.Run("metrics endpoint", func(t *testing.T) {
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "shelfwise_api_requests_total") {
			t.Error("metrics output lacks shelfwise_api_requests_total")
		}
	})

	t.Run("swagger description", func(t *testing.T) {
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}

		var doc struct {
			Swagger  string                     `json:"swagger"`
			BasePath string                     `json:"basePath"`
			Paths    map[string]json.RawMessage `json:"paths"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
			t.Fatalf("doc.json is not JSON: %v", err)
		}
		if doc.Swagger != "2.0" || doc.BasePath != "/api/v1" {
			t.Errorf("swagger = %q basePath = %q", doc.Swagger, doc.BasePath)
		}
		for _, path := range []string{"/recommend/similar/{itemID}", "/recommend/user/{userID}", "/recommend/popular", "/products"} {
			if _, ok := doc.Paths[path]; !ok {
				t.Errorf("doc.json lacks %s", path)
			}
		}
	})
}
