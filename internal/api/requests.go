// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// RecommendRequest holds the validated list size of a recommendation call.
// MaxN is filled from configuration so the bound follows recommend.max_n.
type RecommendRequest struct {
	N    int `query:"n" validate:"min=1,ltefield=MaxN"`
	MaxN int `query:"-"`
}

// parseRecommendRequest reads n from the query string. An absent n means
// defaultN; a present but non-integer n is a validation error.
func parseRecommendRequest(r *http.Request, defaultN, maxN int) (RecommendRequest, bool) {
	req := RecommendRequest{N: defaultN, MaxN: maxN}

	raw := strings.TrimSpace(r.URL.Query().Get("n"))
	if raw == "" {
		return req, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return req, false
	}
	req.N = n
	return req, true
}

// pathID parses an integer chi URL parameter.
func pathID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}
