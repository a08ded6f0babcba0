// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"net/http"
	"strings"

	"github.com/tomtom215/shelfwise/internal/catalog"
	"github.com/tomtom215/shelfwise/internal/config"
	"github.com/tomtom215/shelfwise/internal/models"
)

// ImageResolver maps products to image URLs. Known product names use the
// configured file; every other product gets the id-based fallback file.
type ImageResolver struct {
	prefix string
	images config.ImagesConfig
}

// NewImageResolver creates a resolver from the images configuration.
func NewImageResolver(cfg *config.ImagesConfig) *ImageResolver {
	names := make(map[string]string, len(cfg.Names))
	for name, file := range cfg.Names {
		names[name] = file
	}

	prefix := cfg.StaticPrefix
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	images := *cfg
	images.Names = names
	return &ImageResolver{prefix: prefix, images: images}
}

// URL returns the image URL for item.
func (ir *ImageResolver) URL(item catalog.Item) string {
	return ir.prefix + ir.images.FileName(item.ID, item.Name)
}

// FileServer serves the image directory under the static prefix. It reports
// false when there is nothing to mount: no directory, or a prefix that is a
// full URL pointing elsewhere.
func (ir *ImageResolver) FileServer() (pattern string, handler http.Handler, ok bool) {
	if ir.images.Dir == "" || !strings.HasPrefix(ir.prefix, "/") {
		return "", nil, false
	}
	fs := http.StripPrefix(ir.prefix, http.FileServer(http.Dir(ir.images.Dir)))
	return ir.prefix + "*", noDirectoryListing(fs), true
}

// noDirectoryListing answers directory requests with 404.
func noDirectoryListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Product converts a catalog item to its API representation.
func (ir *ImageResolver) Product(item catalog.Item) models.Product {
	return models.Product{
		ID:       item.ID,
		Name:     item.Name,
		Category: item.Category,
		Brand:    item.Brand,
		Price:    item.Price,
		Rating:   item.Rating,
		ImageURL: ir.URL(item),
	}
}
