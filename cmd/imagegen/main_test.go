// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package main

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomtom215/shelfwise/internal/catalog"
	"github.com/tomtom215/shelfwise/internal/config"
)

func testImagesConfig(t *testing.T) *config.ImagesConfig {
	t.Helper()
	return &config.ImagesConfig{
		StaticPrefix:    "/static/images/",
		Dir:             filepath.Join(t.TempDir(), "images"),
		FallbackPattern: "product_%d.jpg",
		Names:           map[string]string{"Jeans": "product_9.png", "Poster": "poster.svg"},
	}
}

var testItems = []catalog.Item{
	{ID: 9, Name: "Jeans", Category: "Fashion"},
	{ID: 21, Name: "Desk Fan", Category: "Home"},
	{ID: 22, Name: "Poster", Category: "Home"},
}

func TestGenerate(t *testing.T) {
	images := testImagesConfig(t)

	written, err := generate(testItems, images, false)
	if err != nil {
		t.Fatalf("generate() error = %v", err)
	}
	if written != 2 {
		t.Errorf("written = %d, want 2 (svg is skipped)", written)
	}

	tests := []struct {
		file   string
		format string
	}{
		{"product_9.png", "png"},
		{"product_21.jpg", "jpeg"},
	}
	for _, tt := range tests {
		f, err := os.Open(filepath.Join(images.Dir, tt.file))
		if err != nil {
			t.Fatalf("%s not written: %v", tt.file, err)
		}
		cfg, format, err := image.DecodeConfig(f)
		_ = f.Close()
		if err != nil {
			t.Fatalf("%s does not decode: %v", tt.file, err)
		}
		if format != tt.format || cfg.Width != imageSize || cfg.Height != imageSize {
			t.Errorf("%s = %s %dx%d", tt.file, format, cfg.Width, cfg.Height)
		}
	}

	if _, err := os.Stat(filepath.Join(images.Dir, "poster.svg")); err == nil {
		t.Error("poster.svg should not be written")
	}
}

func TestGenerate_KeepsExisting(t *testing.T) {
	images := testImagesConfig(t)
	if err := os.MkdirAll(images.Dir, 0o755); err != nil {
		t.Fatal(err)
	}
	custom := filepath.Join(images.Dir, "product_9.png")
	if err := os.WriteFile(custom, []byte("real photo"), 0o600); err != nil {
		t.Fatal(err)
	}

	written, err := generate(testItems[:1], images, false)
	if err != nil || written != 0 {
		t.Fatalf("generate() = %d, %v, want 0, nil", written, err)
	}
	if b, _ := os.ReadFile(custom); string(b) != "real photo" {
		t.Error("existing image was replaced without -overwrite")
	}

	written, err = generate(testItems[:1], images, true)
	if err != nil || written != 1 {
		t.Fatalf("generate(overwrite) = %d, %v, want 1, nil", written, err)
	}
}

func TestPlaceholder_StableColorPerCategory(t *testing.T) {
	a := placeholder(catalog.Item{ID: 1, Category: "Electronics"})
	b := placeholder(catalog.Item{ID: 2, Category: "electronics"})
	if a.At(0, 0) != b.At(0, 0) {
		t.Error("same category should share a background color")
	}
	if a.At(0, 0) == a.At(imageSize/2, imageSize/2) {
		t.Error("center band should differ from the background")
	}
}
