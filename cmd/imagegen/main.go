// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

// Command imagegen writes a placeholder image for every product in the
// products feed into images.dir, named exactly as the API's image_url
// expects. Existing files are kept unless -overwrite is set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/shelfwise/internal/catalog"
	"github.com/tomtom215/shelfwise/internal/config"
	"github.com/tomtom215/shelfwise/internal/database"
	"github.com/tomtom215/shelfwise/internal/logging"
)

const imageSize = 400

// palette holds the placeholder background colors; a category always maps
// to the same one.
var palette = []color.RGBA{
	{R: 0x1B, G: 0x5E, B: 0x20, A: 0xFF},
	{R: 0x81, G: 0xC7, B: 0x84, A: 0xFF},
	{R: 0xC5, G: 0xD8, B: 0xA4, A: 0xFF},
	{R: 0xFA, G: 0xE9, B: 0xD4, A: 0xFF},
}

var errUnsupportedFormat = errors.New("unsupported image format")

func main() {
	overwrite := flag.Bool("overwrite", false, "replace existing image files")
	timeout := flag.Duration("timeout", time.Minute, "feed read timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: "console", Timestamp: true})

	if cfg.Images.Dir == "" {
		logging.Fatal().Msg("images.dir is empty, nowhere to write images")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	items, err := readProducts(ctx, &cfg.Data)
	cancel()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to read products feed")
	}

	written, err := generate(items, &cfg.Images, *overwrite)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to generate images")
	}
	logging.Info().Int("written", written).Int("products", len(items)).Str("dir", cfg.Images.Dir).Msg("Placeholder images ready")
}

func readProducts(ctx context.Context, cfg *config.DataConfig) ([]catalog.Item, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close feed reader")
		}
	}()
	return db.ReadItems(ctx, db.FeedPath(cfg.ProductsFile))
}

// generate writes one image per item and returns how many files it wrote.
// Items whose file name has an unknown extension are skipped with a warning.
func generate(items []catalog.Item, images *config.ImagesConfig, overwrite bool) (int, error) {
	if err := os.MkdirAll(images.Dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", images.Dir, err)
	}

	written := 0
	for _, item := range items {
		name := images.FileName(item.ID, item.Name)
		path := filepath.Join(images.Dir, filepath.Base(name))

		if !overwrite {
			if _, err := os.Stat(path); err == nil {
				continue
			} else if !errors.Is(err, fs.ErrNotExist) {
				return written, fmt.Errorf("failed to stat %s: %w", path, err)
			}
		}

		err := writeImage(path, placeholder(item))
		if errors.Is(err, errUnsupportedFormat) {
			logging.Warn().Int("product_id", item.ID).Str("file", name).Msg("Skipping image with unsupported extension")
			continue
		}
		if err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// placeholder draws the category color with a lighter band across the
// middle where a product photo would sit.
func placeholder(item catalog.Item) *image.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(item.Category)))
	bg := palette[h.Sum32()%uint32(len(palette))]

	img := image.NewRGBA(image.Rect(0, 0, imageSize, imageSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	band := color.RGBA{R: lighten(bg.R), G: lighten(bg.G), B: lighten(bg.B), A: 0xFF}
	draw.Draw(img, image.Rect(40, 140, imageSize-40, 260), &image.Uniform{C: band}, image.Point{}, draw.Src)
	return img
}

func lighten(c uint8) uint8 {
	return c + (0xFF-c)/2
}

func writeImage(path string, img image.Image) (err error) {
	var encode func(*os.File) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".jpg", ".jpeg":
		encode = func(f *os.File) error { return jpeg.Encode(f, img, &jpeg.Options{Quality: 90}) }
	default:
		return errUnsupportedFormat
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := encode(f); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
