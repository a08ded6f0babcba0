// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package database

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ErrFeedMissing is returned when a feed file does not exist.
var ErrFeedMissing = errors.New("feed file missing")

// checkFeed verifies that path names a readable regular file.
func checkFeed(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFeedMissing, path)
		}
		return fmt.Errorf("failed to stat feed %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrFeedMissing, path)
	}
	return nil
}

// closeQuietly closes a resource and explicitly ignores any error.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close() // best-effort cleanup on error paths
	}
}
