// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/shelfwise/internal/catalog"
	"github.com/tomtom215/shelfwise/internal/logging"
)

// errMissingValue marks an empty required field.
var errMissingValue = errors.New("missing value")

// column describes one feed column. Optional columns read as NULL when the
// file does not have them.
type column struct {
	name     string
	aliases  []string
	optional bool
}

var productColumns = []column{
	{name: "product_id", aliases: []string{"id"}},
	{name: "product_name", optional: true},
	{name: "category", optional: true},
	{name: "brand", optional: true},
	{name: "price"},
	{name: "rating"},
}

var ratingColumns = []column{
	{name: "user_id"},
	{name: "product_id", aliases: []string{"id"}},
	{name: "rating"},
}

// LoadStores reads both feeds and builds the validated stores.
func (db *DB) LoadStores(ctx context.Context) (*catalog.Catalog, *catalog.Ratings, error) {
	items, err := db.ReadItems(ctx, db.FeedPath(db.cfg.ProductsFile))
	if err != nil {
		return nil, nil, err
	}
	cat, err := catalog.NewCatalog(items)
	if err != nil {
		return nil, nil, fmt.Errorf("products feed: %w", err)
	}

	triples, err := db.ReadRatings(ctx, db.FeedPath(db.cfg.RatingsFile))
	if err != nil {
		return nil, nil, err
	}
	ratings, err := catalog.NewRatings(triples)
	if err != nil {
		return nil, nil, fmt.Errorf("ratings feed: %w", err)
	}

	return cat, ratings, nil
}

// ReadItems reads the products feed at path.
func (db *DB) ReadItems(ctx context.Context, path string) ([]catalog.Item, error) {
	var items []catalog.Item

	err := db.readFeed(ctx, path, productColumns, func(row int, v []sql.NullString) error {
		id, err := parseID(v[0])
		if err != nil {
			return fieldError(path, row, "product_id", err)
		}
		price, err := parseNumber(v[4])
		if err != nil {
			return fieldError(path, row, "price", err)
		}
		rating, err := parseNumber(v[5])
		if err != nil {
			return fieldError(path, row, "rating", err)
		}

		items = append(items, catalog.Item{
			ID:       id,
			Name:     v[1].String,
			Category: v[2].String,
			Brand:    v[3].String,
			Price:    price,
			Rating:   rating,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ReadRatings reads the ratings feed at path. A header-only feed yields no
// ratings and no error.
func (db *DB) ReadRatings(ctx context.Context, path string) ([]catalog.Rating, error) {
	ratings := make([]catalog.Rating, 0)

	err := db.readFeed(ctx, path, ratingColumns, func(row int, v []sql.NullString) error {
		user, err := parseID(v[0])
		if err != nil {
			return fieldError(path, row, "user_id", err)
		}
		item, err := parseID(v[1])
		if err != nil {
			return fieldError(path, row, "product_id", err)
		}
		value, err := parseNumber(v[2])
		if err != nil {
			return fieldError(path, row, "rating", err)
		}

		ratings = append(ratings, catalog.Rating{UserID: user, ItemID: item, Value: value})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// readFeed streams the feed at path, calling fn with the 1-based data row
// number and the values of cols in order.
func (db *DB) readFeed(ctx context.Context, path string, cols []column, fn func(row int, values []sql.NullString) error) error {
	if err := checkFeed(path); err != nil {
		return err
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()
	start := time.Now()

	header, err := db.Columns(ctx, path)
	if err != nil {
		return err
	}

	selects, err := projection(path, header, cols)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(selects, ", "), csvSource(path))
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to read feed %s: %w", path, err)
	}
	defer closeQuietly(rows)

	values := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}

	row := 0
	for rows.Next() {
		row++
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("failed to scan %s row %d: %w", path, row, err)
		}
		if err := fn(row, values); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read feed %s: %w", path, err)
	}

	logging.Debug().
		Str("feed", path).
		Int("rows", row).
		Dur("duration", time.Since(start)).
		Msg("feed loaded")
	return nil
}

// Columns returns the header of the feed at path.
func (db *DB) Columns(ctx context.Context, path string) ([]string, error) {
	rows, err := db.conn.QueryContext(ctx, "SELECT * FROM "+csvSource(path)+" LIMIT 0")
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	defer closeQuietly(rows)

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	return names, nil
}

// projection maps the wanted columns onto the feed header.
func projection(path string, header []string, cols []column) ([]string, error) {
	present := make(map[string]string, len(header))
	for _, h := range header {
		present[strings.ToLower(strings.TrimSpace(h))] = h
	}

	selects := make([]string, 0, len(cols))
	for _, c := range cols {
		name, ok := present[c.name]
		for _, alias := range c.aliases {
			if ok {
				break
			}
			name, ok = present[alias]
		}

		switch {
		case ok:
			selects = append(selects, quoteIdent(name))
		case c.optional:
			selects = append(selects, "NULL")
		default:
			return nil, fmt.Errorf("%w: %s has no %q column", catalog.ErrInvalidRecord, path, c.name)
		}
	}
	return selects, nil
}

func fieldError(path string, row int, field string, err error) error {
	return fmt.Errorf("%w: %s row %d: %s: %w", catalog.ErrInvalidRecord, path, row, field, err)
}

// parseID parses an integer id. Integral floats such as "3.0" are accepted.
func parseID(v sql.NullString) (int, error) {
	s := strings.TrimSpace(v.String)
	if !v.Valid || s == "" {
		return 0, errMissingValue
	}
	if id, err := strconv.Atoi(s); err == nil {
		return id, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return int(f), nil
}

func parseNumber(v sql.NullString) (float64, error) {
	s := strings.TrimSpace(v.String)
	if !v.Valid || s == "" {
		return 0, errMissingValue
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}
