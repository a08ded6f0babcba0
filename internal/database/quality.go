// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// ColumnQuality is the null count of one feed column.
type ColumnQuality struct {
	Name  string `json:"name"`
	Nulls int64  `json:"nulls"`
}

// FeedReport is a quick data-quality summary of one feed file.
type FeedReport struct {
	Name    string          `json:"name"`
	Path    string          `json:"path"`
	Rows    int64           `json:"rows"`
	Columns []ColumnQuality `json:"columns"`
	Head    [][]string      `json:"head"`
}

// HasNulls reports whether any column has missing values.
func (r *FeedReport) HasNulls() bool {
	for _, c := range r.Columns {
		if c.Nulls > 0 {
			return true
		}
	}
	return false
}

// Inspect reports row count, per-column null counts and the first headRows
// rows of the feed at path. Empty fields count as nulls.
func (db *DB) Inspect(ctx context.Context, name, path string, headRows int) (*FeedReport, error) {
	if err := checkFeed(path); err != nil {
		return nil, err
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	header, err := db.Columns(ctx, path)
	if err != nil {
		return nil, err
	}

	report := &FeedReport{Name: name, Path: path, Columns: make([]ColumnQuality, len(header))}

	// count(*) followed by count(col) for every column in a single scan.
	counts := make([]string, 0, len(header)+1)
	counts = append(counts, "count(*)")
	for _, h := range header {
		counts = append(counts, fmt.Sprintf("count(NULLIF(trim(%s), ''))", quoteIdent(h)))
	}
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(counts, ", "), csvSource(path))

	nonNull := make([]int64, len(header))
	dest := make([]any, 0, len(header)+1)
	dest = append(dest, &report.Rows)
	for i := range nonNull {
		dest = append(dest, &nonNull[i])
	}
	if err := db.conn.QueryRowContext(ctx, query).Scan(dest...); err != nil {
		return nil, fmt.Errorf("failed to profile %s: %w", path, err)
	}
	for i, h := range header {
		report.Columns[i] = ColumnQuality{Name: h, Nulls: report.Rows - nonNull[i]}
	}

	if headRows > 0 {
		report.Head, err = db.head(ctx, path, len(header), headRows)
		if err != nil {
			return nil, err
		}
	}
	return report, nil
}

func (db *DB) head(ctx context.Context, path string, width, limit int) ([][]string, error) {
	rows, err := db.conn.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT %d", csvSource(path), limit))
	if err != nil {
		return nil, fmt.Errorf("failed to read head of %s: %w", path, err)
	}
	defer closeQuietly(rows)

	values := make([]sql.NullString, width)
	dest := make([]any, width)
	for i := range values {
		dest[i] = &values[i]
	}

	head := make([][]string, 0, limit)
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan head of %s: %w", path, err)
		}
		row := make([]string, width)
		for i, v := range values {
			row[i] = v.String
		}
		head = append(head, row)
	}
	return head, rows.Err()
}
