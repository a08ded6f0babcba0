// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

// Package database reads the catalog and rating feeds through an embedded
// DuckDB connection.
//
// DuckDB's read_csv does the file parsing. Every column is read as VARCHAR
// and converted in Go so a malformed value is reported with its feed and row
// number instead of a generic cast error.
//
// # Feeds
//
//   - products.csv: product_id, product_name, category, brand, price, rating
//   - ratings.csv: user_id, product_id, rating
//   - users.csv, transactions.csv: only inspected by the quality report
//
// The legacy column name "id" is accepted in place of "product_id".
//
// # Usage
//
//	db, err := database.Open(&cfg.Data)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	items, ratings, err := db.LoadStores(ctx)
//
// A missing feed wraps ErrFeedMissing. A malformed record wraps
// catalog.ErrInvalidRecord.
package database
