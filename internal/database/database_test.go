// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomtom215/shelfwise/internal/catalog"
	"github.com/tomtom215/shelfwise/internal/config"
)

// testDBSemaphore serializes DuckDB connections across tests. Concurrent CGO
// calls from many parallel tests can hang under CI resource pressure.
var testDBSemaphore = make(chan struct{}, 1)

const testProducts = `product_id,product_name,category,brand,price,rating
1,Wireless Earbuds,Electronics,Boat,1499,4.5
2,Bluetooth Speaker,Electronics,JBL,2999,4.2
3,Cotton T-Shirt,Fashion,,499,4.0
`

const testRatings = `user_id,product_id,rating
1,1,5
1,2,4
2,1,5
2,3,3.5
`

// setupTestDB opens a reader over a temporary data directory holding files.
func setupTestDB(t *testing.T, files map[string]string) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	cfg := &config.DataConfig{
		Dir:              dir,
		ProductsFile:     "products.csv",
		RatingsFile:      "ratings.csv",
		UsersFile:        "users.csv",
		TransactionsFile: "transactions.csv",
		Threads:          1,
		MaxMemory:        "512MB",
	}

	db, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func TestReadItems(t *testing.T) {
	db := setupTestDB(t, map[string]string{"products.csv": testProducts})

	items, err := db.ReadItems(context.Background(), db.FeedPath("products.csv"))
	if err != nil {
		t.Fatalf("ReadItems() error = %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("ReadItems() returned %d items, want 3", len(items))
	}

	want := catalog.Item{ID: 1, Name: "Wireless Earbuds", Category: "Electronics", Brand: "Boat", Price: 1499, Rating: 4.5}
	if items[0] != want {
		t.Errorf("items[0] = %+v, want %+v", items[0], want)
	}
	if items[2].Brand != "" {
		t.Errorf("missing brand = %q, want empty string", items[2].Brand)
	}
}

func TestReadItems_IDAlias(t *testing.T) {
	db := setupTestDB(t, map[string]string{
		"products.csv": "id,product_name,price,rating\n7,Table Lamp,899,3.8\n",
	})

	items, err := db.ReadItems(context.Background(), db.FeedPath("products.csv"))
	if err != nil {
		t.Fatalf("ReadItems() error = %v", err)
	}
	if len(items) != 1 || items[0].ID != 7 || items[0].Category != "" {
		t.Errorf("ReadItems() = %+v", items)
	}
}

func TestReadItems_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad id", "product_id,product_name,category,brand,price,rating\nabc,X,Y,Z,1,1\n"},
		{"fractional id", "product_id,product_name,category,brand,price,rating\n1.5,X,Y,Z,1,1\n"},
		{"missing price", "product_id,product_name,category,brand,price,rating\n1,X,Y,Z,,1\n"},
		{"bad rating", "product_id,product_name,category,brand,price,rating\n1,X,Y,Z,1,great\n"},
		{"missing column", "product_id,product_name,category,brand,price\n1,X,Y,Z,1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t, map[string]string{"products.csv": tt.content})

			_, err := db.ReadItems(context.Background(), db.FeedPath("products.csv"))
			if !errors.Is(err, catalog.ErrInvalidRecord) {
				t.Errorf("ReadItems() error = %v, want ErrInvalidRecord", err)
			}
		})
	}
}

func TestReadRatings(t *testing.T) {
	db := setupTestDB(t, map[string]string{"ratings.csv": testRatings})

	ratings, err := db.ReadRatings(context.Background(), db.FeedPath("ratings.csv"))
	if err != nil {
		t.Fatalf("ReadRatings() error = %v", err)
	}
	if len(ratings) != 4 {
		t.Fatalf("ReadRatings() returned %d ratings, want 4", len(ratings))
	}
	if got := ratings[3]; got.UserID != 2 || got.ItemID != 3 || got.Value != 3.5 {
		t.Errorf("ratings[3] = %+v", got)
	}
}

func TestReadRatings_HeaderOnly(t *testing.T) {
	db := setupTestDB(t, map[string]string{"ratings.csv": "user_id,product_id,rating\n"})

	ratings, err := db.ReadRatings(context.Background(), db.FeedPath("ratings.csv"))
	if err != nil {
		t.Fatalf("ReadRatings() error = %v", err)
	}
	if len(ratings) != 0 {
		t.Errorf("ReadRatings() = %v, want empty", ratings)
	}
}

func TestReadFeed_Missing(t *testing.T) {
	db := setupTestDB(t, nil)

	if _, err := db.ReadItems(context.Background(), db.FeedPath("products.csv")); !errors.Is(err, ErrFeedMissing) {
		t.Errorf("ReadItems() error = %v, want ErrFeedMissing", err)
	}
	if _, err := db.ReadRatings(context.Background(), db.FeedPath("ratings.csv")); !errors.Is(err, ErrFeedMissing) {
		t.Errorf("ReadRatings() error = %v, want ErrFeedMissing", err)
	}
}

func TestLoadStores(t *testing.T) {
	db := setupTestDB(t, map[string]string{
		"products.csv": testProducts,
		"ratings.csv":  testRatings,
	})

	cat, ratings, err := db.LoadStores(context.Background())
	if err != nil {
		t.Fatalf("LoadStores() error = %v", err)
	}
	if cat.Len() != 3 {
		t.Errorf("catalog has %d items, want 3", cat.Len())
	}
	if ratings.Len() != 4 || ratings.Users() != 2 {
		t.Errorf("ratings = %d triples / %d users, want 4 / 2", ratings.Len(), ratings.Users())
	}
}

func TestLoadStores_DuplicateItem(t *testing.T) {
	db := setupTestDB(t, map[string]string{
		"products.csv": testProducts + "1,Duplicate,Electronics,Boat,10,1\n",
		"ratings.csv":  testRatings,
	})

	if _, _, err := db.LoadStores(context.Background()); !errors.Is(err, catalog.ErrDuplicateItem) {
		t.Errorf("LoadStores() error = %v, want ErrDuplicateItem", err)
	}
}

func TestFeedPath(t *testing.T) {
	db := setupTestDB(t, nil)

	abs := filepath.Join(t.TempDir(), "x.csv")
	if got := db.FeedPath(abs); got != abs {
		t.Errorf("FeedPath(%q) = %q", abs, got)
	}
	if got, want := db.FeedPath("x.csv"), filepath.Join(db.cfg.Dir, "x.csv"); got != want {
		t.Errorf("FeedPath(x.csv) = %q, want %q", got, want)
	}
}
