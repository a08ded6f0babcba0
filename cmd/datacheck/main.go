// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

// Command datacheck prints a data-quality summary of the feed files: row
// counts, per-column missing values and the first rows of each feed. It exits
// non-zero when a feed that the engine needs cannot be read.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/shelfwise/internal/config"
	"github.com/tomtom215/shelfwise/internal/database"
	"github.com/tomtom215/shelfwise/internal/logging"
)

// feed names one configured feed file.
type feed struct {
	name     string
	file     string
	required bool
}

func feeds(cfg *config.DataConfig) []feed {
	return []feed{
		{name: "products", file: cfg.ProductsFile, required: true},
		{name: "ratings", file: cfg.RatingsFile, required: true},
		{name: "users", file: cfg.UsersFile},
		{name: "transactions", file: cfg.TransactionsFile},
	}
}

func main() {
	headRows := flag.Int("head", 5, "number of leading rows to print per feed")
	asJSON := flag.Bool("json", false, "print reports as JSON")
	timeout := flag.Duration("timeout", time.Minute, "overall inspection timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    "console",
		Timestamp: true,
	})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	code := run(ctx, &cfg.Data, *headRows, *asJSON, os.Stdout)
	cancel()
	os.Exit(code)
}

// run inspects every feed and writes the reports to out. The return value is
// the process exit code.
func run(ctx context.Context, cfg *config.DataConfig, headRows int, asJSON bool, out io.Writer) int {
	db, err := database.Open(cfg)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to open feed reader")
		return 1
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close feed reader")
		}
	}()

	code := 0
	reports := make([]*database.FeedReport, 0, 4)
	for _, f := range feeds(cfg) {
		report, err := db.Inspect(ctx, f.name, db.FeedPath(f.file), headRows)
		if err != nil {
			event := logging.Warn()
			if f.required {
				event = logging.Error()
				code = 1
			}
			if errors.Is(err, database.ErrFeedMissing) {
				event.Str("feed", f.name).Str("path", db.FeedPath(f.file)).Msg("Feed file not found")
			} else {
				event.Err(err).Str("feed", f.name).Msg("Failed to inspect feed")
			}
			continue
		}
		if report.HasNulls() {
			logging.Warn().Str("feed", f.name).Msg("Feed has missing values")
		}
		reports = append(reports, report)
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			logging.Error().Err(err).Msg("Failed to encode reports")
			return 1
		}
		return code
	}

	for _, r := range reports {
		writeReport(out, r)
	}
	return code
}

func writeReport(out io.Writer, r *database.FeedReport) {
	fmt.Fprintf(out, "== %s (%s) ==\n", r.Name, r.Path)
	fmt.Fprintf(out, "rows: %d\n", r.Rows)
	fmt.Fprintln(out, "missing values:")
	for _, c := range r.Columns {
		fmt.Fprintf(out, "  %-20s %d\n", c.Name, c.Nulls)
	}
	if len(r.Head) > 0 {
		names := make([]string, len(r.Columns))
		for i, c := range r.Columns {
			names[i] = c.Name
		}
		fmt.Fprintln(out, "head:")
		fmt.Fprintf(out, "  %s\n", strings.Join(names, " | "))
		for _, row := range r.Head {
			fmt.Fprintf(out, "  %s\n", strings.Join(row, " | "))
		}
	}
	fmt.Fprintln(out)
}
