// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package models defines the HTTP API data structures for Shelfwise.

Key Components:

  - APIResponse: Standardized response wrapper with Metadata and APIError
  - Product: Catalog item as served to clients, including its image URL
  - Recommendation / RecommendationList: Ranked recommendation output
  - EngineStats / HealthStatus: Operational endpoints

All types serialize with github.com/goccy/go-json in the api package and use
snake_case JSON field names.
*/
package models
