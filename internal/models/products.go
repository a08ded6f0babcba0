// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package models

// Product is a catalog item as served to clients.
type Product struct {
	ID       int     `json:"product_id"`
	Name     string  `json:"product_name"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	ImageURL string  `json:"image_url"`
}

// ProductList is the catalog listing response.
type ProductList struct {
	Count    int       `json:"count"`
	Products []Product `json:"products"`
}

// Recommendation is one ranked product.
//
// Score meaning depends on Source: similarity in [0,1] for content, the
// neighborhood mean rating for collaborative and the catalog rating for
// popularity.
type Recommendation struct {
	Rank    int     `json:"rank"`
	Product Product `json:"product"`
	Score   float64 `json:"score"`
	RatedBy int     `json:"rated_by,omitempty"`
	Source  string  `json:"source"`
}

// RecommendationList is the response of every recommendation endpoint.
//
// Outcome is "personalized", "fallback" (popularity ranking served instead)
// or "empty".
type RecommendationList struct {
	Operation       string           `json:"operation"`
	ItemID          *int             `json:"item_id,omitempty"`
	UserID          *int             `json:"user_id,omitempty"`
	N               int              `json:"n"`
	Outcome         string           `json:"outcome"`
	Count           int              `json:"count"`
	Recommendations []Recommendation `json:"recommendations"`
}
