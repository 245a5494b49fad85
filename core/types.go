// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

// Package core defines the shared domain types and the error taxonomy used
// across the engine. It is a leaf package with no internal dependencies.
package core

import "context"

// Item is a single catalog entry. Items are immutable after load: the
// training pipeline assigns each item a dense row index 0..N-1 in source
// order, and the id<->row mapping is fixed for the lifetime of a catalog.
type Item struct {
	// ID is the external item identifier (unique within a catalog).
	ID int `json:"movie_id"`

	// Title is the display title used for reference-item lookup.
	Title string `json:"title"`

	// Overview is the plot summary.
	Overview string `json:"overview"`

	// Genre is a comma-separated category list.
	Genre string `json:"genre"`

	// Cast is a comma-separated list of cast names.
	Cast string `json:"cast"`

	// Director is the director name.
	Director string `json:"director"`

	// Tagline is the marketing tagline.
	Tagline string `json:"tagline"`

	// Language is the original language code (e.g. "en").
	Language string `json:"original_language"`

	// Rating is the catalog-level popularity/rating scalar. It is item
	// metadata, not a user rating.
	Rating float64 `json:"rating"`

	// CombinedText is the normalized text blob derived from the fields
	// above at train time. Not part of the source schema.
	CombinedText string `json:"-"`
}

// Rating is a single historical user rating of an item. Duplicate
// (user, item) pairs are allowed in source data; matrix construction
// applies last-write-wins.
type Rating struct {
	UserID int     `json:"user_id"`
	ItemID int     `json:"item_id"`
	Value  float64 `json:"value"`
}

// ScoredItem is one entry of a ranked recommendation list. The two
// component scores are carried alongside the blend for transparency.
type ScoredItem struct {
	// Item is the recommended item's metadata.
	Item Item `json:"item"`

	// Score is the blended score in [0, 1].
	Score float64 `json:"score"`

	// ContentScore is the min-max-normalized content similarity in [0, 1].
	ContentScore float64 `json:"content_score"`

	// CollabScore is the rescaled collaborative prediction in [0, 1].
	CollabScore float64 `json:"collab_score"`
}

// ItemSource supplies the item catalog for a training run.
type ItemSource interface {
	// Items returns the ordered item records. Order is significant: it
	// fixes the catalog row order.
	Items(ctx context.Context) ([]Item, error)
}

// RatingSource supplies historical ratings for a training run.
type RatingSource interface {
	Ratings(ctx context.Context) ([]Rating, error)
}
