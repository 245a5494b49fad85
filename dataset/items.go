// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

// Package dataset provides file-backed item and rating sources for
// training: a JSON movie catalog and a CSV ratings export.
package dataset

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/mithrangowda07/reelrank/core"
)

// JSONItemSource reads the movie catalog from a JSON array file. Each
// element carries the catalog fields (movie_id, title, overview, genre,
// cast, director, tagline, original_language, rating).
type JSONItemSource struct {
	path string
}

// NewJSONItemSource creates an item source over the given file path. The
// file is read on each Items call, not at construction.
func NewJSONItemSource(path string) *JSONItemSource {
	return &JSONItemSource{path: path}
}

// Items loads and decodes the full catalog.
func (s *JSONItemSource) Items(ctx context.Context) ([]core.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var items []core.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode catalog file %s: %w", s.path, err)
	}
	return items, nil
}

// StaticItemSource serves a fixed in-memory catalog. Useful for tests
// and for callers that assemble items from elsewhere.
type StaticItemSource []core.Item

// Items returns the underlying slice.
func (s StaticItemSource) Items(ctx context.Context) ([]core.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
