// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

// Package catalog holds the item table and the stable bidirectional
// mapping between external item ids and dense row indices.
//
// Row order is the insertion order of the source data and the id<->row
// mapping is a bijection fixed for the lifetime of a loaded index. Title
// lookup and substring search also live here because the index owns the
// metadata table.
package catalog

import (
	"fmt"
	"strings"

	"github.com/mithrangowda07/reelrank/core"
)

// Index is an immutable catalog index. Safe for concurrent use once built.
type Index struct {
	items []core.Item
	rowOf map[int]int
}

// Load builds an index from an ordered item sequence. It fails with
// core.ErrInvalidCatalog if the sequence is empty or an external id
// repeats.
func Load(items []core.Item) (*Index, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty item sequence", core.ErrInvalidCatalog)
	}

	rowOf := make(map[int]int, len(items))
	for row, item := range items {
		if prev, ok := rowOf[item.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate item id %d (rows %d and %d)",
				core.ErrInvalidCatalog, item.ID, prev, row)
		}
		rowOf[item.ID] = row
	}

	owned := make([]core.Item, len(items))
	copy(owned, items)

	return &Index{items: owned, rowOf: rowOf}, nil
}

// RowCount returns the number of items.
func (ix *Index) RowCount() int {
	return len(ix.items)
}

// RowOf returns the dense row index for an external item id.
func (ix *Index) RowOf(itemID int) (int, bool) {
	row, ok := ix.rowOf[itemID]
	return row, ok
}

// IDOf returns the external item id for a row.
func (ix *Index) IDOf(row int) int {
	return ix.items[row].ID
}

// ItemAt returns the item metadata stored at a row.
func (ix *Index) ItemAt(row int) core.Item {
	return ix.items[row]
}

// Items returns the full item table in row order. The returned slice is
// shared; callers must not mutate it.
func (ix *Index) Items() []core.Item {
	return ix.items
}

// MatchTitle resolves a reference title to a row. Matching is
// case-insensitive: an exact title match wins; failing that, the first
// row (in row order) whose title contains the query wins. No match is not
// an error; the second return is false.
func (ix *Index) MatchTitle(title string) (int, bool) {
	needle := strings.ToLower(title)

	for row, item := range ix.items {
		if strings.ToLower(item.Title) == needle {
			return row, true
		}
	}

	for row, item := range ix.items {
		if strings.Contains(strings.ToLower(item.Title), needle) {
			return row, true
		}
	}

	return 0, false
}

// SearchTitle returns up to limit items whose titles contain the query,
// case-insensitively, in row order. A non-positive limit returns nil.
func (ix *Index) SearchTitle(query string, limit int) []core.Item {
	if limit <= 0 {
		return nil
	}

	needle := strings.ToLower(query)
	var out []core.Item
	for _, item := range ix.items {
		if strings.Contains(strings.ToLower(item.Title), needle) {
			out = append(out, item)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
