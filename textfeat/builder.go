// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

// Package textfeat derives the normalized text blob used for content
// similarity from an item's metadata fields.
//
// The construction is a pure function of the item: identical input
// produces byte-identical output across runs, which the training pipeline
// relies on for reproducibility.
package textfeat

import (
	"strings"

	"github.com/mithrangowda07/reelrank/core"
)

// maxCastNames is how many leading cast names contribute to the blob;
// names beyond this are discarded.
const maxCastNames = 5

// castDelimiter separates names in the raw cast field. Surrounding
// whitespace around each name is trimmed after splitting.
const castDelimiter = ","

// Combine builds the normalized text blob for an item.
//
// Field order is fixed: overview, genre, first five cast names, director
// twice (weighting it above the other fields), tagline, language code.
// Runs of whitespace collapse to a single space and the result is
// lowercased. Missing fields contribute nothing.
func Combine(item core.Item) string {
	parts := make([]string, 0, maxCastNames+6)
	parts = append(parts, item.Overview, item.Genre)
	parts = append(parts, splitCast(item.Cast)...)
	// Director is repeated to double its term weight.
	parts = append(parts, item.Director, item.Director, item.Tagline, item.Language)

	combined := strings.Join(parts, " ")
	combined = strings.Join(strings.Fields(combined), " ")
	return strings.ToLower(combined)
}

// splitCast returns up to maxCastNames trimmed names from the raw cast
// field.
func splitCast(cast string) []string {
	if cast == "" {
		return nil
	}

	names := strings.Split(cast, castDelimiter)
	if len(names) > maxCastNames {
		names = names[:maxCastNames]
	}
	for i, name := range names {
		names[i] = strings.TrimSpace(name)
	}
	return names
}
