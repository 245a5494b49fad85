// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mithrangowda07/reelrank/core"
)

// CSVRatingSource reads explicit ratings from a CSV export with columns
// userId, movieId, rating and optionally a trailing timestamp. A header
// row is detected and skipped.
type CSVRatingSource struct {
	path string
}

// NewCSVRatingSource creates a rating source over the given file path.
func NewCSVRatingSource(path string) *CSVRatingSource {
	return &CSVRatingSource{path: path}
}

// Ratings loads and parses all rating rows.
func (s *CSVRatingSource) Ratings(ctx context.Context) ([]core.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open ratings file: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var ratings []core.Rating
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read ratings file %s: %w", s.path, err)
		}
		line++

		if line == 1 && isHeaderRow(record) {
			continue
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("ratings file %s line %d: expected at least 3 columns, got %d", s.path, line, len(record))
		}

		userID, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("ratings file %s line %d: invalid user id %q", s.path, line, record[0])
		}
		itemID, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("ratings file %s line %d: invalid movie id %q", s.path, line, record[1])
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("ratings file %s line %d: invalid rating %q", s.path, line, record[2])
		}

		ratings = append(ratings, core.Rating{UserID: userID, ItemID: itemID, Value: value})
	}

	return ratings, nil
}

// isHeaderRow reports whether the first CSV record is the column header.
// Only the known label counts as a header; any other non-numeric first
// field is a malformed data row and must surface as a parse error.
func isHeaderRow(record []string) bool {
	if len(record) == 0 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(record[0]), "userId")
}

// StaticRatingSource serves a fixed in-memory rating set.
type StaticRatingSource []core.Rating

// Ratings returns the underlying slice.
func (s StaticRatingSource) Ratings(ctx context.Context) ([]core.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
