// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

package collab

import (
	"fmt"

	"github.com/mithrangowda07/reelrank/core"
)

// Params controls a single factorization run.
type Params struct {
	// Factors is the target embedding rank. It is clamped to the matrix
	// dimensions, so small corpora get smaller embeddings.
	Factors int

	// Iterations is the number of subspace iteration rounds.
	Iterations int

	// Seed seeds the start basis; identical seeds reproduce identical
	// factors for the same ratings.
	Seed int64

	// Neutral is the rating assumed for users the model has never seen
	// and for mean-filling users without observed ratings.
	Neutral float64

	// RatingMin and RatingMax bound every predicted rating.
	RatingMin float64
	RatingMax float64
}

func (p Params) validate() error {
	if p.Factors < 1 {
		return fmt.Errorf("%w: factors must be at least 1, got %d", core.ErrInvalidParameter, p.Factors)
	}
	if p.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be at least 1, got %d", core.ErrInvalidParameter, p.Iterations)
	}
	if p.RatingMin >= p.RatingMax {
		return fmt.Errorf("%w: rating range [%g, %g] is empty", core.ErrInvalidParameter, p.RatingMin, p.RatingMax)
	}
	return nil
}

// Model holds the trained embeddings plus the id indexes needed to score
// arbitrary (user, item) pairs. All fields are exported for gob
// serialization; the model is immutable after Train.
type Model struct {
	// UserIDs and ItemIDs list the ids seen at train time in ascending
	// order; the factor rows are in the same order.
	UserIDs []int
	ItemIDs []int

	// UserIndex and ItemIndex map an id to its factor row.
	UserIndex map[int]int
	ItemIndex map[int]int

	// UserFactors is the user embedding matrix (one row per user) and
	// ItemFactors the item embedding matrix (one row per item), sharing
	// the same rank.
	UserFactors [][]float64
	ItemFactors [][]float64

	// Neutral, RatingMin, and RatingMax are carried from Params so a
	// persisted model predicts exactly like the freshly trained one.
	Neutral   float64
	RatingMin float64
	RatingMax float64
}

// Train pivots the ratings into a dense matrix and factorizes it.
func Train(ratings []core.Rating, p Params) (*Model, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	mat, err := buildMatrix(ratings, p.Neutral)
	if err != nil {
		return nil, err
	}

	userFactors, itemFactors := factorize(mat, p.Factors, p.Iterations, p.Seed)

	userIndex := make(map[int]int, len(mat.userIDs))
	for row, id := range mat.userIDs {
		userIndex[id] = row
	}
	itemIndex := make(map[int]int, len(mat.itemIDs))
	for row, id := range mat.itemIDs {
		itemIndex[id] = row
	}

	return &Model{
		UserIDs:     mat.userIDs,
		ItemIDs:     mat.itemIDs,
		UserIndex:   userIndex,
		ItemIndex:   itemIndex,
		UserFactors: userFactors,
		ItemFactors: itemFactors,
		Neutral:     p.Neutral,
		RatingMin:   p.RatingMin,
		RatingMax:   p.RatingMax,
	}, nil
}

// UserCount returns the number of users the model was trained on.
func (m *Model) UserCount() int { return len(m.UserIDs) }

// ItemCount returns the number of items the model was trained on.
func (m *Model) ItemCount() int { return len(m.ItemIDs) }

// PredictedRating reconstructs the rating for a (user, item) pair from
// the embeddings, clamped to the model's rating range. Pairs involving a
// user or item unseen at train time get the neutral rating.
func (m *Model) PredictedRating(userID, itemID int) float64 {
	uRow, ok := m.UserIndex[userID]
	if !ok {
		return m.Neutral
	}
	iRow, ok := m.ItemIndex[itemID]
	if !ok {
		return m.Neutral
	}

	var sum float64
	uf, itf := m.UserFactors[uRow], m.ItemFactors[iRow]
	for j := range uf {
		sum += uf[j] * itf[j]
	}

	if sum < m.RatingMin {
		return m.RatingMin
	}
	if sum > m.RatingMax {
		return m.RatingMax
	}
	return sum
}
