// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

// Package collab factorizes explicit user ratings into low-rank user and
// item embeddings and predicts per-user item ratings from them.
package collab

import (
	"fmt"
	"sort"

	"github.com/mithrangowda07/reelrank/core"
)

// matrix is the dense user-by-item rating matrix the factorizer runs on.
// Rows are users and columns are items, both in ascending id order.
type matrix struct {
	userIDs []int
	itemIDs []int
	data    []float64 // row-major, len(userIDs)*len(itemIDs)
}

func (m *matrix) rows() int { return len(m.userIDs) }
func (m *matrix) cols() int { return len(m.itemIDs) }

func (m *matrix) at(r, c int) float64 { return m.data[r*len(m.itemIDs)+c] }

// buildMatrix pivots the rating triples into a dense matrix. A duplicate
// (user, item) pair keeps the last rating in input order. Cells with no
// observed rating are filled with the user's mean observed rating;
// users are only present because they rated something, so the neutral
// fallback cannot trigger here.
func buildMatrix(ratings []core.Rating, neutral float64) (*matrix, error) {
	if len(ratings) == 0 {
		return nil, fmt.Errorf("no ratings to pivot")
	}

	userSet := make(map[int]struct{})
	itemSet := make(map[int]struct{})
	for _, r := range ratings {
		userSet[r.UserID] = struct{}{}
		itemSet[r.ItemID] = struct{}{}
	}

	userIDs := sortedKeys(userSet)
	itemIDs := sortedKeys(itemSet)

	userRow := make(map[int]int, len(userIDs))
	for row, id := range userIDs {
		userRow[id] = row
	}
	itemCol := make(map[int]int, len(itemIDs))
	for col, id := range itemIDs {
		itemCol[id] = col
	}

	n := len(itemIDs)
	data := make([]float64, len(userIDs)*n)
	observed := make([]bool, len(data))

	for _, r := range ratings {
		idx := userRow[r.UserID]*n + itemCol[r.ItemID]
		data[idx] = r.Value
		observed[idx] = true
	}

	for row := range userIDs {
		var sum float64
		var count int
		for col := 0; col < n; col++ {
			if observed[row*n+col] {
				sum += data[row*n+col]
				count++
			}
		}

		fill := neutral
		if count > 0 {
			fill = sum / float64(count)
		}
		for col := 0; col < n; col++ {
			if !observed[row*n+col] {
				data[row*n+col] = fill
			}
		}
	}

	return &matrix{userIDs: userIDs, itemIDs: itemIDs, data: data}, nil
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
