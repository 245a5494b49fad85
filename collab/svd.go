// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

package collab

import (
	"math"
	"math/rand"
)

// factorize computes a rank-k truncated factorization of the rating
// matrix via subspace iteration on AᵀA: a seeded Gaussian start basis is
// repeatedly multiplied by AᵀA and re-orthonormalized, converging on the
// top-k right singular subspace V. The returned user factors are A·V and
// the item factors are V, so the dot product of a user row with an item
// row reconstructs that cell of the rank-k projection of A.
//
// The same seed over the same matrix yields identical factors.
func factorize(a *matrix, k, iterations int, seed int64) (userFactors, itemFactors [][]float64) {
	m, n := a.rows(), a.cols()
	if k > m {
		k = m
	}
	if k > n {
		k = n
	}
	if k < 1 {
		k = 1
	}

	gram := gramMatrix(a)

	rng := rand.New(rand.NewSource(seed))
	v := make([][]float64, n)
	for i := range v {
		v[i] = make([]float64, k)
		for j := range v[i] {
			v[i][j] = rng.NormFloat64()
		}
	}
	orthonormalize(v)

	for it := 0; it < iterations; it++ {
		v = multiply(gram, v)
		orthonormalize(v)
	}

	userFactors = make([][]float64, m)
	for row := 0; row < m; row++ {
		userFactors[row] = make([]float64, k)
		for j := 0; j < k; j++ {
			var sum float64
			for col := 0; col < n; col++ {
				sum += a.at(row, col) * v[col][j]
			}
			userFactors[row][j] = sum
		}
	}

	return userFactors, v
}

// gramMatrix returns AᵀA as a dense n×n matrix.
func gramMatrix(a *matrix) [][]float64 {
	m, n := a.rows(), a.cols()
	gram := make([][]float64, n)
	for i := range gram {
		gram[i] = make([]float64, n)
	}

	for row := 0; row < m; row++ {
		for i := 0; i < n; i++ {
			vi := a.at(row, i)
			if vi == 0 {
				continue
			}
			for j := i; j < n; j++ {
				gram[i][j] += vi * a.at(row, j)
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			gram[i][j] = gram[j][i]
		}
	}
	return gram
}

// multiply returns g·v for an n×n matrix g and an n×k column block v.
func multiply(g [][]float64, v [][]float64) [][]float64 {
	n := len(g)
	k := len(v[0])
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, k)
		for l := 0; l < n; l++ {
			gil := g[i][l]
			if gil == 0 {
				continue
			}
			for j := 0; j < k; j++ {
				out[i][j] += gil * v[l][j]
			}
		}
	}
	return out
}

// orthonormalize applies modified Gram-Schmidt to the columns of v in
// place. A column that collapses to (numerical) zero is left as the zero
// vector rather than renormalized.
func orthonormalize(v [][]float64) {
	if len(v) == 0 {
		return
	}
	k := len(v[0])

	for j := 0; j < k; j++ {
		for p := 0; p < j; p++ {
			var dot float64
			for i := range v {
				dot += v[i][j] * v[i][p]
			}
			for i := range v {
				v[i][j] -= dot * v[i][p]
			}
		}

		var norm float64
		for i := range v {
			norm += v[i][j] * v[i][j]
		}
		norm = math.Sqrt(norm)
		if norm < 1e-12 {
			for i := range v {
				v[i][j] = 0
			}
			continue
		}
		for i := range v {
			v[i][j] /= norm
		}
	}
}
