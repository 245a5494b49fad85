// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

// Package content builds term-weighted sparse vectors over item text
// blobs and answers cosine-similarity queries against the whole catalog.
//
// # Weighting
//
// Each catalog row gets a TF-IDF vector over unigrams and bigrams of its
// normalized blob, with smoothed inverse document frequency
// (ln((1+N)/(1+df)) + 1) and L2 row normalization. Vocabulary and weights
// are frozen at train time; there is no incremental vocabulary growth.
//
// # Determinism
//
// Vocabulary truncation ranks terms by document frequency, breaking ties
// by corpus term frequency and then lexical order, so the same corpus
// always produces the same vocabulary and the same weights.
package content

import (
	"fmt"
	"math"
	"sort"
)

// SparseVector is one row of the content feature matrix: parallel slices
// of term ids and weights, sorted by term id.
type SparseVector struct {
	TermIDs []int
	Weights []float64
}

// Dot returns the dot product of two sparse vectors. For the L2-normalized
// rows of a Model this is exactly their cosine similarity; a zero vector
// dots to 0 with everything.
func (v SparseVector) Dot(other SparseVector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.TermIDs) && j < len(other.TermIDs) {
		switch {
		case v.TermIDs[i] == other.TermIDs[j]:
			sum += v.Weights[i] * other.Weights[j]
			i++
			j++
		case v.TermIDs[i] < other.TermIDs[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Model is a trained content-similarity model: the frozen vocabulary, its
// idf weights, and one normalized vector per catalog row. All fields are
// exported for gob serialization; the model is immutable after Build.
type Model struct {
	// Terms is the vocabulary; the slice index is the term id.
	Terms []string

	// IDF holds the smoothed inverse document frequency per term id.
	IDF []float64

	// Rows holds the L2-normalized TF-IDF vector per catalog row.
	Rows []SparseVector
}

// RowScore pairs a catalog row with a similarity score.
type RowScore struct {
	Row   int
	Score float64
}

// Build fits a content model over the per-row text blobs. maxFeatures
// caps the vocabulary at the highest-document-frequency terms.
func Build(blobs []string, maxFeatures int) (*Model, error) {
	if len(blobs) == 0 {
		return nil, fmt.Errorf("no text blobs to vectorize")
	}
	if maxFeatures < 1 {
		return nil, fmt.Errorf("max features must be positive, got %d", maxFeatures)
	}

	rowTerms := make([][]string, len(blobs))
	df := make(map[string]int)
	tf := make(map[string]int)

	for row, blob := range blobs {
		ts := terms(blob)
		rowTerms[row] = ts

		seen := make(map[string]struct{}, len(ts))
		for _, term := range ts {
			tf[term]++
			if _, ok := seen[term]; !ok {
				df[term]++
				seen[term] = struct{}{}
			}
		}
	}

	vocab := selectVocabulary(df, tf, maxFeatures)

	termID := make(map[string]int, len(vocab))
	for id, term := range vocab {
		termID[term] = id
	}

	n := float64(len(blobs))
	idf := make([]float64, len(vocab))
	for id, term := range vocab {
		idf[id] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	rows := make([]SparseVector, len(blobs))
	for row, ts := range rowTerms {
		rows[row] = vectorizeRow(ts, termID, idf)
	}

	return &Model{Terms: vocab, IDF: idf, Rows: rows}, nil
}

// selectVocabulary ranks candidate terms by document frequency (desc),
// corpus term frequency (desc), then lexical order (asc) and keeps the
// top maxFeatures.
func selectVocabulary(df, tf map[string]int, maxFeatures int) []string {
	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}

	sort.Slice(vocab, func(i, j int) bool {
		a, b := vocab[i], vocab[j]
		if df[a] != df[b] {
			return df[a] > df[b]
		}
		if tf[a] != tf[b] {
			return tf[a] > tf[b]
		}
		return a < b
	})

	if len(vocab) > maxFeatures {
		vocab = vocab[:maxFeatures]
	}
	return vocab
}

// vectorizeRow builds the normalized sparse vector for one row's terms.
func vectorizeRow(ts []string, termID map[string]int, idf []float64) SparseVector {
	counts := make(map[int]int)
	for _, term := range ts {
		if id, ok := termID[term]; ok {
			counts[id]++
		}
	}
	if len(counts) == 0 {
		return SparseVector{}
	}

	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	weights := make([]float64, len(ids))
	var norm float64
	for i, id := range ids {
		w := float64(counts[id]) * idf[id]
		weights[i] = w
		norm += w * w
	}

	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range weights {
			weights[i] /= norm
		}
	}

	return SparseVector{TermIDs: ids, Weights: weights}
}

// RowCount returns the number of rows in the feature matrix.
func (m *Model) RowCount() int {
	return len(m.Rows)
}

// SimilarTo returns the k most similar rows to the query row, scored by
// cosine similarity, sorted descending with ties broken by row index
// ascending. The query row itself is excluded. k larger than the catalog
// returns everything but the query row.
func (m *Model) SimilarTo(row, k int) []RowScore {
	if row < 0 || row >= len(m.Rows) || k <= 0 {
		return nil
	}

	query := m.Rows[row]
	scores := make([]RowScore, 0, len(m.Rows)-1)
	for other := range m.Rows {
		if other == row {
			continue
		}
		scores = append(scores, RowScore{Row: other, Score: query.Dot(m.Rows[other])})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Row < scores[j].Row
	})

	if len(scores) > k {
		scores = scores[:k]
	}
	return scores
}
