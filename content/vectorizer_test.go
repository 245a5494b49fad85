// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

package content

import (
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "words split on punctuation", text: "space, cowboys!", want: []string{"space", "cowboys"}},
		{name: "single-rune tokens dropped", text: "a b cd", want: []string{"cd"}},
		{name: "digits kept", text: "blade runner 2049", want: []string{"blade", "runner", "2049"}},
		{name: "empty", text: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTerms(t *testing.T) {
	// "the" is a stopword; bigrams form over the surviving tokens.
	got := terms("the dark knight")
	want := []string{"dark", "knight", "dark knight"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("terms() = %v, want %v", got, want)
	}
}

func TestBuildValidation(t *testing.T) {
	if _, err := Build(nil, 100); err == nil {
		t.Error("Build() with no blobs expected error")
	}
	if _, err := Build([]string{"some text"}, 0); err == nil {
		t.Error("Build() with zero max features expected error")
	}
}

func TestBuildDeterministic(t *testing.T) {
	blobs := []string{
		"cowboy doll rescue mission adventure",
		"masked vigilante crime city night",
		"dream heist layered subconscious city",
	}

	first, err := Build(blobs, 1000)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		again, err := Build(blobs, 1000)
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatal("Build() produced different models for identical input")
		}
	}
}

func TestBuildVocabularyCap(t *testing.T) {
	blobs := []string{
		"alpha beta gamma",
		"alpha beta",
		"alpha",
	}

	m, err := Build(blobs, 2)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(m.Terms) != 2 {
		t.Fatalf("len(Terms) = %d, want 2", len(m.Terms))
	}
	// "alpha" leads on document frequency; "alpha beta" and "beta" tie on
	// both frequencies and the bigram wins lexically.
	if m.Terms[0] != "alpha" || m.Terms[1] != "alpha beta" {
		t.Errorf(`Terms = %v, want [alpha "alpha beta"]`, m.Terms)
	}
}

func TestRowVectorsNormalized(t *testing.T) {
	blobs := []string{
		"cowboy doll rescue mission",
		"masked vigilante crime city",
		"",
	}

	m, err := Build(blobs, 1000)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for row, vec := range m.Rows {
		var norm float64
		for _, w := range vec.Weights {
			norm += w * w
		}
		norm = math.Sqrt(norm)

		if len(vec.TermIDs) == 0 {
			if norm != 0 {
				t.Errorf("row %d: empty vector has norm %f", row, norm)
			}
			continue
		}
		if math.Abs(norm-1) > 1e-9 {
			t.Errorf("row %d: norm = %f, want 1", row, norm)
		}
	}
}

func TestSimilarTo(t *testing.T) {
	blobs := []string{
		"cowboy doll toy rescue adventure",
		"cowboy doll toy roundup adventure",
		"masked vigilante crime gotham night",
		"",
	}

	m, err := Build(blobs, 1000)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	got := m.SimilarTo(0, 10)
	if len(got) != 3 {
		t.Fatalf("SimilarTo() returned %d rows, want 3", len(got))
	}

	for _, rs := range got {
		if rs.Row == 0 {
			t.Error("SimilarTo() returned the query row")
		}
		if rs.Score < 0 || rs.Score > 1 {
			t.Errorf("score %f outside [0, 1]", rs.Score)
		}
	}

	// Row 1 shares most terms with row 0 and must rank first.
	if got[0].Row != 1 {
		t.Errorf("top row = %d, want 1", got[0].Row)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("scores not descending at %d: %f > %f", i, got[i].Score, got[i-1].Score)
		}
	}
}

func TestSimilarToZeroVector(t *testing.T) {
	// An all-stopword blob vectorizes to zero; its similarity to anything
	// is defined as 0.
	blobs := []string{
		"the and of",
		"cowboy doll toy",
		"masked vigilante crime",
	}

	m, err := Build(blobs, 1000)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	got := m.SimilarTo(0, 10)
	for _, rs := range got {
		if rs.Score != 0 {
			t.Errorf("row %d: score = %f, want 0 for zero query vector", rs.Row, rs.Score)
		}
	}

	// Equal scores fall back to ascending row order.
	if len(got) == 2 && (got[0].Row != 1 || got[1].Row != 2) {
		t.Errorf("tie order = [%d %d], want [1 2]", got[0].Row, got[1].Row)
	}
}

func TestSimilarToBounds(t *testing.T) {
	m, err := Build([]string{"cowboy doll", "masked vigilante"}, 1000)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := m.SimilarTo(-1, 5); got != nil {
		t.Errorf("SimilarTo(-1) = %v, want nil", got)
	}
	if got := m.SimilarTo(5, 5); got != nil {
		t.Errorf("SimilarTo(out of range) = %v, want nil", got)
	}
	if got := m.SimilarTo(0, 0); got != nil {
		t.Errorf("SimilarTo(k=0) = %v, want nil", got)
	}
	if got := m.SimilarTo(0, 1); len(got) != 1 {
		t.Errorf("SimilarTo(k=1) returned %d rows, want 1", len(got))
	}
}
