// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

package textfeat

import (
	"testing"

	"github.com/mithrangowda07/reelrank/core"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		name string
		item core.Item
		want string
	}{
		{
			name: "all fields in fixed order with director doubled",
			item: core.Item{
				Overview: "A cowboy doll is threatened",
				Genre:    "Animation, Comedy",
				Cast:     "Tom Hanks, Tim Allen",
				Director: "John Lasseter",
				Tagline:  "The adventure takes off",
				Language: "en",
			},
			want: "a cowboy doll is threatened animation, comedy tom hanks tim allen " +
				"john lasseter john lasseter the adventure takes off en",
		},
		{
			name: "cast truncated to five names",
			item: core.Item{
				Cast:     "A, B, C, D, E, F, G",
				Language: "en",
			},
			want: "a b c d e en",
		},
		{
			name: "whitespace runs collapse",
			item: core.Item{
				Overview: "  spaced   out\ttext\n",
				Language: "fr",
			},
			want: "spaced out text fr",
		},
		{
			name: "missing fields contribute nothing",
			item: core.Item{Title: "Unused", Language: "en"},
			want: "en",
		},
		{
			name: "empty item yields empty blob",
			item: core.Item{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Combine(tt.item)
			if got != tt.want {
				t.Errorf("Combine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCombineDeterministic(t *testing.T) {
	item := core.Item{
		Overview: "Deterministic text",
		Genre:    "Drama",
		Cast:     "One, Two, Three",
		Director: "Someone",
		Tagline:  "Same in, same out",
		Language: "en",
	}

	first := Combine(item)
	for i := 0; i < 10; i++ {
		if got := Combine(item); got != first {
			t.Fatalf("Combine() not deterministic: %q != %q", got, first)
		}
	}
}
