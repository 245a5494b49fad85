// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

package dataset

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mithrangowda07/reelrank/core"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestJSONItemSource(t *testing.T) {
	path := writeTempFile(t, "movies.json", `[
		{"movie_id": 1, "title": "Toy Story", "overview": "A cowboy doll.", "genre": "Animation", "cast": "Tom Hanks, Tim Allen", "director": "John Lasseter", "tagline": "The adventure takes off!", "original_language": "en", "rating": 8.3},
		{"movie_id": 2, "title": "The Dark Knight", "genre": "Action", "rating": 9.0}
	]`)

	items, err := NewJSONItemSource(path).Items(context.Background())
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].ID != 1 || items[0].Title != "Toy Story" || items[0].Director != "John Lasseter" {
		t.Errorf("first item = %+v", items[0])
	}
	if items[0].Language != "en" || items[0].Rating != 8.3 {
		t.Errorf("first item language/rating = %q/%g", items[0].Language, items[0].Rating)
	}
	if items[1].Overview != "" {
		t.Errorf("missing overview decoded as %q, want empty", items[1].Overview)
	}
}

func TestJSONItemSourceErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewJSONItemSource(filepath.Join(t.TempDir(), "absent.json")).Items(context.Background())
		if err == nil {
			t.Error("Items() expected error for missing file")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeTempFile(t, "bad.json", `{"not": "an array"`)
		_, err := NewJSONItemSource(path).Items(context.Background())
		if err == nil {
			t.Error("Items() expected error for malformed file")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		path := writeTempFile(t, "movies.json", `[]`)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := NewJSONItemSource(path).Items(ctx); err == nil {
			t.Error("Items() expected error for cancelled context")
		}
	})
}

func TestCSVRatingSource(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []core.Rating
	}{
		{
			name:    "with header and timestamp",
			content: "userId,movieId,rating,timestamp\n1,10,4.5,964982703\n2,20,3.0,964981247\n",
			want: []core.Rating{
				{UserID: 1, ItemID: 10, Value: 4.5},
				{UserID: 2, ItemID: 20, Value: 3.0},
			},
		},
		{
			name:    "without header or timestamp",
			content: "7,30,2.5\n",
			want:    []core.Rating{{UserID: 7, ItemID: 30, Value: 2.5}},
		},
		{
			name:    "header only",
			content: "userId,movieId,rating\n",
			want:    nil,
		},
		{
			name:    "header label is case-insensitive",
			content: "USERID,MOVIEID,RATING\n3,40,4.0\n",
			want:    []core.Rating{{UserID: 3, ItemID: 40, Value: 4.0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "ratings.csv", tt.content)
			got, err := NewCSVRatingSource(path).Ratings(context.Background())
			if err != nil {
				t.Fatalf("Ratings() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Ratings() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCSVRatingSourceErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "too few columns", content: "1,10\n"},
		{name: "bad user id", content: "x,10,4.5\n"},
		{name: "malformed first row is not mistaken for a header", content: "garbage,10,4.5\n1,20,3.0\n"},
		{name: "bad movie id", content: "1,x,4.5\n"},
		{name: "bad rating", content: "1,10,x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "ratings.csv", tt.content)
			if _, err := NewCSVRatingSource(path).Ratings(context.Background()); err == nil {
				t.Error("Ratings() expected error")
			}
		})
	}
}

func TestStaticSources(t *testing.T) {
	items := StaticItemSource{{ID: 1, Title: "Toy Story"}}
	got, err := items.Items(context.Background())
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("Items() = %v", got)
	}

	ratings := StaticRatingSource{{UserID: 1, ItemID: 1, Value: 5}}
	gotR, err := ratings.Ratings(context.Background())
	if err != nil {
		t.Fatalf("Ratings() error = %v", err)
	}
	if len(gotR) != 1 || gotR[0].Value != 5 {
		t.Errorf("Ratings() = %v", gotR)
	}
}
