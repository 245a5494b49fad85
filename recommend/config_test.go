// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

package recommend

import (
	"errors"
	"testing"

	"github.com/mithrangowda07/reelrank/core"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty rating range", mutate: func(c *Config) { c.RatingMin, c.RatingMax = 5, 1 }},
		{name: "neutral outside range", mutate: func(c *Config) { c.NeutralRating = 9 }},
		{name: "zero factors", mutate: func(c *Config) { c.Factors = 0 }},
		{name: "zero iterations", mutate: func(c *Config) { c.SVDIterations = 0 }},
		{name: "zero max features", mutate: func(c *Config) { c.MaxFeatures = 0 }},
		{name: "zero candidate pool", mutate: func(c *Config) { c.CandidatePool = 0 }},
		{name: "zero default top n", mutate: func(c *Config) { c.DefaultTopN = 0 }},
		{name: "max below default top n", mutate: func(c *Config) { c.MaxTopN = 5 }},
		{name: "empty model dir", mutate: func(c *Config) { c.ModelDir = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, core.ErrInvalidParameter) {
				t.Errorf("Validate() error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Factors = 7

	if cfg.Factors == 7 {
		t.Error("Clone() shares state with original")
	}
}

func TestMinMaxNormalize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   []float64
	}{
		{name: "spread", values: []float64{1, 3, 5}, want: []float64{0, 0.5, 1}},
		{name: "all equal", values: []float64{2, 2, 2}, want: []float64{0, 0, 0}},
		{name: "single value", values: []float64{4}, want: []float64{0}},
		{name: "empty", values: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minMaxNormalize(tt.values)
			for i := range tt.want {
				if tt.values[i] != tt.want[i] {
					t.Errorf("values[%d] = %g, want %g", i, tt.values[i], tt.want[i])
					break
				}
			}
		})
	}
}
