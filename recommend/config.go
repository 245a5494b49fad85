// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

package recommend

import (
	"fmt"

	"github.com/mithrangowda07/reelrank/core"
)

// Config controls training and serving behavior.
type Config struct {
	// RatingMin and RatingMax bound the explicit rating scale used when
	// training. The trained model carries its own copy of the range, and
	// serving rescales predictions with that persisted copy.
	RatingMin float64 `koanf:"rating_min"`
	RatingMax float64 `koanf:"rating_max"`

	// NeutralRating is predicted for users or items the factorizer never
	// saw. Must lie within the rating range.
	NeutralRating float64 `koanf:"neutral_rating"`

	// Factors is the latent embedding rank for the factorizer.
	Factors int `koanf:"factors"`

	// SVDIterations is the number of subspace iteration rounds.
	SVDIterations int `koanf:"svd_iterations"`

	// Seed makes training deterministic: the same data and seed always
	// produce the same model.
	Seed int64 `koanf:"seed"`

	// MaxFeatures caps the TF-IDF vocabulary size.
	MaxFeatures int `koanf:"max_features"`

	// CandidatePool is how many content-similar items are scored per
	// recommendation request.
	CandidatePool int `koanf:"candidate_pool"`

	// DefaultTopN is used when a request leaves TopN unset; MaxTopN is
	// the largest TopN a request may ask for.
	DefaultTopN int `koanf:"default_top_n"`
	MaxTopN     int `koanf:"max_top_n"`

	// ModelDir is the directory holding persisted model artifacts.
	ModelDir string `koanf:"model_dir"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		RatingMin:     1,
		RatingMax:     5,
		NeutralRating: 2.5,
		Factors:       50,
		SVDIterations: 20,
		Seed:          42,
		MaxFeatures:   50000,
		CandidatePool: 100,
		DefaultTopN:   10,
		MaxTopN:       50,
		ModelDir:      "models",
	}
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.RatingMax <= c.RatingMin {
		return fmt.Errorf("%w: rating range [%g, %g] is empty", core.ErrInvalidParameter, c.RatingMin, c.RatingMax)
	}
	if c.NeutralRating < c.RatingMin || c.NeutralRating > c.RatingMax {
		return fmt.Errorf("%w: neutral rating %g outside range [%g, %g]", core.ErrInvalidParameter, c.NeutralRating, c.RatingMin, c.RatingMax)
	}
	if c.Factors < 1 {
		return fmt.Errorf("%w: factors must be at least 1, got %d", core.ErrInvalidParameter, c.Factors)
	}
	if c.SVDIterations < 1 {
		return fmt.Errorf("%w: svd iterations must be at least 1, got %d", core.ErrInvalidParameter, c.SVDIterations)
	}
	if c.MaxFeatures < 1 {
		return fmt.Errorf("%w: max features must be at least 1, got %d", core.ErrInvalidParameter, c.MaxFeatures)
	}
	if c.CandidatePool < 1 {
		return fmt.Errorf("%w: candidate pool must be at least 1, got %d", core.ErrInvalidParameter, c.CandidatePool)
	}
	if c.DefaultTopN < 1 {
		return fmt.Errorf("%w: default top n must be at least 1, got %d", core.ErrInvalidParameter, c.DefaultTopN)
	}
	if c.MaxTopN < c.DefaultTopN {
		return fmt.Errorf("%w: max top n %d below default top n %d", core.ErrInvalidParameter, c.MaxTopN, c.DefaultTopN)
	}
	if c.ModelDir == "" {
		return fmt.Errorf("%w: model dir must not be empty", core.ErrInvalidParameter)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c Config) Clone() Config {
	return c
}
