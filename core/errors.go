// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for the engine's failure taxonomy. Callers match them
// with errors.Is; sites that raise them wrap with fmt.Errorf("...: %w").
var (
	// ErrInvalidCatalog indicates malformed catalog input at train time:
	// an empty item sequence or a repeated external id. Fatal for the
	// training run.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrInvalidParameter indicates a caller contract violation (alpha or
	// topN out of range). Rejected before any computation, never clamped.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotReady indicates no trained bundle is loaded. The serving layer
	// should report "not ready" rather than treat this as a crash.
	ErrNotReady = errors.New("no trained bundle loaded")
)

// TrainingError wraps any vectorization or factorization failure. Training
// errors surface to the caller undiminished and nothing is persisted.
type TrainingError struct {
	// Stage names the pipeline stage that failed ("catalog", "content",
	// "collaborative").
	Stage string

	// Err is the underlying cause.
	Err error
}

func (e *TrainingError) Error() string {
	return fmt.Sprintf("training failed at %s: %v", e.Stage, e.Err)
}

func (e *TrainingError) Unwrap() error {
	return e.Err
}

// MissingArtifactError indicates an incomplete bundle at load time. It
// names the artifact so operators can tell which resource is absent or
// unreadable. Fatal for that load attempt; nothing is partially loaded.
type MissingArtifactError struct {
	// Artifact is the storage name of the missing resource.
	Artifact string

	// Err is the underlying I/O or decode error, if any.
	Err error
}

func (e *MissingArtifactError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("missing artifact %q: %v", e.Artifact, e.Err)
	}
	return fmt.Sprintf("missing artifact %q", e.Artifact)
}

func (e *MissingArtifactError) Unwrap() error {
	return e.Err
}

// IsMissingArtifact reports whether err is (or wraps) a MissingArtifactError.
func IsMissingArtifact(err error) bool {
	var target *MissingArtifactError
	return errors.As(err, &target)
}
