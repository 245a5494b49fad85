// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestTrainingErrorUnwrap(t *testing.T) {
	cause := errors.New("matrix is singular")
	err := &TrainingError{Stage: "collaborative", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("TrainingError does not unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "collaborative") {
		t.Errorf("Error() = %q, missing stage", err.Error())
	}
}

func TestMissingArtifactError(t *testing.T) {
	wrapped := fmt.Errorf("load bundle: %w", &MissingArtifactError{Artifact: "manifest"})

	if !IsMissingArtifact(wrapped) {
		t.Error("IsMissingArtifact() = false for wrapped error")
	}
	if IsMissingArtifact(errors.New("other")) {
		t.Error("IsMissingArtifact() = true for unrelated error")
	}

	withCause := &MissingArtifactError{Artifact: "catalog", Err: errors.New("permission denied")}
	if !strings.Contains(withCause.Error(), "catalog") || !strings.Contains(withCause.Error(), "permission denied") {
		t.Errorf("Error() = %q", withCause.Error())
	}
}

func TestSentinelMatching(t *testing.T) {
	err := fmt.Errorf("alpha 1.5 outside [0, 1]: %w", ErrInvalidParameter)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Error("wrapped sentinel does not match errors.Is")
	}
}
