// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

// Package storage persists trained model artifacts to disk.
//
// Each artifact (catalog, vocabulary, content matrix, factor matrices,
// manifest) is stored in its own file, gob-encoded, gzip-compressed, and
// wrapped with a SHA-256 checksum that is verified on load. Writes go to
// a temporary file first and are renamed into place, so a crashed save
// never leaves a truncated artifact behind.
package storage

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mithrangowda07/reelrank/core"
)

// Artifact names. Every trained bundle persists exactly this set.
const (
	ArtifactCatalog       = "catalog"
	ArtifactVocabulary    = "vocabulary"
	ArtifactContentMatrix = "content_matrix"
	ArtifactUserFactors   = "user_factors"
	ArtifactItemFactors   = "item_factors"
	ArtifactManifest      = "manifest"
)

// ArtifactNames returns all artifact names in save order. The manifest is
// last so its presence marks a complete bundle.
func ArtifactNames() []string {
	return []string{
		ArtifactCatalog,
		ArtifactVocabulary,
		ArtifactContentMatrix,
		ArtifactUserFactors,
		ArtifactItemFactors,
		ArtifactManifest,
	}
}

// Manifest describes a persisted bundle: the format version, when it was
// trained, on how much data, the rating range it assumed, and the
// checksums of the sibling artifacts.
type Manifest struct {
	Version int

	TrainedAt        time.Time
	TrainingDuration time.Duration

	ItemCount   int
	UserCount   int
	RatingCount int

	VocabularySize int
	Factors        int

	RatingMin     float64
	RatingMax     float64
	NeutralRating float64

	// Checksums maps artifact name to the SHA-256 hex checksum recorded
	// when the artifact was saved.
	Checksums map[string]string
}

// artifactFile is the on-disk envelope for one artifact.
type artifactFile struct {
	Name           string
	SavedAt        time.Time
	Checksum       string
	CompressedData []byte
}

// Store reads and writes artifacts under a single base directory.
type Store struct {
	baseDir string
	mu      sync.Mutex
}

// NewStore opens a store at baseDir, creating the directory if needed.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Path returns the file path for an artifact.
func (s *Store) Path(name string) string {
	return filepath.Join(s.baseDir, name+".gob.gz")
}

// Save persists one artifact and returns the SHA-256 hex checksum of its
// uncompressed encoding. The write is atomic: a temporary file in the
// same directory is renamed over the final path.
func (s *Store) Save(name string, value any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var raw bytes.Buffer
	if err := gob.NewEncoder(&raw).Encode(value); err != nil {
		return "", fmt.Errorf("encode artifact %s: %w", name, err)
	}

	hash := sha256.Sum256(raw.Bytes())
	checksum := hex.EncodeToString(hash[:])

	var compressed bytes.Buffer
	gzw := gzip.NewWriter(&compressed)
	if _, err := gzw.Write(raw.Bytes()); err != nil {
		return "", fmt.Errorf("compress artifact %s: %w", name, err)
	}
	if err := gzw.Close(); err != nil {
		return "", fmt.Errorf("finalize compression for %s: %w", name, err)
	}

	env := artifactFile{
		Name:           name,
		SavedAt:        time.Now(),
		Checksum:       checksum,
		CompressedData: compressed.Bytes(),
	}

	tmp, err := os.CreateTemp(s.baseDir, name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temporary file for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if err := gob.NewEncoder(tmp).Encode(env); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("write artifact %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("close artifact %s: %w", name, err)
	}

	if err := os.Rename(tmpName, s.Path(name)); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("commit artifact %s: %w", name, err)
	}

	return checksum, nil
}

// Load reads one artifact into target, verifying its checksum, and
// returns that checksum so callers can cross-check it against the
// manifest. A missing file is reported as a MissingArtifactError so
// callers can distinguish an untrained store from a corrupt one.
func (s *Store) Load(name string, target any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, checksum, err := s.readArtifact(name)
	if err != nil {
		return "", err
	}

	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(target); err != nil {
		return "", fmt.Errorf("decode artifact %s: %w", name, err)
	}
	return checksum, nil
}

// readArtifact opens, decompresses, and checksum-verifies one artifact,
// returning its raw gob payload and the verified checksum.
func (s *Store) readArtifact(name string) ([]byte, string, error) {
	f, err := os.Open(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", &core.MissingArtifactError{Artifact: name, Err: err}
		}
		return nil, "", fmt.Errorf("open artifact %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	var env artifactFile
	if err := gob.NewDecoder(f).Decode(&env); err != nil {
		return nil, "", fmt.Errorf("read artifact %s: %w", name, err)
	}

	gzr, err := gzip.NewReader(bytes.NewReader(env.CompressedData))
	if err != nil {
		return nil, "", fmt.Errorf("decompress artifact %s: %w", name, err)
	}
	defer func() { _ = gzr.Close() }()

	raw, err := io.ReadAll(gzr)
	if err != nil {
		return nil, "", fmt.Errorf("read decompressed artifact %s: %w", name, err)
	}

	hash := sha256.Sum256(raw)
	checksum := hex.EncodeToString(hash[:])
	if checksum != env.Checksum {
		return nil, "", fmt.Errorf("artifact %s checksum mismatch: expected %s, got %s", name, env.Checksum, checksum)
	}
	return raw, checksum, nil
}

// Verify checks that every artifact is present, readable, and matches
// its checksum, without decoding payloads into model types. Failures are
// keyed by artifact name; an empty map means the bundle is healthy.
func (s *Store) Verify() map[string]error {
	s.mu.Lock()
	defer s.mu.Unlock()

	problems := make(map[string]error)
	for _, name := range ArtifactNames() {
		if _, _, err := s.readArtifact(name); err != nil {
			problems[name] = err
		}
	}
	return problems
}

// Missing returns the names of artifacts that are absent on disk, in
// save order. An empty result means a complete bundle is present.
func (s *Store) Missing() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var missing []string
	for _, name := range ArtifactNames() {
		if _, err := os.Stat(s.Path(name)); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}
