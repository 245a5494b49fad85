// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

// Package recommend is the engine facade: it trains the content and
// collaborative models from item and rating sources, persists and
// reloads the resulting bundle, and serves blended recommendations.
//
// # Lifecycle
//
// A bundle is trained in batch, swapped in atomically, and served
// read-only. Serving never mutates a bundle; SetBundle and LoadBundle
// replace the live pointer while in-flight requests keep the snapshot
// they started with.
package recommend

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mithrangowda07/reelrank/catalog"
	"github.com/mithrangowda07/reelrank/collab"
	"github.com/mithrangowda07/reelrank/content"
	"github.com/mithrangowda07/reelrank/core"
	"github.com/mithrangowda07/reelrank/metrics"
	"github.com/mithrangowda07/reelrank/storage"
	"github.com/mithrangowda07/reelrank/textfeat"
)

// modelVersion is the persisted bundle format version.
const modelVersion = 1

// Bundle is one trained model generation: the catalog index, the
// content-similarity model, the collaborative model, and the manifest
// describing them. Bundles are immutable once built.
type Bundle struct {
	Catalog  *catalog.Index
	Content  *content.Model
	Collab   *collab.Model
	Manifest storage.Manifest
}

// Engine trains, persists, and serves recommendation bundles.
type Engine struct {
	cfg   Config
	log   zerolog.Logger
	store *storage.Store

	bundle atomic.Pointer[Bundle]
}

// NewEngine creates an engine with the given configuration. The model
// directory is created if it does not exist; no bundle is loaded.
func NewEngine(cfg Config, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}

	store, err := storage.NewStore(cfg.ModelDir)
	if err != nil {
		return nil, fmt.Errorf("open model store: %w", err)
	}

	return &Engine{
		cfg:   cfg,
		log:   logger.With().Str("component", "recommend").Logger(),
		store: store,
	}, nil
}

// Train builds a new bundle from the sources. The content and
// collaborative pipelines run concurrently; any failure aborts the whole
// run and nothing is persisted or swapped in. The returned bundle is not
// live until SetBundle or SaveBundle plus LoadBundle.
func (e *Engine) Train(ctx context.Context, items core.ItemSource, ratings core.RatingSource) (*Bundle, error) {
	runID := uuid.NewString()
	log := e.log.With().Str("run_id", runID).Logger()

	start := time.Now()
	log.Info().Msg("training started")

	rawItems, err := items.Items(ctx)
	if err != nil {
		metrics.TrainErrors.WithLabelValues("catalog").Inc()
		return nil, &core.TrainingError{Stage: "catalog", Err: err}
	}

	idx, err := catalog.Load(rawItems)
	if err != nil {
		metrics.TrainErrors.WithLabelValues("catalog").Inc()
		return nil, err
	}

	blobs := make([]string, idx.RowCount())
	for row := 0; row < idx.RowCount(); row++ {
		blobs[row] = textfeat.Combine(idx.ItemAt(row))
	}

	var (
		contentModel *content.Model
		collabModel  *collab.Model
		ratingCount  int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stageStart := time.Now()
		m, err := content.Build(blobs, e.cfg.MaxFeatures)
		if err != nil {
			metrics.TrainErrors.WithLabelValues("content").Inc()
			return &core.TrainingError{Stage: "content", Err: err}
		}
		metrics.ObserveTrainStage("content", stageStart)
		log.Debug().
			Int("rows", m.RowCount()).
			Int("vocabulary", len(m.Terms)).
			Msg("content model built")
		contentModel = m
		return nil
	})

	g.Go(func() error {
		stageStart := time.Now()
		rawRatings, err := ratings.Ratings(gctx)
		if err != nil {
			metrics.TrainErrors.WithLabelValues("collaborative").Inc()
			return &core.TrainingError{Stage: "collaborative", Err: err}
		}

		m, err := collab.Train(rawRatings, collab.Params{
			Factors:    e.cfg.Factors,
			Iterations: e.cfg.SVDIterations,
			Seed:       e.cfg.Seed,
			Neutral:    e.cfg.NeutralRating,
			RatingMin:  e.cfg.RatingMin,
			RatingMax:  e.cfg.RatingMax,
		})
		if err != nil {
			metrics.TrainErrors.WithLabelValues("collaborative").Inc()
			return &core.TrainingError{Stage: "collaborative", Err: err}
		}
		metrics.ObserveTrainStage("collaborative", stageStart)
		log.Debug().
			Int("users", m.UserCount()).
			Int("items", m.ItemCount()).
			Int("ratings", len(rawRatings)).
			Msg("collaborative model built")
		collabModel = m
		ratingCount = len(rawRatings)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	rank := 0
	if len(collabModel.ItemFactors) > 0 {
		rank = len(collabModel.ItemFactors[0])
	}

	bundle := &Bundle{
		Catalog: idx,
		Content: contentModel,
		Collab:  collabModel,
		Manifest: storage.Manifest{
			Version:          modelVersion,
			TrainedAt:        time.Now(),
			TrainingDuration: time.Since(start),
			ItemCount:        idx.RowCount(),
			UserCount:        collabModel.UserCount(),
			RatingCount:      ratingCount,
			VocabularySize:   len(contentModel.Terms),
			Factors:          rank,
			RatingMin:        e.cfg.RatingMin,
			RatingMax:        e.cfg.RatingMax,
			NeutralRating:    e.cfg.NeutralRating,
		},
	}

	metrics.ObserveTrainStage("total", start)
	log.Info().
		Dur("duration", time.Since(start)).
		Int("items", idx.RowCount()).
		Int("users", collabModel.UserCount()).
		Int("ratings", ratingCount).
		Int("vocabulary", len(contentModel.Terms)).
		Int("factors", rank).
		Msg("training complete")

	return bundle, nil
}

// SetBundle makes a bundle live. In-flight requests keep the previous
// bundle; new requests see the new one. A nil bundle takes the engine
// back to the not-ready state.
func (e *Engine) SetBundle(b *Bundle) {
	e.bundle.Store(b)

	if b == nil {
		metrics.BundleReady.Set(0)
		metrics.BundleItems.Set(0)
		metrics.BundleUsers.Set(0)
		return
	}
	metrics.BundleReady.Set(1)
	metrics.BundleItems.Set(float64(b.Manifest.ItemCount))
	metrics.BundleUsers.Set(float64(b.Manifest.UserCount))
}

// vocabularyArtifact is the persisted form of the TF-IDF vocabulary.
type vocabularyArtifact struct {
	Terms []string
	IDF   []float64
}

// factorsArtifact is the persisted form of one embedding matrix with the
// external ids its rows belong to.
type factorsArtifact struct {
	IDs     []int
	Factors [][]float64
}

// SaveBundle persists every artifact of the bundle to the model
// directory. Artifacts are written atomically and the manifest last, so
// an interrupted save never looks like a complete bundle.
func (e *Engine) SaveBundle(ctx context.Context, b *Bundle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b == nil {
		return fmt.Errorf("%w: nil bundle", core.ErrInvalidParameter)
	}

	checksums := make(map[string]string)

	save := func(name string, value any) error {
		sum, err := e.store.Save(name, value)
		if err != nil {
			return err
		}
		checksums[name] = sum
		return nil
	}

	if err := save(storage.ArtifactCatalog, b.Catalog.Items()); err != nil {
		return err
	}
	if err := save(storage.ArtifactVocabulary, vocabularyArtifact{Terms: b.Content.Terms, IDF: b.Content.IDF}); err != nil {
		return err
	}
	if err := save(storage.ArtifactContentMatrix, b.Content.Rows); err != nil {
		return err
	}
	if err := save(storage.ArtifactUserFactors, factorsArtifact{IDs: b.Collab.UserIDs, Factors: b.Collab.UserFactors}); err != nil {
		return err
	}
	if err := save(storage.ArtifactItemFactors, factorsArtifact{IDs: b.Collab.ItemIDs, Factors: b.Collab.ItemFactors}); err != nil {
		return err
	}

	manifest := b.Manifest
	manifest.Checksums = checksums
	if _, err := e.store.Save(storage.ArtifactManifest, manifest); err != nil {
		return err
	}

	e.log.Info().
		Str("dir", e.cfg.ModelDir).
		Int("items", manifest.ItemCount).
		Int("users", manifest.UserCount).
		Msg("bundle saved")
	return nil
}

// LoadBundle reads a complete bundle from the model directory and makes
// it live. A missing artifact surfaces as MissingArtifactError and
// leaves the current bundle untouched. Every artifact's checksum must
// match the manifest, so a bundle mixing artifacts from different
// training runs is rejected.
func (e *Engine) LoadBundle(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var manifest storage.Manifest
	if _, err := e.store.Load(storage.ArtifactManifest, &manifest); err != nil {
		return err
	}

	load := func(name string, target any) error {
		checksum, err := e.store.Load(name, target)
		if err != nil {
			return err
		}
		if want := manifest.Checksums[name]; checksum != want {
			return fmt.Errorf("artifact %s checksum %s does not match manifest %s: bundle mixes training runs", name, checksum, want)
		}
		return nil
	}

	var items []core.Item
	if err := load(storage.ArtifactCatalog, &items); err != nil {
		return err
	}
	idx, err := catalog.Load(items)
	if err != nil {
		return fmt.Errorf("rebuild catalog index: %w", err)
	}

	var vocab vocabularyArtifact
	if err := load(storage.ArtifactVocabulary, &vocab); err != nil {
		return err
	}

	var rows []content.SparseVector
	if err := load(storage.ArtifactContentMatrix, &rows); err != nil {
		return err
	}
	if len(rows) != idx.RowCount() {
		return fmt.Errorf("content matrix has %d rows, catalog has %d", len(rows), idx.RowCount())
	}

	var userFactors, itemFactors factorsArtifact
	if err := load(storage.ArtifactUserFactors, &userFactors); err != nil {
		return err
	}
	if err := load(storage.ArtifactItemFactors, &itemFactors); err != nil {
		return err
	}

	bundle := &Bundle{
		Catalog: idx,
		Content: &content.Model{Terms: vocab.Terms, IDF: vocab.IDF, Rows: rows},
		Collab: &collab.Model{
			UserIDs:     userFactors.IDs,
			ItemIDs:     itemFactors.IDs,
			UserIndex:   indexByID(userFactors.IDs),
			ItemIndex:   indexByID(itemFactors.IDs),
			UserFactors: userFactors.Factors,
			ItemFactors: itemFactors.Factors,
			Neutral:     manifest.NeutralRating,
			RatingMin:   manifest.RatingMin,
			RatingMax:   manifest.RatingMax,
		},
		Manifest: manifest,
	}

	e.SetBundle(bundle)
	e.log.Info().
		Str("dir", e.cfg.ModelDir).
		Int("version", manifest.Version).
		Time("trained_at", manifest.TrainedAt).
		Msg("bundle loaded")
	return nil
}

func indexByID(ids []int) map[int]int {
	index := make(map[int]int, len(ids))
	for row, id := range ids {
		index[id] = row
	}
	return index
}

// SearchByTitleSubstring returns up to limit catalog items whose title
// contains the query, case-insensitively, in catalog order. Without a
// live bundle it returns nothing.
func (e *Engine) SearchByTitleSubstring(query string, limit int) []core.Item {
	b := e.bundle.Load()
	if b == nil {
		return nil
	}
	return b.Catalog.SearchTitle(query, limit)
}

// Status describes the engine's readiness and the live bundle, plus
// which artifacts are absent from the model directory.
type Status struct {
	Ready            bool
	MissingArtifacts []string
	ModelVersion     int
	TrainedAt        time.Time
	ItemCount        int
	UserCount        int
}

// Status reports the current serving state.
func (e *Engine) Status() Status {
	st := Status{MissingArtifacts: e.store.Missing()}

	if b := e.bundle.Load(); b != nil {
		st.Ready = true
		st.ModelVersion = b.Manifest.Version
		st.TrainedAt = b.Manifest.TrainedAt
		st.ItemCount = b.Manifest.ItemCount
		st.UserCount = b.Manifest.UserCount
	}
	return st
}
