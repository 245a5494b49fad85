// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

// Package reelrank is a hybrid movie recommendation engine combining
// TF-IDF content similarity with latent-factor collaborative filtering.
//
// The entry point is the recommend package: recommend.NewEngine trains a
// model bundle from item and rating sources, persists it through the
// storage package, and serves blended per-user recommendations around a
// reference title. Supporting packages:
//
//   - core: shared domain types, source interfaces, and error taxonomy
//   - catalog: item index with bidirectional id/row mapping and title lookup
//   - textfeat: item metadata to text blob assembly
//   - content: TF-IDF vectorization and cosine similarity
//   - collab: rating matrix factorization and rating prediction
//   - storage: checksummed artifact persistence
//   - dataset: JSON catalog and CSV ratings loaders
//   - config: layered configuration (defaults, YAML file, environment)
//   - logging, metrics: zerolog and Prometheus instrumentation
package reelrank
