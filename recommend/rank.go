// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mithrangowda07/reelrank/content"
	"github.com/mithrangowda07/reelrank/core"
	"github.com/mithrangowda07/reelrank/metrics"
)

// Request asks for recommendations around a reference title.
type Request struct {
	// UserID identifies the requesting user for the collaborative
	// signal. Unknown users get neutral collaborative scores.
	UserID int

	// ReferenceTitle is matched against catalog titles, exact match
	// first, then substring, both case-insensitive.
	ReferenceTitle string

	// Alpha weights the content signal against the collaborative one:
	// 1 is pure content, 0 pure collaborative. Must lie in [0, 1].
	Alpha float64

	// TopN is the maximum number of results. Zero means the configured
	// default; anything else must lie in [1, MaxTopN].
	TopN int
}

// Response carries the ranked recommendations. An empty Items with a nil
// error means the reference title matched nothing.
type Response struct {
	// RequestID correlates the response with log events.
	RequestID string

	// Reference is the catalog item the title resolved to; zero when
	// nothing matched.
	Reference core.Item

	// Items is the ranked result, blended score descending.
	Items []core.ScoredItem
}

// Recommend scores the content-similar candidates of the reference title
// for the requesting user and returns the top results by blended score.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	metrics.RecommendRequests.Inc()
	start := time.Now()
	defer func() { metrics.RecommendDuration.Observe(time.Since(start).Seconds()) }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := e.bundle.Load()
	if b == nil {
		metrics.RecommendErrors.WithLabelValues("not_ready").Inc()
		return nil, fmt.Errorf("%w: no trained bundle loaded", core.ErrNotReady)
	}

	topN, err := e.validateRequest(req)
	if err != nil {
		metrics.RecommendErrors.WithLabelValues("invalid_parameter").Inc()
		return nil, err
	}

	requestID := uuid.NewString()
	log := e.log.With().Str("request_id", requestID).Logger()

	row, ok := b.Catalog.MatchTitle(req.ReferenceTitle)
	if !ok {
		metrics.RecommendEmptyResults.Inc()
		log.Debug().Str("title", req.ReferenceTitle).Msg("reference title matched nothing")
		return &Response{RequestID: requestID}, nil
	}

	candidates := b.Content.SimilarTo(row, e.cfg.CandidatePool)
	ranked := e.rank(b, req.UserID, req.Alpha, candidates)
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	log.Debug().
		Int("user_id", req.UserID).
		Str("title", req.ReferenceTitle).
		Float64("alpha", req.Alpha).
		Int("results", len(ranked)).
		Msg("recommendations served")

	return &Response{
		RequestID: requestID,
		Reference: b.Catalog.ItemAt(row),
		Items:     ranked,
	}, nil
}

// validateRequest rejects out-of-contract parameters before any
// computation and resolves the effective topN.
func (e *Engine) validateRequest(req Request) (int, error) {
	if math.IsNaN(req.Alpha) || req.Alpha < 0 || req.Alpha > 1 {
		return 0, fmt.Errorf("%w: alpha %g outside [0, 1]", core.ErrInvalidParameter, req.Alpha)
	}

	topN := req.TopN
	if topN == 0 {
		topN = e.cfg.DefaultTopN
	}
	if topN < 1 || topN > e.cfg.MaxTopN {
		return 0, fmt.Errorf("%w: topN %d outside [1, %d]", core.ErrInvalidParameter, req.TopN, e.cfg.MaxTopN)
	}
	return topN, nil
}

// scoredRow carries a candidate through scoring with its catalog row for
// deterministic tie-breaking.
type scoredRow struct {
	row     int
	content float64
	collab  float64
	blended float64
}

// rank blends the two signals over the candidate set. Content scores are
// min-max normalized across the candidates (all-equal collapses to 0);
// collaborative predictions are rescaled from the bundle's persisted
// rating range to [0, 1].
func (e *Engine) rank(b *Bundle, userID int, alpha float64, candidates []content.RowScore) []core.ScoredItem {
	if len(candidates) == 0 {
		return nil
	}

	contentScores := make([]float64, len(candidates))
	for i, c := range candidates {
		contentScores[i] = c.Score
	}
	minMaxNormalize(contentScores)

	span := b.Collab.RatingMax - b.Collab.RatingMin

	scored := make([]scoredRow, len(candidates))
	for i, c := range candidates {
		predicted := b.Collab.PredictedRating(userID, b.Catalog.IDOf(c.Row))
		collabScore := (predicted - b.Collab.RatingMin) / span

		scored[i] = scoredRow{
			row:     c.Row,
			content: contentScores[i],
			collab:  collabScore,
			blended: alpha*contentScores[i] + (1-alpha)*collabScore,
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].blended != scored[j].blended {
			return scored[i].blended > scored[j].blended
		}
		return scored[i].row < scored[j].row
	})

	out := make([]core.ScoredItem, len(scored))
	for i, s := range scored {
		out[i] = core.ScoredItem{
			Item:         b.Catalog.ItemAt(s.row),
			Score:        s.blended,
			ContentScore: s.content,
			CollabScore:  s.collab,
		}
	}
	return out
}

// minMaxNormalize rescales the values to [0, 1] in place. When every
// value is equal there is no spread to normalize over and all values
// become 0.
func minMaxNormalize(values []float64) {
	if len(values) == 0 {
		return
	}

	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	span := maxV - minV
	if span == 0 {
		for i := range values {
			values[i] = 0
		}
		return
	}
	for i := range values {
		values[i] = (values[i] - minV) / span
	}
}
