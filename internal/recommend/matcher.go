// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Outcome labels passed to a Recorder.
const (
	OutcomeSuccess   = "success"
	OutcomeNoMatches = "no_matches"
	OutcomeCanceled  = "canceled"
)

// Recorder receives one observation per Rank call.
// Implementations must be safe for concurrent use.
type Recorder interface {
	ObserveRank(outcome string, rows int, elapsed time.Duration)
}

// Score returns the weighted L1 distance between a reference row and a
// query using DefaultWeights. Lower is closer; identical inputs score 0.
func Score(r ReferenceRow, f FeatureVector) float64 {
	return DefaultWeights.Score(r, f)
}

// Score returns the weighted L1 distance between r and f.
func (w Weights) Score(r ReferenceRow, f FeatureVector) float64 {
	return math.Abs(r.N-f.N)*w.N +
		math.Abs(r.P-f.P)*w.P +
		math.Abs(r.K-f.K)*w.K +
		math.Abs(r.Temperature-f.Temperature)*w.Temperature +
		math.Abs(r.Humidity-f.Humidity)*w.Humidity +
		math.Abs(r.PH-f.PH)*w.PH +
		math.Abs(r.Rainfall-f.Rainfall)*w.Rainfall
}

// Matcher ranks reference rows against queries. It holds no per-request
// state and is safe for concurrent use.
type Matcher struct {
	table    *Table
	catalog  *Catalog
	weights  Weights
	topK     int
	recorder Recorder
	logger   zerolog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(m *Matcher) { m.recorder = r }
}

// WithLogger sets the matcher's logger.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Matcher) { m.logger = logger.With().Str("component", "matcher").Logger() }
}

// NewMatcher creates a Matcher over table. A nil catalog uses DefaultCatalog.
func NewMatcher(table *Table, catalog *Catalog, opts ...Option) *Matcher {
	if table == nil {
		table = NewTable(nil)
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	m := &Matcher{
		table:   table,
		catalog: catalog,
		weights: DefaultWeights,
		topK:    TopK,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Table returns the reference table the matcher scores against.
func (m *Matcher) Table() *Table {
	return m.table
}

// Catalog returns the crop catalog used for enrichment.
func (m *Matcher) Catalog() *Catalog {
	return m.catalog
}

// Rank scores every row against f and returns the best-scoring row of each
// of the first TopK distinct crops, ascending by score. Rows with equal
// scores keep their table order. An empty table yields ErrNoMatches.
func (m *Matcher) Rank(ctx context.Context, f FeatureVector) ([]ScoredRow, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		m.observe(OutcomeCanceled, start)
		return nil, fmt.Errorf("rank: %w", err)
	}

	scored := make([]ScoredRow, m.table.Len())
	for i := range scored {
		r := m.table.Row(i)
		scored[i] = ScoredRow{ReferenceRow: r, Score: m.weights.Score(r, f), Index: i}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score < scored[j].Score
	})

	top := make([]ScoredRow, 0, m.topK)
	seen := make(map[string]struct{}, m.topK)
	for _, s := range scored {
		if len(top) == m.topK {
			break
		}
		if _, dup := seen[s.Crop]; dup {
			continue
		}
		seen[s.Crop] = struct{}{}
		top = append(top, s)
	}

	if len(top) == 0 {
		m.observe(OutcomeNoMatches, start)
		return nil, ErrNoMatches
	}

	m.observe(OutcomeSuccess, start)
	m.logger.Debug().
		Int("rows", len(scored)).
		Str("best", top[0].Crop).
		Float64("best_score", top[0].Score).
		Msg("ranked reference table")

	return top, nil
}

// Recommend ranks f and resolves each crop's image and description.
func (m *Matcher) Recommend(ctx context.Context, f FeatureVector) ([]Recommendation, error) {
	ranked, err := m.Rank(ctx, f)
	if err != nil {
		return nil, err
	}

	recs := make([]Recommendation, len(ranked))
	for i, s := range ranked {
		recs[i] = m.catalog.Recommendation(s.Crop)
	}
	return recs, nil
}

func (m *Matcher) observe(outcome string, start time.Time) {
	if m.recorder != nil {
		m.recorder.ObserveRank(outcome, m.table.Len(), time.Since(start))
	}
}
