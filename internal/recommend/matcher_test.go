// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package recommend

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"
)

// testRows mirrors a few rows of the standard crop dataset.
func testRows() []ReferenceRow {
	return []ReferenceRow{
		{Crop: "rice", N: 90, P: 42, K: 43, Temperature: 20.8, Humidity: 82, PH: 6.5, Rainfall: 202.9},
		{Crop: "rice", N: 85, P: 58, K: 41, Temperature: 21.8, Humidity: 80.3, PH: 7.0, Rainfall: 226.7},
		{Crop: "maize", N: 71, P: 54, K: 16, Temperature: 22.6, Humidity: 63.7, PH: 5.7, Rainfall: 87.8},
		{Crop: "chickpea", N: 40, P: 72, K: 77, Temperature: 17.0, Humidity: 16.9, PH: 7.5, Rainfall: 88.6},
		{Crop: "jute", N: 78, P: 46, K: 42, Temperature: 24.9, Humidity: 79.9, PH: 6.9, Rainfall: 178.9},
		{Crop: "coffee", N: 101, P: 28, K: 29, Temperature: 25.5, Humidity: 58.9, PH: 6.9, Rainfall: 158.1},
	}
}

func riceVector() FeatureVector {
	return FeatureVector{N: 90, P: 42, K: 43, Temperature: 20.8, Humidity: 82, PH: 6.5, Rainfall: 202.9}
}

func TestScore(t *testing.T) {
	t.Parallel()

	r := ReferenceRow{Crop: "x", N: 10, P: 10, K: 10, Temperature: 10, Humidity: 10, PH: 5, Rainfall: 100}

	tests := []struct {
		name string
		f    FeatureVector
		want float64
	}{
		{"identical", FeatureVector{N: 10, P: 10, K: 10, Temperature: 10, Humidity: 10, PH: 5, Rainfall: 100}, 0},
		{"unit weights", FeatureVector{N: 11, P: 8, K: 10, Temperature: 13, Humidity: 6, PH: 5, Rainfall: 100}, 1 + 2 + 3 + 4},
		{"ph weighted by five", FeatureVector{N: 10, P: 10, K: 10, Temperature: 10, Humidity: 10, PH: 6, Rainfall: 100}, 5},
		{"rainfall halved", FeatureVector{N: 10, P: 10, K: 10, Temperature: 10, Humidity: 10, PH: 5, Rainfall: 90}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Score(r, tt.f); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore_SymmetricInSign(t *testing.T) {
	t.Parallel()

	r := testRows()[2]
	f := riceVector()

	// Swap the roles of row and query.
	swapped := ReferenceRow{Crop: r.Crop, N: f.N, P: f.P, K: f.K, Temperature: f.Temperature, Humidity: f.Humidity, PH: f.PH, Rainfall: f.Rainfall}
	swappedQuery := FeatureVector{N: r.N, P: r.P, K: r.K, Temperature: r.Temperature, Humidity: r.Humidity, PH: r.PH, Rainfall: r.Rainfall}

	if a, b := Score(r, f), Score(swapped, swappedQuery); math.Abs(a-b) > 1e-9 {
		t.Errorf("Score not symmetric: %v vs %v", a, b)
	}
}

func TestMatcher_Rank_ExactMatchFirst(t *testing.T) {
	t.Parallel()

	m := NewMatcher(NewTable(testRows()), nil)
	ranked, err := m.Rank(context.Background(), riceVector())
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}

	if ranked[0].Crop != "rice" {
		t.Fatalf("top crop = %q, want rice", ranked[0].Crop)
	}
	if ranked[0].Score != 0 {
		t.Errorf("top score = %v, want 0", ranked[0].Score)
	}
	if ranked[0].Index != 0 {
		t.Errorf("top index = %d, want 0", ranked[0].Index)
	}
}

func TestMatcher_Rank_DistinctOrderedTopK(t *testing.T) {
	t.Parallel()

	m := NewMatcher(NewTable(testRows()), nil)
	ranked, err := m.Rank(context.Background(), riceVector())
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}

	if len(ranked) != TopK {
		t.Fatalf("len(Rank()) = %d, want %d", len(ranked), TopK)
	}

	seen := map[string]bool{}
	for i, s := range ranked {
		if seen[s.Crop] {
			t.Errorf("duplicate crop %q in result", s.Crop)
		}
		seen[s.Crop] = true
		if i > 0 && s.Score < ranked[i-1].Score {
			t.Errorf("scores not non-decreasing at %d: %v < %v", i, s.Score, ranked[i-1].Score)
		}
	}

	// The second rice row is closer than most rows but must be skipped.
	want := []string{"rice", "jute", "coffee"}
	for i, crop := range want {
		if ranked[i].Crop != crop {
			t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].Crop, crop)
		}
	}
}

func TestMatcher_Rank_FewerCropsThanTopK(t *testing.T) {
	t.Parallel()

	rows := []ReferenceRow{
		{Crop: "rice", N: 1},
		{Crop: "rice", N: 2},
		{Crop: "maize", N: 50},
	}
	ranked, err := NewMatcher(NewTable(rows), nil).Rank(context.Background(), FeatureVector{N: 0})
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(ranked) != 2 || ranked[0].Crop != "rice" || ranked[1].Crop != "maize" {
		t.Errorf("Rank() = %+v, want rice then maize", ranked)
	}
	if ranked[0].Index != 0 {
		t.Errorf("rice should be represented by its best row, got index %d", ranked[0].Index)
	}
}

func TestMatcher_Rank_TiesKeepTableOrder(t *testing.T) {
	t.Parallel()

	rows := []ReferenceRow{
		{Crop: "b", N: 10},
		{Crop: "a", N: -10},
		{Crop: "c", N: 10},
		{Crop: "d", N: 0},
	}
	ranked, err := NewMatcher(NewTable(rows), nil).Rank(context.Background(), FeatureVector{})
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}

	want := []string{"d", "b", "a"}
	for i, crop := range want {
		if ranked[i].Crop != crop {
			t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].Crop, crop)
		}
	}
}

func TestMatcher_Rank_EmptyTable(t *testing.T) {
	t.Parallel()

	for _, table := range []*Table{nil, NewTable(nil)} {
		_, err := NewMatcher(table, nil).Rank(context.Background(), riceVector())
		if !errors.Is(err, ErrNoMatches) {
			t.Errorf("Rank() error = %v, want ErrNoMatches", err)
		}
	}
}

func TestMatcher_Rank_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMatcher(NewTable(testRows()), nil).Rank(ctx, riceVector())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Rank() error = %v, want context.Canceled", err)
	}
}

func TestMatcher_Recommend_Enriches(t *testing.T) {
	t.Parallel()

	rows := append(testRows(), ReferenceRow{Crop: "dragonfruit", N: 90, P: 42, K: 43, Temperature: 20.8, Humidity: 82, PH: 6.5, Rainfall: 203})
	recs, err := NewMatcher(NewTable(rows), DefaultCatalog()).Recommend(context.Background(), riceVector())
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if recs[0].Crop != "rice" || recs[0].Image != defaultImages["rice"] || recs[0].Description != defaultDescriptions["rice"] {
		t.Errorf("recs[0] = %+v, want enriched rice", recs[0])
	}
	if recs[1].Crop != "dragonfruit" {
		t.Fatalf("recs[1].Crop = %q, want dragonfruit", recs[1].Crop)
	}
	if recs[1].Image != FallbackImage || recs[1].Description != FallbackDescription {
		t.Errorf("unknown crop should use fallbacks, got %+v", recs[1])
	}
}

func TestMatcher_DoesNotMutateTable(t *testing.T) {
	t.Parallel()

	table := NewTable(testRows())
	before := table.Rows()
	m := NewMatcher(table, nil)

	if _, err := m.Rank(context.Background(), FeatureVector{N: 40, P: 72, K: 77}); err != nil {
		t.Fatalf("Rank() error = %v", err)
	}

	after := table.Rows()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("row %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestMatcher_ConcurrentRank(t *testing.T) {
	t.Parallel()

	m := NewMatcher(NewTable(testRows()), nil)
	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f := riceVector()
			f.N += float64(i)
			if _, err := m.Rank(context.Background(), f); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent Rank() error = %v", err)
	}
}

type recordedRank struct {
	outcome string
	rows    int
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []recordedRank
}

func (r *fakeRecorder) ObserveRank(outcome string, rows int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, recordedRank{outcome: outcome, rows: rows})
}

func TestMatcher_Recorder(t *testing.T) {
	t.Parallel()

	rec := &fakeRecorder{}
	m := NewMatcher(NewTable(testRows()), nil, WithRecorder(rec))
	_, _ = m.Rank(context.Background(), riceVector())

	empty := NewMatcher(NewTable(nil), nil, WithRecorder(rec))
	_, _ = empty.Rank(context.Background(), riceVector())

	want := []recordedRank{{OutcomeSuccess, len(testRows())}, {OutcomeNoMatches, 0}}
	if len(rec.calls) != len(want) {
		t.Fatalf("recorded %d calls, want %d", len(rec.calls), len(want))
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, rec.calls[i], want[i])
		}
	}
}
