// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cropwise/internal/contact"
	"github.com/tomtom215/cropwise/internal/metrics"
	"github.com/tomtom215/cropwise/internal/recommend"
)

var testRows = []recommend.ReferenceRow{
	{Crop: "rice", N: 90, P: 42, K: 43, Temperature: 20.8, Humidity: 82, PH: 6.5, Rainfall: 202.9},
	{Crop: "rice", N: 85, P: 58, K: 41, Temperature: 21.7, Humidity: 80.3, PH: 7.0, Rainfall: 226.6},
	{Crop: "maize", N: 71, P: 54, K: 16, Temperature: 22.6, Humidity: 63.7, PH: 5.7, Rainfall: 87.8},
	{Crop: "chickpea", N: 40, P: 72, K: 77, Temperature: 17.0, Humidity: 16.9, PH: 7.5, Rainfall: 88.6},
	{Crop: "coffee", N: 91, P: 21, K: 26, Temperature: 26.3, Humidity: 57.4, PH: 7.3, Rainfall: 191.7},
}

// riceBody matches the first rice row exactly.
const riceBody = `{"N":90,"P":42,"K":43,"temperature":20.8,"humidity":82,"ph":6.5,"rainfall":202.9}`

type fakePublisher struct {
	mu   sync.Mutex
	msgs []contact.Message
	err  error
}

func (p *fakePublisher) Publish(_ context.Context, m contact.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, m)
	return p.err
}

func newTestHandler(rows []recommend.ReferenceRow, opts ...recommend.Option) *Handler {
	m := recommend.NewMatcher(recommend.NewTable(rows), nil, opts...)
	return NewHandler(m, HandlerConfig{})
}

func newTestServer(t *testing.T, h *Handler, mw *ChiMiddlewareConfig) http.Handler {
	t.Helper()
	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.RateLimitDisabled = true
	}
	return NewRouter(h, RouterConfig{Middleware: mw, MetricsEnabled: true}).Handler()
}

func do(t *testing.T, srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return resp.Error
}

func TestHome(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestServer(t, newTestHandler(testRows), nil), http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != HomeBanner {
		t.Errorf("body = %q, want %q", rec.Body.String(), HomeBanner)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	t.Run("live", func(t *testing.T) {
		t.Parallel()
		rec := do(t, newTestServer(t, NewHandler(nil, HandlerConfig{}), nil), http.MethodGet, "/health/live", "")
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("not ready without a matcher", func(t *testing.T) {
		t.Parallel()
		rec := do(t, newTestServer(t, NewHandler(nil, HandlerConfig{}), nil), http.MethodGet, "/health/ready", "")
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", rec.Code)
		}
	})

	t.Run("ready reports table size", func(t *testing.T) {
		t.Parallel()
		h := NewHandler(nil, HandlerConfig{})
		h.SetMatcher(recommend.NewMatcher(recommend.NewTable(testRows), nil))

		rec := do(t, newTestServer(t, h, nil), http.MethodGet, "/health/ready", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var resp ReadyResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Rows != 5 || resp.Crops != 4 {
			t.Errorf("ready = %+v, want 5 rows and 4 crops", resp)
		}
	})
}

func TestPredict(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestHandler(testRows), nil)
	catalog := recommend.DefaultCatalog()

	tests := []struct {
		name string
		body string
	}{
		{"json numbers", riceBody},
		{"numeric strings", `{"N":"90","P":"42","K":"43","temperature":"20.8","humidity":"82","ph":"6.5","rainfall":"202.9"}`},
		{"extra fields ignored", `{"N":90,"P":42,"K":43,"temperature":20.8,"humidity":82,"ph":6.5,"rainfall":202.9,"farm":"north"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, srv, http.MethodPost, "/predict", tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}

			var resp PredictResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}

			want := []string{"rice", "coffee", "maize"}
			if len(resp.Recommendations) != len(want) {
				t.Fatalf("got %d recommendations, want %d", len(resp.Recommendations), len(want))
			}
			for i, crop := range want {
				got := resp.Recommendations[i]
				if got.Crop != crop {
					t.Errorf("recommendation %d = %q, want %q", i, got.Crop, crop)
				}
				if got.Image != catalog.Image(crop) || got.Description != catalog.Description(crop) {
					t.Errorf("recommendation %d metadata = %+v", i, got)
				}
			}
		})
	}
}

func TestPredict_UnknownCropUsesFallbacks(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestHandler([]recommend.ReferenceRow{{Crop: "quinoa", N: 1}}), nil)
	rec := do(t, srv, http.MethodPost, "/predict", riceBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp PredictResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Recommendations) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(resp.Recommendations))
	}
	got := resp.Recommendations[0]
	if got.Image != recommend.FallbackImage || got.Description != recommend.FallbackDescription {
		t.Errorf("fallbacks not applied: %+v", got)
	}
}

func TestPredict_Errors(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestHandler(testRows), nil)

	tests := []struct {
		name    string
		body    string
		wantMsg []string
	}{
		{
			name:    "missing ph",
			body:    `{"N":90,"P":42,"K":43,"temperature":20.8,"humidity":82,"rainfall":202.9}`,
			wantMsg: []string{"ph is required"},
		},
		{
			name:    "non-numeric values enumerated",
			body:    `{"N":"lots","P":42,"K":true,"temperature":20.8,"humidity":82,"ph":6.5,"rainfall":202.9}`,
			wantMsg: []string{"N must be a number", "K must be a number"},
		},
		{
			name:    "empty object",
			body:    `{}`,
			wantMsg: []string{"N is required", "rainfall is required"},
		},
		{
			name:    "null field",
			body:    `{"N":null,"P":42,"K":43,"temperature":20.8,"humidity":82,"ph":6.5,"rainfall":202.9}`,
			wantMsg: []string{"N is required"},
		},
		{
			name:    "non-finite string",
			body:    `{"N":"NaN","P":42,"K":43,"temperature":20.8,"humidity":82,"ph":"Inf","rainfall":202.9}`,
			wantMsg: []string{"N must be a number", "ph must be a number"},
		},
		{
			name:    "malformed json",
			body:    `{"N":90,`,
			wantMsg: []string{"invalid request body"},
		},
		{
			name:    "array body",
			body:    `[1,2,3]`,
			wantMsg: []string{"invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, srv, http.MethodPost, "/predict", tt.body)
			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500; body %s", rec.Code, rec.Body.String())
			}
			msg := decodeError(t, rec)
			for _, want := range tt.wantMsg {
				if !strings.Contains(msg, want) {
					t.Errorf("error %q should contain %q", msg, want)
				}
			}
		})
	}
}

func TestPredict_MultipleFieldErrorsJoined(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestHandler(testRows), nil)
	rec := do(t, srv, http.MethodPost, "/predict", `{"N":90,"P":42,"K":43,"temperature":20.8,"humidity":82}`)

	if got := decodeError(t, rec); got != "ph is required; rainfall is required" {
		t.Errorf("error = %q", got)
	}
}

func TestPredict_EmptyTable(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestHandler(nil), nil)
	rec := do(t, srv, http.MethodPost, "/predict", riceBody)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"error":"No matching crops found."}` {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestPredict_BodyTooLarge(t *testing.T) {
	t.Parallel()

	h := NewHandler(recommend.NewMatcher(recommend.NewTable(testRows), nil), HandlerConfig{MaxBodyBytes: 16})
	rec := do(t, newTestServer(t, h, nil), http.MethodPost, "/predict", riceBody)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestPredict_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestServer(t, newTestHandler(testRows), nil), http.MethodGet, "/predict", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestContact(t *testing.T) {
	t.Parallel()

	pub := &fakePublisher{}
	h := newTestHandler(testRows)
	h.SetContactPublisher(pub)
	srv := newTestServer(t, h, nil)

	rec := do(t, srv, http.MethodPost, "/contact", `{"name":"A","email":"a@b.com","message":"hi"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"status":"Message received successfully!"}` {
		t.Errorf("body = %s", rec.Body.String())
	}

	if len(pub.msgs) != 1 {
		t.Fatalf("published %d messages, want 1", len(pub.msgs))
	}
	if got := pub.msgs[0]; got.Name != "A" || got.Email != "a@b.com" || got.Body != "hi" {
		t.Errorf("published %+v", got)
	}
}

func TestContact_AcceptsAnyObject(t *testing.T) {
	t.Parallel()

	pub := &fakePublisher{err: errors.New("relay down")}
	h := newTestHandler(testRows)
	h.SetContactPublisher(pub)
	srv := newTestServer(t, h, nil)

	bodies := []string{
		`{}`,
		`{"name":42,"email":null,"message":["a","b"]}`,
		`{"name":"line\nbreak","unrelated":true}`,
	}
	for _, body := range bodies {
		rec := do(t, srv, http.MethodPost, "/contact", body)
		if rec.Code != http.StatusOK {
			t.Errorf("body %s: status = %d, want 200", body, rec.Code)
		}
	}

	if got := pub.msgs[1]; got.Name != "42" || got.Email != "" || got.Body != `["a","b"]` {
		t.Errorf("non-string fields rendered as %+v", got)
	}
}

func TestContact_Errors(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestHandler(testRows), nil)

	for _, body := range []string{`not json`, `[1,2]`, `null`, `"hello"`} {
		rec := do(t, srv, http.MethodPost, "/contact", body)
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("body %s: status = %d, want 500", body, rec.Code)
		}
		if decodeError(t, rec) == "" {
			t.Errorf("body %s: empty error message", body)
		}
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitRequests = 2
	mw.RateLimitWindow = time.Minute
	srv := newTestServer(t, newTestHandler(testRows), mw)

	for i := 0; i < 2; i++ {
		if rec := do(t, srv, http.MethodPost, "/predict", riceBody); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}

	rec := do(t, srv, http.MethodPost, "/predict", riceBody)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if got := decodeError(t, rec); got != "Too many requests" {
		t.Errorf("error = %q", got)
	}

	// Health probes are not rate limited.
	if rec := do(t, srv, http.MethodGet, "/health/live", ""); rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestHandler(testRows), nil)

	rec := do(t, srv, http.MethodGet, "/", "")
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("response should carry a generated X-Request-ID")
	}

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "client-supplied-id" {
		t.Errorf("X-Request-ID = %q, want the client-supplied value", got)
	}

	rec = do(t, srv, http.MethodGet, "/no/such/route", "")
	if rec.Code != http.StatusNotFound || rec.Header().Get(RequestIDHeader) == "" {
		t.Errorf("404 response: status %d, X-Request-ID %q", rec.Code, rec.Header().Get(RequestIDHeader))
	}
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, newTestHandler(testRows), nil)

	req := httptest.NewRequest(http.MethodOptions, "/predict", nil)
	req.Header.Set("Origin", "https://farm.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	h := newTestHandler(testRows, recommend.WithRecorder(metrics.RecommendRecorder{}))
	srv := newTestServer(t, h, nil)
	if rec := do(t, srv, http.MethodPost, "/predict", riceBody); rec.Code != http.StatusOK {
		t.Fatalf("predict status = %d", rec.Code)
	}

	rec := do(t, srv, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{"api_requests_total", "recommend_requests_total"} {
		if !strings.Contains(body, name) {
			t.Errorf("metrics output should include %s", name)
		}
	}
}

func TestMetricsDisabled(t *testing.T) {
	t.Parallel()

	mw := DefaultChiMiddlewareConfig()
	srv := NewRouter(newTestHandler(testRows), RouterConfig{Middleware: mw}).Handler()

	if rec := do(t, srv, http.MethodGet, "/metrics", ""); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 when metrics are disabled", rec.Code)
	}
}
