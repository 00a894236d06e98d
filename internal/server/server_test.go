package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/maandree/hungarian-algorithm-n3/pkg/cache"
	"github.com/maandree/hungarian-algorithm-n3/pkg/history"
	"github.com/maandree/hungarian-algorithm-n3/pkg/matrixio"
)

// memStore collects records in memory for assertions.
type memStore struct {
	records []history.Record
}

func (s *memStore) Insert(ctx context.Context, rec history.Record) error {
	s.records = append(s.records, rec)
	return nil
}

func (s *memStore) Recent(ctx context.Context, limit int) ([]history.Record, error) {
	if len(s.records) < limit {
		limit = len(s.records)
	}
	out := make([]history.Record, limit)
	for i := 0; i < limit; i++ {
		out[i] = s.records[len(s.records)-1-i]
	}
	return out, nil
}

func (s *memStore) Close(ctx context.Context) error { return nil }

func newTestServer(t *testing.T, store history.Store) *Server {
	t.Helper()
	if store == nil {
		store = history.NewNullStore()
	}
	logger := log.New(io.Discard)
	return New(logger, cache.NewNullCache(), store)
}

func postSolve(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/solve", strings.NewReader(body))
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func TestSolveEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	w := postSolve(t, s, `{"matrix":[[4,1,3],[2,0,5],[3,2,2]]}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var result matrixio.SolveResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if result.Cost != 5 {
		t.Errorf("cost = %d, want 5", result.Cost)
	}
	if result.Rows != 3 || result.Cols != 3 {
		t.Errorf("shape = %dx%d, want 3x3", result.Rows, result.Cols)
	}
	if len(result.Assignment) != 3 {
		t.Errorf("assignment has %d pairs, want 3", len(result.Assignment))
	}
	if id := w.Header().Get("X-Request-ID"); id == "" {
		t.Error("response missing X-Request-ID header")
	}
}

func TestSolveEndpointBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"MalformedJSON", `{"matrix": [[1,`},
		{"EmptyMatrix", `{"matrix": []}`},
		{"MoreRowsThanCols", `{"matrix": [[1],[2]]}`},
		{"Ragged", `{"matrix": [[1,2],[3]]}`},
	}
	s := newTestServer(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := postSolve(t, s, tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestSolveCaching(t *testing.T) {
	logger := log.New(io.Discard)
	fileCache, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	s := New(logger, fileCache, history.NewNullStore())

	body := `{"matrix":[[7]]}`
	if w := postSolve(t, s, body); w.Header().Get("X-Cache") == "hit" {
		t.Fatal("first request should not be a cache hit")
	}
	w := postSolve(t, s, body)
	if w.Header().Get("X-Cache") != "hit" {
		t.Error("second request should be served from cache")
	}
	var result matrixio.SolveResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decoding cached response: %v", err)
	}
	if result.Cost != 7 {
		t.Errorf("cached cost = %d, want 7", result.Cost)
	}
}

func TestRecentEndpoint(t *testing.T) {
	store := &memStore{}
	s := newTestServer(t, store)

	postSolve(t, s, `{"matrix":[[7]]}`)
	postSolve(t, s, `{"matrix":[[1,2],[3,4]]}`)

	req := httptest.NewRequest(http.MethodGet, "/v1/solves?limit=10", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Solves []history.Record `json:"solves"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Solves) != 2 {
		t.Fatalf("got %d records, want 2", len(resp.Solves))
	}
	// Newest first: the 2x2 solve came last.
	if resp.Solves[0].Rows != 2 {
		t.Errorf("first record rows = %d, want the 2x2 solve first", resp.Solves[0].Rows)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/solves?limit=nope", nil)
	w = httptest.NewRecorder()
	s.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad limit: status = %d, want 400", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
