package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hashcompose/reqforge/internal/composer"
	"github.com/hashcompose/reqforge/internal/db"
	"github.com/hashcompose/reqforge/internal/history"
	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/ladder"
)

// newTestServer wires a server over an in-memory database and a composer
// with no providers, so every request runs the deterministic pipeline.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	comp := composer.New(knowledge.Default(), nil, ladder.New(nil, 0), nil, composer.Options{})
	return New(Config{Port: 0}, comp, history.NewStore(database), nil)
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer database.Close()

	comp := composer.New(knowledge.Default(), nil, ladder.New(nil, 0), nil, composer.Options{})
	srv := New(Config{Port: 0, AllowAll: true}, comp, history.NewStore(database), nil)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestComposeEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body := `{"description": "Transfer loyalty tokens between customer accounts"}`
	req := httptest.NewRequest("POST", "/api/compose", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result composer.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if result.ID == "" {
		t.Error("result carries no run ID")
	}
	if len(result.Artifacts) == 0 {
		t.Error("result carries no artifacts")
	}
	if result.Quality.OverallScore < 0 || result.Quality.OverallScore > 100 {
		t.Errorf("overall score %d out of range", result.Quality.OverallScore)
	}
}

func TestComposeEndpointRejectsEmptyDescription(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("POST", "/api/compose", strings.NewReader(`{"description": ""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestComposeEndpointRejectsInvalidJSON(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("POST", "/api/compose", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

// composeRun submits one requirement and returns the stored run ID.
func composeRun(t *testing.T, srv *Server, description string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"description": description})
	req := httptest.NewRequest("POST", "/api/compose", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("compose returned %d: %s", w.Code, w.Body.String())
	}

	var result composer.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	return result.ID
}

func TestListAndGetRuns(t *testing.T) {
	srv := newTestServer(t)

	id := composeRun(t, srv, "Track pharmaceutical shipments with temperature alerts")

	req := httptest.NewRequest("GET", "/api/runs", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list returned %d", w.Code)
	}

	var listing struct {
		Runs []history.RunSummary `json:"runs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
		t.Fatalf("unmarshal listing: %v", err)
	}
	if len(listing.Runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(listing.Runs))
	}
	if listing.Runs[0].ID != id {
		t.Errorf("listed run ID %q, want %q", listing.Runs[0].ID, id)
	}

	req = httptest.NewRequest("GET", "/api/runs/"+id, nil)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get returned %d", w.Code)
	}

	var result composer.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal run: %v", err)
	}
	if result.ID != id {
		t.Errorf("fetched run ID %q, want %q", result.ID, id)
	}
	if len(result.Artifacts) == 0 {
		t.Error("stored run lost its artifacts")
	}
}

func TestGetRunNotFound(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/runs/does-not-exist", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestRunReport(t *testing.T) {
	srv := newTestServer(t)

	id := composeRun(t, srv, "Issue digital receipts for retail purchases")

	req := httptest.NewRequest("GET", "/api/runs/"+id+"/report", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("report returned %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}

	page := w.Body.String()
	for _, want := range []string{"Composition Report", "Classification", "Quality", "Artifacts"} {
		if !strings.Contains(page, want) {
			t.Errorf("report page missing %q section", want)
		}
	}
}

func TestListRunsFilterByIntent(t *testing.T) {
	srv := newTestServer(t)

	composeRun(t, srv, "Transfer loyalty tokens between customer accounts")

	req := httptest.NewRequest("GET", "/api/runs?intent=no-such-intent", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list returned %d", w.Code)
	}

	var listing struct {
		Runs []history.RunSummary `json:"runs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
		t.Fatalf("unmarshal listing: %v", err)
	}
	if len(listing.Runs) != 0 {
		t.Errorf("expected no runs for unmatched intent, got %d", len(listing.Runs))
	}
}
