package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"git.uuxo.net/uuxo/mime-resolver/internal/metrics"
	"git.uuxo.net/uuxo/mime-resolver/internal/mimeutil"
)

func TestMain(m *testing.M) {
	metrics.InitMetrics()
	os.Exit(m.Run())
}

type fakePlatform struct {
	types map[string]string
}

func (f *fakePlatform) TypeByExtension(ext string) (string, bool) {
	ct, ok := f.types[strings.ToLower(ext)]
	return ct, ok
}

func (f *fakePlatform) ExtensionsForType(contentType string) []string { return nil }

func newTestMux() *http.ServeMux {
	resolver := mimeutil.NewResolver(&fakePlatform{
		types: map[string]string{"zzz": "application/x-zzz"},
	})
	mux := http.NewServeMux()
	NewAPI(resolver).Register(mux, "")
	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var body map[string]interface{}
	if rec.Body.Len() > 0 && strings.Contains(rec.Header().Get("Content-Type"), "json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, body
}

func TestResolveEndpoint(t *testing.T) {
	mux := newTestMux()

	rec, body := doRequest(t, mux, http.MethodGet, "/api/v1/resolve?ext=png")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	if body["content_type"] != "image/png" {
		t.Errorf("content_type = %v; want image/png", body["content_type"])
	}
}

func TestResolveEndpointNotFound(t *testing.T) {
	mux := newTestMux()
	rec, body := doRequest(t, mux, http.MethodGet, "/api/v1/resolve?ext=nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", rec.Code)
	}
	if body["error"] == "" {
		t.Error("missing error message")
	}
}

func TestResolveEndpointMissingParameter(t *testing.T) {
	mux := newTestMux()
	rec, _ := doRequest(t, mux, http.MethodGet, "/api/v1/resolve")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
}

func TestResolveEndpointWellKnown(t *testing.T) {
	mux := newTestMux()

	// zzz resolves only through the fake platform tier.
	rec, body := doRequest(t, mux, http.MethodGet, "/api/v1/resolve?ext=zzz")
	if rec.Code != http.StatusOK || body["content_type"] != "application/x-zzz" {
		t.Fatalf("platform resolution failed: %d %v", rec.Code, body)
	}

	rec, _ = doRequest(t, mux, http.MethodGet, "/api/v1/resolve?ext=zzz&well_known=1")
	if rec.Code != http.StatusNotFound {
		t.Errorf("well_known resolution status = %d; want 404", rec.Code)
	}
}

func TestExtensionsEndpointUniversalWildcard(t *testing.T) {
	mux := newTestMux()
	rec, body := doRequest(t, mux, http.MethodGet, "/api/v1/extensions?type=*/*")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	exts, ok := body["extensions"].([]interface{})
	if !ok || len(exts) != 0 {
		t.Errorf("extensions = %v; want empty list", body["extensions"])
	}
}

func TestExtensionsEndpoint(t *testing.T) {
	mux := newTestMux()
	rec, body := doRequest(t, mux, http.MethodGet, "/api/v1/extensions?type=text/html")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	exts, _ := body["extensions"].([]interface{})
	found := false
	for _, e := range exts {
		if e == "html" {
			found = true
		}
	}
	if !found {
		t.Errorf("extensions = %v; want html included", exts)
	}
}

func TestMatchEndpoint(t *testing.T) {
	mux := newTestMux()
	tests := []struct {
		name   string
		target string
		want   bool
	}{
		{"wildcard suffix hit", "/api/v1/match?pattern=application/*%2Bxml&type=application/xhtml%2Bxml", true},
		{"wildcard suffix miss", "/api/v1/match?pattern=application/*%2Bxml&type=application/xml", false},
		{"universal", "/api/v1/match?pattern=*/*&type=text/html", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := doRequest(t, mux, http.MethodGet, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d; want 200", rec.Code)
			}
			if body["match"] != tt.want {
				t.Errorf("match = %v; want %v", body["match"], tt.want)
			}
		})
	}
}

func TestMatchEndpointMissingParameters(t *testing.T) {
	mux := newTestMux()
	rec, _ := doRequest(t, mux, http.MethodGet, "/api/v1/match?pattern=*/*")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
}

func TestParseEndpoint(t *testing.T) {
	mux := newTestMux()
	rec, body := doRequest(t, mux, http.MethodGet, "/api/v1/parse?type=text/html")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	if body["top_level"] != "text" || body["subtype"] != "html" || body["valid_top_level"] != true {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestParseEndpointMalformed(t *testing.T) {
	mux := newTestMux()
	for _, typ := range []string{"bogus", "text/"} {
		rec, _ := doRequest(t, mux, http.MethodGet, "/api/v1/parse?type="+typ)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("parse(%q) status = %d; want 400", typ, rec.Code)
		}
	}
}

func TestProbeEndpoint(t *testing.T) {
	mux := newTestMux()

	rec, body := doRequest(t, mux, http.MethodGet, "/api/v1/probe?filename=report.pdf")
	if rec.Code != http.StatusOK || body["content_type"] != "application/pdf" {
		t.Errorf("probe(report.pdf) = %d %v; want 200 application/pdf", rec.Code, body)
	}

	rec, _ = doRequest(t, mux, http.MethodGet, "/api/v1/probe?filename=README")
	if rec.Code != http.StatusNotFound {
		t.Errorf("probe(README) status = %d; want 404", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestMux()
	rec, _ := doRequest(t, mux, http.MethodPost, "/api/v1/resolve?ext=png")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d; want 405", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestMux()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Errorf("health = %d %q", rec.Code, rec.Body.String())
	}
}
