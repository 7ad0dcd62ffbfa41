package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>tabata</html>"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "pkg"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pkg", "app.js"), []byte("console.log('tick')"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return &Server{Dir: dir}, dir
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRootServesIndex(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s.Handler(), "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want 200", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if string(body) != "<html>tabata</html>" {
		t.Fatalf("GET / body = %q, want index.html contents", body)
	}
}

func TestPassthroughServesNestedFiles(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s.Handler(), "/pkg/app.js")

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /pkg/app.js status = %d, want 200", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if string(body) != "console.log('tick')" {
		t.Fatalf("GET /pkg/app.js body = %q", body)
	}
}

func TestMissingFileReturns404(t *testing.T) {
	s, _ := newTestServer(t)
	if rec := get(t, s.Handler(), "/nope.css"); rec.Code != http.StatusNotFound {
		t.Fatalf("GET /nope.css status = %d, want 404", rec.Code)
	}
}

func TestDirectoryReturns404(t *testing.T) {
	s, _ := newTestServer(t)
	if rec := get(t, s.Handler(), "/pkg"); rec.Code != http.StatusNotFound {
		t.Fatalf("GET /pkg status = %d, want 404", rec.Code)
	}
	if rec := get(t, s.Handler(), "/pkg/"); rec.Code != http.StatusNotFound {
		t.Fatalf("GET /pkg/ status = %d, want 404", rec.Code)
	}
}

func TestTraversalIsRejected(t *testing.T) {
	s, dir := newTestServer(t)
	secret := filepath.Join(filepath.Dir(dir), "secret.txt")
	if err := os.WriteFile(secret, []byte("nope"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rec := get(t, s.Handler(), "/../secret.txt")
	if rec.Code == http.StatusOK {
		t.Fatalf("traversal request served file outside static dir")
	}
}

func TestNonGetRejected(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST / status = %d, want 405", rec.Code)
	}
}
