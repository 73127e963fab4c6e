package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"meetsum/types"
)

func newStaticRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>entry</html>"), 0o644); err != nil {
		t.Fatalf("write index.html: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('app')"), 0o644); err != nil {
		t.Fatalf("write app.js: %v", err)
	}

	router := gin.New()
	// The API routes exist only as POST, like in the real server.
	router.POST("/generate_summary", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/send_email", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.NoRoute(NewStaticHandler(dir).HandleFallback)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestStaticFallbackServesEntryDocument(t *testing.T) {
	router := newStaticRouter(t)

	for _, path := range []string{"/", "/summary", "/some/deep/client/route"} {
		rec := get(router, path)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, rec.Code)
		}
		if got := rec.Body.String(); got != "<html>entry</html>" {
			t.Errorf("GET %s body = %q, want entry document", path, got)
		}
	}
}

func TestStaticFallbackServesRealAssets(t *testing.T) {
	router := newStaticRouter(t)

	rec := get(router, "/app.js")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "console.log('app')" {
		t.Errorf("body = %q, want asset content", got)
	}
}

func TestAPIShapedPathsGetJSON404(t *testing.T) {
	router := newStaticRouter(t)

	for _, path := range []string{"/generate_summary/foo", "/generate_summary", "/send_email", "/send_email/x"} {
		rec := get(router, path)
		if rec.Code != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", path, rec.Code)
			continue
		}
		var resp types.ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Errorf("GET %s: decode response: %v", path, err)
			continue
		}
		if resp.Error != "Not found" {
			t.Errorf("GET %s error = %q, want %q", path, resp.Error, "Not found")
		}
	}
}

func TestStaticFallbackDoesNotEscapeStaticDir(t *testing.T) {
	router := newStaticRouter(t)

	// http.ServeFile refuses request paths containing "..", so traversal
	// attempts never reach the filesystem.
	rec := get(router, "/../config/config.yaml")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := rec.Body.String(); got == "port: \"5000\"" {
		t.Error("response leaked a file outside the static dir")
	}
}
