package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"delizur.dev/internal/config"
	"delizur.dev/internal/models"
)

func newTestRouter(t *testing.T) (http.Handler, string) {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>home</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "clip.mp4"), []byte("0123456789abcdef"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "projects", "demo-project"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "projects", "demo-project", "index.html"), []byte("<h1>demo</h1>"), 0o644))

	cfg := config.Default()
	cfg.SiteRoot = root
	projects := []models.Project{{Slug: "demo-project", Title: "Demo"}}
	return SetupRoutes(cfg, projects, zap.NewNop()), root
}

func get(h http.Handler, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServeWholeFile(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := get(h, "/clip.mp4", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "0123456789abcdef", rec.Body.String())
	require.Equal(t, "bytes", rec.Header().Get("Accept-Ranges"))
	require.Equal(t, "close", rec.Header().Get("Connection"))
	require.Equal(t, "16", rec.Header().Get("Content-Length"))
}

func TestServeRange(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := get(h, "/clip.mp4", map[string]string{"Range": "bytes=2-5"})
	require.Equal(t, http.StatusPartialContent, rec.Code)
	require.Equal(t, "2345", rec.Body.String())
	require.Equal(t, "bytes 2-5/16", rec.Header().Get("Content-Range"))

	rec = get(h, "/clip.mp4", map[string]string{"Range": "bytes=10-"})
	require.Equal(t, http.StatusPartialContent, rec.Code)
	require.Equal(t, "abcdef", rec.Body.String())
}

func TestServeUnsatisfiableRange(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := get(h, "/clip.mp4", map[string]string{"Range": "bytes=100-200"})
	require.Equal(t, http.StatusRequestedRangeNotSatisfiable, rec.Code)
}

func TestServeRangeEndPastSizeIsTruncated(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := get(h, "/clip.mp4", map[string]string{"Range": "bytes=10-100"})
	require.Equal(t, http.StatusPartialContent, rec.Code)
	require.Equal(t, "bytes 10-15/16", rec.Header().Get("Content-Range"))
	require.Equal(t, "abcdef", rec.Body.String())
}

func TestServeMultipleRanges(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := get(h, "/clip.mp4", map[string]string{"Range": "bytes=0-1,4-5"})
	require.Equal(t, http.StatusPartialContent, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "multipart/byteranges")
	require.Contains(t, rec.Body.String(), "01")
	require.Contains(t, rec.Body.String(), "45")
}

func TestServeDirectoryIndex(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := get(h, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "home")

	rec = get(h, "/projects/demo-project/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "demo")

	rec = get(h, "/projects/demo-project", nil)
	require.Equal(t, http.StatusMovedPermanently, rec.Code)
	require.Equal(t, "/projects/demo-project/", rec.Header().Get("Location"))
}

func TestServeMissing(t *testing.T) {
	h, _ := newTestRouter(t)
	require.Equal(t, http.StatusNotFound, get(h, "/nope.png", nil).Code)
	require.Equal(t, http.StatusNotFound, get(h, "/projects/", nil).Code)
}

func TestProjectsAPI(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := get(h, "/api/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, "demo-project", list[0].Slug)

	rec = get(h, "/api/projects/demo-project", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(h, "/api/projects/unknown", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"Project not found"}`, rec.Body.String())

	rec = get(h, "/api/health", nil)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
