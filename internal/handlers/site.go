package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// SiteHandler serves files from the site root. Directories resolve to
// their index.html. Byte ranges (single and multiple) are answered with
// 206, unsatisfiable ones with 416.
type SiteHandler struct {
	root http.FileSystem
}

// NewSiteHandler creates a SiteHandler rooted at dir
func NewSiteHandler(dir string) *SiteHandler {
	return &SiteHandler{root: http.Dir(dir)}
}

func (h *SiteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)

	f, err := h.root.Open(name)
	if err != nil {
		h.notFound(w, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.notFound(w, err)
		return
	}

	if info.IsDir() {
		if !strings.HasSuffix(r.URL.Path, "/") {
			http.Redirect(w, r, r.URL.Path+"/", http.StatusMovedPermanently)
			return
		}
		index, err := h.root.Open(path.Join(name, "index.html"))
		if err != nil {
			h.notFound(w, err)
			return
		}
		defer index.Close()
		if info, err = index.Stat(); err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}
		f = index
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func (h *SiteHandler) notFound(w http.ResponseWriter, err error) {
	if errors.Is(err, fs.ErrPermission) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
