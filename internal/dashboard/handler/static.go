package handler

import (
	"net/http"
	"strconv"

	"devdash/internal/assets"
	"devdash/internal/metastore"
)

const indexFile = "index.html"

// HandleIndex serves index.html with the stored documents substituted in.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := h.assets.ReadFile(indexFile)
	if err != nil {
		notFound(w)
		return
	}
	tags, err := h.meta.Load(metastore.KindTags)
	if err != nil {
		writeError(w, err)
		return
	}
	folders, err := h.meta.Load(metastore.KindFolders)
	if err != nil {
		writeError(w, err)
		return
	}
	body := assets.RenderIndex(page, tags, folders)
	w.Header().Set("Content-Type", assets.ContentType(indexFile))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	_, _ = w.Write(body)
}

// HandleStatic serves any other file below the install directory.
func (h *Handler) HandleStatic(w http.ResponseWriter, r *http.Request) {
	body, err := h.assets.ReadFile(r.URL.Path)
	if err != nil {
		notFound(w)
		return
	}
	if ct := assets.ContentType(r.URL.Path); ct != "" {
		w.Header().Set("Content-Type", ct)
	} else {
		// nil suppresses content sniffing
		w.Header()["Content-Type"] = nil
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	_, _ = w.Write(body)
}

func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("404 NOT FOUND"))
}
