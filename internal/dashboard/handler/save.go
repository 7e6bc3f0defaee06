package handler

import (
	"errors"
	"io"
	"net/http"

	"devdash/internal/metastore"
)

const maxDocumentBytes = 16 << 20

// HandleSave replaces the tags or folders document with the request body.
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	kind, err := metastore.ParseKind(r.PathValue("kind"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "document too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.meta.Save(kind, body); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, struct{}{})
}
