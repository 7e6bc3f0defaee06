package handler

import (
	"net/http"

	"devdash/internal/scan"
)

type scanResponse struct {
	Root    string             `json:"root"`
	Folders []scan.FolderEntry `json:"folders"`
}

// HandleScan lists the immediate subdirectories of the root folder.
func (h *Handler) HandleScan(w http.ResponseWriter, _ *http.Request) {
	folders, err := scan.Folders(h.root.Root())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, scanResponse{Root: h.cfg.Folder, Folders: folders})
}

// HandleLanguages classifies the files under root/dirname.
func (h *Handler) HandleLanguages(w http.ResponseWriter, r *http.Request) {
	params, err := requireParams(r, "dirname")
	if err != nil {
		writeError(w, err)
		return
	}
	dir, err := h.root.Child(params[0])
	if err != nil {
		writeError(w, err)
		return
	}
	langs, err := scan.Languages(dir)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, langs)
}

// HandleAction launches an external tool against root/dirname. The response
// is always {} once the directory name resolves, whether or not anything
// was launched.
func (h *Handler) HandleAction(w http.ResponseWriter, r *http.Request) {
	params, err := requireParams(r, "dirname", "action")
	if err != nil {
		writeError(w, err)
		return
	}
	dir, err := h.root.Child(params[0])
	if err != nil {
		writeError(w, err)
		return
	}
	h.dispatcher.Dispatch(params[1], dir)
	writeJSON(w, struct{}{})
}
