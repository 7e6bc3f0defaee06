package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"devdash/internal/assets"
	"devdash/internal/dashboard/config"
	"devdash/internal/launch"
	"devdash/internal/metastore"
	"devdash/internal/safeio"
)

// ErrMalformedQuery is returned for a query pair without "=".
var ErrMalformedQuery = errors.New("malformed query")

// Handler serves the dashboard endpoints for one configuration.
type Handler struct {
	cfg        *config.Config
	root       *safeio.SafeFS
	meta       *metastore.Store
	dispatcher *launch.Dispatcher
	assets     *assets.Reader
}

func New(cfg *config.Config, meta *metastore.Store, dispatcher *launch.Dispatcher, assetReader *assets.Reader) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("handler: config is required")
	}
	root, err := safeio.NewSafeFS(cfg.Folder)
	if err != nil {
		return nil, fmt.Errorf("handler: root folder: %w", err)
	}
	return &Handler{
		cfg:        cfg,
		root:       root,
		meta:       meta,
		dispatcher: dispatcher,
		assets:     assetReader,
	}, nil
}

func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error to a plain-text failure response.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMalformedQuery),
		errors.Is(err, safeio.ErrInvalidName),
		errors.Is(err, metastore.ErrInvalidJSON),
		errors.Is(err, metastore.ErrUnknownKind):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, fs.ErrNotExist):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// parseQuery parses key=value pairs joined by "&". A pair without "=" is
// refused. Escapes are decoded as in a path, so "+" stays a plus sign: the
// UI sends folder names such as "notepad++" without encoding them.
func parseQuery(raw string) (url.Values, error) {
	q := url.Values{}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedQuery, pair)
		}
		k, err := url.PathUnescape(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedQuery, err)
		}
		v, err := url.PathUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedQuery, err)
		}
		q.Add(k, v)
	}
	return q, nil
}

func requireParams(r *http.Request, names ...string) ([]string, error) {
	q, err := parseQuery(r.URL.RawQuery)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(names))
	for i, name := range names {
		if _, ok := q[name]; !ok {
			return nil, fmt.Errorf("%w: %s is required", ErrMalformedQuery, name)
		}
		out[i] = q.Get(name)
	}
	return out, nil
}
