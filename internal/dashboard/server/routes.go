package server

import (
	"net/http"

	"devdash/internal/dashboard/handler"
	"devdash/internal/dashboard/middleware"
)

func NewMux(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	// JSON endpoints
	mux.HandleFunc("GET /scan", h.HandleScan)
	mux.HandleFunc("GET /languages", h.HandleLanguages)
	mux.HandleFunc("GET /action", h.HandleAction)
	mux.HandleFunc("POST /save/{kind}", h.HandleSave)
	mux.HandleFunc("GET /health", h.HandleHealth)
	mux.HandleFunc("GET /watch", h.HandleWatch)

	// Page and static files
	mux.HandleFunc("GET /{$}", h.HandleIndex)
	mux.HandleFunc("GET /index.html", h.HandleIndex)
	mux.HandleFunc("GET /", h.HandleStatic)

	// Middleware
	return middleware.RequestLog(middleware.LocalOrigin(mux))
}
