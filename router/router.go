// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/hatpick/hatpick/cliparse"
	"github.com/hatpick/hatpick/handlers"
	"github.com/hatpick/hatpick/middleware"
	"github.com/hatpick/hatpick/space"
)

func NewRouter(svc *space.Service, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	spaceHandler := handlers.NewSpaceHandler(svc)

	// Health check (unauthenticated, no namespace required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Item management
	mux.HandleFunc("GET /space/items", middleware.WithLogging(spaceHandler.ListItems))
	mux.HandleFunc("POST /space/items", middleware.WithLogging(spaceHandler.AddItem))
	mux.HandleFunc("DELETE /space/items/{index}", middleware.WithLogging(spaceHandler.RemoveItem))

	// Pick record
	mux.HandleFunc("GET /space/picked", middleware.WithLogging(spaceHandler.GetPicked))
	mux.HandleFunc("POST /space/picked", middleware.WithLogging(spaceHandler.RecordPick))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hatpick API v1"))
	})

	rl := middleware.NewRateLimiter(cfg.RateLimitRPS)
	return middleware.CORS(cfg.AllowOrigin, rl.Wrap(mux))
}
