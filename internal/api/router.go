package api

import (
	"net/http"

	"trip-route-service/internal/api/handlers"
	"trip-route-service/internal/ports"
	"trip-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(engine *services.Engine, repo ports.TripRepository) http.Handler {
	mux := http.NewServeMux()

	normalizeHandler := &handlers.NormalizeHandler{}
	selectHandler := &handlers.SelectHandler{
		Hyper:   engine.Hyper,
		Weights: engine.Weights,
	}
	optimizeHandler := &handlers.OptimizeHandler{Engine: engine}
	placesHandler := &handlers.PlacesHandler{Repo: repo}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("POST /normalize", normalizeHandler.Normalize)
	mux.HandleFunc("POST /select", selectHandler.Select)
	mux.HandleFunc("POST /optimize", optimizeHandler.Optimize)
	mux.HandleFunc("GET /trips/{id}/places", placesHandler.List)

	return requestIDMiddleware(loggingMiddleware(mux))
}
