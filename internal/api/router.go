package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ramonehamilton/combat-calc/internal/api/handlers"
	"github.com/ramonehamilton/combat-calc/internal/api/response"
)

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	// Health check endpoint (no versioning)
	s.router.Get("/health", s.healthCheck)

	deckHandler := handlers.NewDeckHandler(s.decks, s.defaultDeckID, s.logger)

	// Configured deck, same shape as the original single-deck endpoint
	s.router.Get("/api/deck", deckHandler.GetDefaultDeck)

	// API v1 routes
	s.router.Route("/api/v1", func(r chi.Router) {
		// Deck routes
		r.Route("/decks", func(r chi.Router) {
			r.Get("/{deckID}", deckHandler.GetDeck)
			r.Get("/{deckID}/creatures", deckHandler.GetDeckCreatures)
			r.Get("/{deckID}/equipment", deckHandler.GetDeckEquipment)
		})

		// Equipment routes
		equipmentHandler := handlers.NewEquipmentHandler(deckHandler)
		r.Post("/equipment/parse", equipmentHandler.ParseEquipment)
		r.Post("/bruenor/calculate", equipmentHandler.CalculateBruenor)

		// Stormsplitter routes
		stormsplitterHandler := handlers.NewStormsplitterHandler()
		r.Route("/stormsplitter", func(r chi.Router) {
			r.Post("/calculate", stormsplitterHandler.Calculate)
			r.Post("/triggers", stormsplitterHandler.CountTriggers)
		})

		// System routes
		systemHandler := handlers.NewSystemHandler()
		r.Get("/system/version", systemHandler.GetVersion)
	})
}

// healthCheck returns server health status.
func (s *Server) healthCheck(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "combat-calc-api",
	})
}
