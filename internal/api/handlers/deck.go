package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ramonehamilton/combat-calc/internal/api/response"
	"github.com/ramonehamilton/combat-calc/internal/mtga/cards/archidekt"
	"github.com/ramonehamilton/combat-calc/internal/mtga/deck"
)

var (
	// ErrDeckNotConfigured is returned by /api/deck when no default deck is set.
	ErrDeckNotConfigured = errors.New("deck id is not configured")

	// ErrDeckUnavailable is the single message shown for every fetch failure.
	ErrDeckUnavailable = errors.New("could not load deck")
)

// DeckHandler handles deck-related API requests.
type DeckHandler struct {
	source        deck.Source
	defaultDeckID string
	logger        *slog.Logger
}

// NewDeckHandler creates a new DeckHandler. defaultDeckID may be empty.
func NewDeckHandler(source deck.Source, defaultDeckID string, logger *slog.Logger) *DeckHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeckHandler{
		source:        source,
		defaultDeckID: defaultDeckID,
		logger:        logger,
	}
}

// GetDefaultDeck returns the configured deck.
func (h *DeckHandler) GetDefaultDeck(w http.ResponseWriter, r *http.Request) {
	if h.defaultDeckID == "" {
		response.InternalError(w, ErrDeckNotConfigured)
		return
	}

	d, ok := h.fetch(w, r, h.defaultDeckID)
	if !ok {
		return
	}

	response.Success(w, d)
}

// GetDeck returns a single deck by ID.
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	d, ok := h.fetch(w, r, chi.URLParam(r, "deckID"))
	if !ok {
		return
	}

	response.Success(w, d)
}

// GetDeckCreatures returns the creatures of a deck.
func (h *DeckHandler) GetDeckCreatures(w http.ResponseWriter, r *http.Request) {
	d, ok := h.fetch(w, r, chi.URLParam(r, "deckID"))
	if !ok {
		return
	}

	response.Success(w, d.Creatures())
}

// GetDeckEquipment returns the equipment of a deck.
func (h *DeckHandler) GetDeckEquipment(w http.ResponseWriter, r *http.Request) {
	d, ok := h.fetch(w, r, chi.URLParam(r, "deckID"))
	if !ok {
		return
	}

	response.Success(w, d.Equipment())
}

// fetch loads a deck and writes the error response on failure.
func (h *DeckHandler) fetch(w http.ResponseWriter, r *http.Request, deckID string) (*deck.Deck, bool) {
	d, err := h.load(r.Context(), deckID)
	if err != nil {
		writeFetchError(w, err)
		return nil, false
	}
	return d, true
}

func (h *DeckHandler) load(ctx context.Context, deckID string) (*deck.Deck, error) {
	d, err := h.source.FetchDeck(ctx, deckID)
	if err != nil {
		h.logger.Warn("Deck fetch failed", "deckID", deckID, "error", err)
		return nil, err
	}
	return d, nil
}

// writeFetchError reports a deck fetch failure. The upstream status is kept
// when there is one; the message is always the same.
func writeFetchError(w http.ResponseWriter, err error) {
	status := archidekt.StatusCode(err)
	switch {
	case status >= 400 && status <= 599:
		response.Error(w, status, ErrDeckUnavailable)
	case errors.Is(err, context.DeadlineExceeded):
		response.Error(w, http.StatusGatewayTimeout, ErrDeckUnavailable)
	default:
		response.BadGateway(w, ErrDeckUnavailable)
	}
}
