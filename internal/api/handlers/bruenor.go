package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ramonehamilton/combat-calc/internal/api/response"
	"github.com/ramonehamilton/combat-calc/internal/mtga/deck"
	"github.com/ramonehamilton/combat-calc/internal/mtga/equipment"
)

// EquipmentHandler handles equipment parsing and Bruenor calculations.
type EquipmentHandler struct {
	decks *DeckHandler
}

// NewEquipmentHandler creates a new EquipmentHandler. Decks referenced by
// ID are loaded through the deck handler's source.
func NewEquipmentHandler(decks *DeckHandler) *EquipmentHandler {
	return &EquipmentHandler{decks: decks}
}

// ParseEquipmentRequest represents a request to parse rules text.
type ParseEquipmentRequest struct {
	Text string `json:"text"`
}

// ParseEquipment parses a single piece of equipment text.
func (h *EquipmentHandler) ParseEquipment(w http.ResponseWriter, r *http.Request) {
	var req ParseEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, errors.New("invalid request body"))
		return
	}

	response.Success(w, equipment.ParseText(req.Text))
}

// BruenorRequest represents a request to equip a creature.
// Cards takes precedence over DeckID; with neither, the default deck is used.
type BruenorRequest struct {
	DeckID        string            `json:"deck_id,omitempty"`
	Cards         []deck.CardRecord `json:"cards,omitempty"`
	Creature      string            `json:"creature"`
	Equipment     []string          `json:"equipment"`
	BruenorEffect bool              `json:"bruenor_effect"`
}

// CalculateBruenor computes the equipped creature's stats and abilities.
func (h *EquipmentHandler) CalculateBruenor(w http.ResponseWriter, r *http.Request) {
	var req BruenorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, errors.New("invalid request body"))
		return
	}

	cards := req.Cards
	if cards == nil {
		deckID := req.DeckID
		if deckID == "" {
			deckID = h.decks.defaultDeckID
		}
		if deckID == "" {
			response.BadRequest(w, errors.New("either cards or deck_id is required"))
			return
		}

		d, ok := h.decks.fetch(w, r, deckID)
		if !ok {
			return
		}
		cards = d.Cards
	}

	sel := equipment.NewSelection(req.Creature, req.Equipment...).WithBruenorEffect(req.BruenorEffect)
	response.Success(w, equipment.Calculate(cards, sel))
}
