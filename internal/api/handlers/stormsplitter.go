package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ramonehamilton/combat-calc/internal/api/response"
	"github.com/ramonehamilton/combat-calc/internal/mtga/stormsplitter"
)

// StormsplitterHandler handles token-doubling calculations.
type StormsplitterHandler struct{}

// NewStormsplitterHandler creates a new StormsplitterHandler.
func NewStormsplitterHandler() *StormsplitterHandler {
	return &StormsplitterHandler{}
}

// StormsplitterRequest represents a combat calculation request.
type StormsplitterRequest struct {
	Spells         int `json:"spells"`
	BonusPower     int `json:"bonus_power"`
	BonusToughness int `json:"bonus_toughness"`
}

// Calculate returns the copy ledger for a chain of spells.
func (h *StormsplitterHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req StormsplitterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, errors.New("invalid request body"))
		return
	}

	if err := validateRange("spells", req.Spells, stormsplitter.MaxSpells); err != nil {
		response.BadRequest(w, err)
		return
	}
	if err := validateRange("bonus_power", req.BonusPower, stormsplitter.MaxBonusPerSpell); err != nil {
		response.BadRequest(w, err)
		return
	}
	if err := validateRange("bonus_toughness", req.BonusToughness, stormsplitter.MaxBonusPerSpell); err != nil {
		response.BadRequest(w, err)
		return
	}

	in := stormsplitter.DefaultInput()
	in.Spells = req.Spells
	in.Bonus = stormsplitter.Stats{Power: req.BonusPower, Toughness: req.BonusToughness}

	response.Success(w, stormsplitter.Calculate(in))
}

// TriggerRequest represents a counting-only calculation request.
type TriggerRequest struct {
	Spells   int `json:"spells"`
	PerSpell int `json:"per_spell"`
}

// CountTriggers returns the trigger ledger for a chain of spells.
func (h *StormsplitterHandler) CountTriggers(w http.ResponseWriter, r *http.Request) {
	var req TriggerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, errors.New("invalid request body"))
		return
	}

	if err := validateRange("spells", req.Spells, stormsplitter.MaxSpells); err != nil {
		response.BadRequest(w, err)
		return
	}
	if err := validateRange("per_spell", req.PerSpell, stormsplitter.MaxBonusPerSpell); err != nil {
		response.BadRequest(w, err)
		return
	}

	response.Success(w, stormsplitter.CountTriggers(req.Spells, req.PerSpell))
}

func validateRange(field string, v, limit int) error {
	if v < 0 || v > limit {
		return fmt.Errorf("%s must be between 0 and %d", field, limit)
	}
	return nil
}
