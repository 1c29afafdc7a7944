// Package deck holds the card records a calculator works on and the
// collaborator interface used to load them.
package deck

import (
	"context"
	"slices"
)

const (
	typeCreature     = "Creature"
	subTypeEquipment = "Equipment"
)

// CardRecord is a single deck entry as returned by a deck source.
// Records are treated as immutable once fetched.
type CardRecord struct {
	Quantity  int      `json:"quantity"`
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Types     []string `json:"types"`
	SubTypes  []string `json:"sub_types"`
	Power     *string  `json:"power,omitempty"`     // May be numeric or "*"
	Toughness *string  `json:"toughness,omitempty"` // May be numeric or "*"
	Text      *string  `json:"text,omitempty"`      // Oracle rules text
}

// IsCreature reports whether the card has the Creature type.
func (c CardRecord) IsCreature() bool {
	return slices.Contains(c.Types, typeCreature)
}

// IsEquipment reports whether the card has the Equipment subtype.
func (c CardRecord) IsEquipment() bool {
	return slices.Contains(c.SubTypes, subTypeEquipment)
}

// RulesText returns the card text, or "" when the card has none.
func (c CardRecord) RulesText() string {
	if c.Text == nil {
		return ""
	}
	return *c.Text
}

// Deck is a fetched deck list.
type Deck struct {
	ID    int          `json:"id"`
	Name  string       `json:"name"`
	Cards []CardRecord `json:"cards"`
}

// Creatures returns the creature cards in deck order.
func (d *Deck) Creatures() []CardRecord {
	return filter(d.Cards, CardRecord.IsCreature)
}

// Equipment returns the equipment cards in deck order.
func (d *Deck) Equipment() []CardRecord {
	return filter(d.Cards, CardRecord.IsEquipment)
}

// FindByName returns the first card with the given name.
func (d *Deck) FindByName(name string) (CardRecord, bool) {
	return FindByName(d.Cards, name)
}

// FindByName returns the first card in cards with the given name.
func FindByName(cards []CardRecord, name string) (CardRecord, bool) {
	for _, c := range cards {
		if c.Name == name {
			return c, true
		}
	}
	return CardRecord{}, false
}

func filter(cards []CardRecord, keep func(CardRecord) bool) []CardRecord {
	out := make([]CardRecord, 0, len(cards))
	for _, c := range cards {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// Source loads a deck by its identifier.
type Source interface {
	FetchDeck(ctx context.Context, deckID string) (*Deck, error)
}
