package archidekt

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ramonehamilton/combat-calc/internal/mtga/deck"
)

// Deck is the subset of an Archidekt deck response this service reads.
type Deck struct {
	ID    int         `json:"id"`
	Name  string      `json:"name"`
	Cards []DeckEntry `json:"cards"`
}

// DeckEntry is one line of an Archidekt deck.
type DeckEntry struct {
	ID       int        `json:"id"`
	Quantity int        `json:"quantity"`
	Card     CardDetail `json:"card"`
}

// CardDetail wraps the printing-independent oracle card.
type CardDetail struct {
	OracleCard OracleCard `json:"oracleCard"`
}

// OracleCard holds the rules-relevant fields of a card.
type OracleCard struct {
	Name      string   `json:"name"`
	Types     []string `json:"types"`
	SubTypes  []string `json:"subTypes"`
	Power     *string  `json:"power,omitempty"`
	Toughness *string  `json:"toughness,omitempty"`
	Text      *string  `json:"text,omitempty"`
}

// ToDeck converts the API response into the service's deck model.
func (d *Deck) ToDeck() *deck.Deck {
	out := &deck.Deck{
		ID:    d.ID,
		Name:  d.Name,
		Cards: make([]deck.CardRecord, 0, len(d.Cards)),
	}
	for _, e := range d.Cards {
		oc := e.Card.OracleCard
		out.Cards = append(out.Cards, deck.CardRecord{
			Quantity:  e.Quantity,
			ID:        e.ID,
			Name:      oc.Name,
			Types:     nonNil(oc.Types),
			SubTypes:  nonNil(oc.SubTypes),
			Power:     oc.Power,
			Toughness: oc.Toughness,
			Text:      oc.Text,
		})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// FetchError is returned for any failed deck fetch. StatusCode is 0 when no
// HTTP response was received or the body could not be decoded.
type FetchError struct {
	DeckID     string
	StatusCode int
	Err        error
}

// Error implements the error interface for FetchError.
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch deck %s: HTTP %d: %v", e.DeckID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch deck %s: %v", e.DeckID, e.Err)
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if the deck does not exist upstream.
func IsNotFound(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.StatusCode == http.StatusNotFound
}

// StatusCode returns the upstream HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.StatusCode
	}
	return 0
}
