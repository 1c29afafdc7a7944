// Package stormsplitter computes how many token copies of Stormsplitter exist
// after a chain of instants and sorceries, and how large each copy is.
//
// Each spell creates a token copy of every Stormsplitter already on the
// battlefield, so the copies created by spell i number 2^(i-1). Every copy
// keeps growing from the spells cast after it entered.
package stormsplitter

const (
	// MaxSpells is the largest spell count callers should accept.
	MaxSpells = 20

	// MaxBonusPerSpell is the largest per-spell stat bonus callers should accept.
	MaxBonusPerSpell = 10

	// BasePower and BaseToughness are Stormsplitter's printed stats.
	BasePower     = 1
	BaseToughness = 4
)

// Stats is a power/toughness pair.
type Stats struct {
	Power     int `json:"power"`
	Toughness int `json:"toughness"`
}

// Input describes one combat calculation.
type Input struct {
	Spells int   `json:"spells"`
	Bonus  Stats `json:"bonus"` // Added per marker
	Base   Stats `json:"base"`
}

// DefaultInput returns an input for the printed creature with no spells cast.
func DefaultInput() Input {
	return Input{Base: Stats{Power: BasePower, Toughness: BaseToughness}}
}

// Step is one row of the ledger. Spell 0 is the original creature.
type Step struct {
	Spell         int  `json:"spell"`
	IsOriginal    bool `json:"is_original"`
	Copies        int  `json:"copies"`
	MarkerPerCopy int  `json:"marker_per_copy"`
	Power         int  `json:"power"`
	Toughness     int  `json:"toughness"`
}

// TotalPower returns the combined power of every copy in this step.
func (s Step) TotalPower() int {
	return s.Power * s.Copies
}

// TotalToughness returns the combined toughness of every copy in this step.
func (s Step) TotalToughness() int {
	return s.Toughness * s.Copies
}

// Ledger is the full step-by-step result of a calculation.
type Ledger struct {
	Steps          []Step `json:"steps"`
	TotalCreatures int    `json:"total_creatures"`
	TotalPower     int    `json:"total_power"`
	TotalToughness int    `json:"total_toughness"`
}

// Calculate builds the combat ledger. The original carries one marker per
// spell; the copies made by spell i carry one marker for each later spell.
// A negative spell count yields an empty ledger.
func Calculate(in Input) Ledger {
	return build(in.Spells, func(markers int) Stats {
		return Stats{
			Power:     in.Base.Power + markers*in.Bonus.Power,
			Toughness: in.Base.Toughness + markers*in.Bonus.Toughness,
		}
	}, 1)
}

// CountTriggers builds the counting-only ledger, where each step's marker
// value is the number of triggers a copy sees: perSpell for each spell cast
// after it entered. Derived stats are always zero.
func CountTriggers(spells, perSpell int) Ledger {
	return build(spells, func(int) Stats { return Stats{} }, perSpell)
}

// build assembles the ledger. markerScale multiplies the per-step marker
// value before it is recorded; stats receives the scaled value.
func build(spells int, stats func(markers int) Stats, markerScale int) Ledger {
	ledger := Ledger{Steps: make([]Step, 0)}
	if spells < 0 {
		return ledger
	}

	ledger.Steps = make([]Step, 0, spells+1)
	ledger.Steps = append(ledger.Steps, newStep(0, 1, spells*markerScale, stats))
	for i := 1; i <= spells; i++ {
		ledger.Steps = append(ledger.Steps, newStep(i, 1<<(i-1), (spells-i)*markerScale, stats))
	}

	for _, s := range ledger.Steps {
		ledger.TotalCreatures += s.Copies
		ledger.TotalPower += s.TotalPower()
		ledger.TotalToughness += s.TotalToughness()
	}
	return ledger
}

func newStep(spell, copies, markers int, stats func(int) Stats) Step {
	st := stats(markers)
	return Step{
		Spell:         spell,
		IsOriginal:    spell == 0,
		Copies:        copies,
		MarkerPerCopy: markers,
		Power:         st.Power,
		Toughness:     st.Toughness,
	}
}
