package equipment

import (
	"slices"

	"github.com/ramonehamilton/combat-calc/internal/mtga/deck"
)

// FlatBonusPerEquipment is the extra power Bruenor Battlehammer gives the
// equipped creature for each attached equipment.
const FlatBonusPerEquipment = 2

// Aggregate is the combined effect of several equipment bonuses.
type Aggregate struct {
	PowerBonus       int      `json:"power_bonus"`
	ToughnessBonus   int      `json:"toughness_bonus"`
	FlatBonus        int      `json:"flat_bonus"`        // Power only
	GrantedAbilities []string `json:"granted_abilities"` // Deduplicated, sorted
	LostAbilities    []string `json:"lost_abilities"`    // Deduplicated, sorted
}

// Result is the equipped creature after all selected bonuses are applied.
type Result struct {
	Creature       string    `json:"creature,omitempty"`
	BasePower      int       `json:"base_power"`
	BaseToughness  int       `json:"base_toughness"`
	Bonus          Aggregate `json:"bonus"`
	TotalPower     int       `json:"total_power"`
	TotalToughness int       `json:"total_toughness"`
	EquipmentCount int       `json:"equipment_count"`
}

// Calculate applies the selected equipment to the selected creature.
//
// Every card in cards whose name is selected contributes its parsed bonus,
// so a name carried by two card entries counts twice. Names that match no
// card are ignored. The flat bonus scales with the number of selected names.
// Calculate never fails; a missing creature has base stats 0/0.
func Calculate(cards []deck.CardRecord, sel Selection) Result {
	res := Result{
		Creature:       sel.Creature(),
		EquipmentCount: sel.EquipmentCount(),
	}

	if sel.Creature() != "" {
		if creature, ok := deck.FindByName(cards, sel.Creature()); ok {
			res.BasePower = ParseStat(creature.Power)
			res.BaseToughness = ParseStat(creature.Toughness)
		}
	}

	res.Bonus = Combine(cards, sel)
	res.TotalPower = res.BasePower + res.Bonus.PowerBonus + res.Bonus.FlatBonus
	res.TotalToughness = res.BaseToughness + res.Bonus.ToughnessBonus
	return res
}

// Combine folds the parsed bonus of every selected card into one Aggregate.
func Combine(cards []deck.CardRecord, sel Selection) Aggregate {
	var agg Aggregate
	granted := make(map[string]struct{})
	lost := make(map[string]struct{})

	for _, card := range cards {
		if !sel.HasEquipment(card.Name) {
			continue
		}
		b := ParseText(card.RulesText())
		agg.PowerBonus += b.PowerBonus
		agg.ToughnessBonus += b.ToughnessBonus
		for _, a := range b.GrantedAbilities {
			granted[a] = struct{}{}
		}
		for _, a := range b.LostAbilities {
			lost[a] = struct{}{}
		}
	}

	if sel.BruenorEffect() {
		agg.FlatBonus = FlatBonusPerEquipment * sel.EquipmentCount()
	}
	agg.GrantedAbilities = sortedKeys(granted)
	agg.LostAbilities = sortedKeys(lost)
	return agg
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
