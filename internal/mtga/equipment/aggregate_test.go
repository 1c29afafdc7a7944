package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ramonehamilton/combat-calc/internal/mtga/deck"
)

func strPtr(s string) *string { return &s }

func testCards() []deck.CardRecord {
	return []deck.CardRecord{
		{Quantity: 1, ID: 1, Name: "Bruenor Battlehammer", Types: []string{"Creature"}, Power: strPtr("5"), Toughness: strPtr("3")},
		{Quantity: 1, ID: 2, Name: "Tarmogoyf", Types: []string{"Creature"}, Power: strPtr("*"), Toughness: strPtr("1+*")},
		{Quantity: 1, ID: 3, Name: "Bonesplitter", SubTypes: []string{"Equipment"}, Text: strPtr("Equipped creature gets +2/+0.\nEquip {1}")},
		{Quantity: 1, ID: 4, Name: "Loxodon Warhammer", SubTypes: []string{"Equipment"}, Text: strPtr("Equipped creature gets +3/+0 and has trample and lifelink.\nEquip {3}")},
		{Quantity: 1, ID: 5, Name: "Swiftfoot Boots", SubTypes: []string{"Equipment"}, Text: strPtr("Equipped creature has hexproof and haste.\nEquip {1}")},
		{Quantity: 1, ID: 6, Name: "Lightning Greaves", SubTypes: []string{"Equipment"}, Text: strPtr("Equipped creature gets +0/+0 and has haste and shroud.\nEquip {0}")},
		{Quantity: 1, ID: 7, Name: "Grounding Chains", SubTypes: []string{"Equipment"}, Text: strPtr("Equipped creature gets -1/+2 and loses flying.")},
		{Quantity: 1, ID: 8, Name: "Mountain", Types: []string{"Land"}},
	}
}

func TestCalculate_NoEquipment(t *testing.T) {
	res := Calculate(testCards(), NewSelection("Bruenor Battlehammer"))

	assert.Equal(t, 5, res.BasePower)
	assert.Equal(t, 3, res.BaseToughness)
	assert.Equal(t, 5, res.TotalPower)
	assert.Equal(t, 3, res.TotalToughness)
	assert.Equal(t, 0, res.Bonus.PowerBonus)
	assert.Equal(t, 0, res.Bonus.ToughnessBonus)
	assert.Equal(t, 0, res.Bonus.FlatBonus)
	assert.Empty(t, res.Bonus.GrantedAbilities)
	assert.Empty(t, res.Bonus.LostAbilities)
}

func TestCalculate_SumsSelectedEquipment(t *testing.T) {
	sel := NewSelection("Bruenor Battlehammer", "Bonesplitter", "Loxodon Warhammer", "Grounding Chains")

	res := Calculate(testCards(), sel)

	assert.Equal(t, 2+3-1, res.Bonus.PowerBonus)
	assert.Equal(t, 2, res.Bonus.ToughnessBonus)
	assert.Equal(t, 5+4, res.TotalPower)
	assert.Equal(t, 3+2, res.TotalToughness)
	assert.Equal(t, []string{"lifelink", "trample"}, res.Bonus.GrantedAbilities)
	assert.Equal(t, []string{"flying"}, res.Bonus.LostAbilities)
	assert.Equal(t, 3, res.EquipmentCount)
}

func TestCalculate_DeduplicatesAbilities(t *testing.T) {
	sel := NewSelection("Bruenor Battlehammer", "Lightning Greaves", "Loxodon Warhammer")
	cards := append(testCards(), deck.CardRecord{
		Name: "Haste Charm", SubTypes: []string{"Equipment"}, Text: strPtr("Equipped creature gains haste."),
	})
	sel = sel.WithEquipment("Haste Charm")

	res := Calculate(cards, sel)

	assert.Equal(t, []string{"haste", "lifelink", "shroud", "trample"}, res.Bonus.GrantedAbilities)
}

func TestCalculate_BruenorEffectAddsTwoPerEquipment(t *testing.T) {
	selections := [][]string{
		{"Bonesplitter"},
		{"Bonesplitter", "Swiftfoot Boots"},
		{"Swiftfoot Boots", "Lightning Greaves", "Grounding Chains"},
		{"Not In Deck", "Also Missing"},
	}

	for _, names := range selections {
		base := NewSelection("Bruenor Battlehammer", names...)
		without := Calculate(testCards(), base)
		with := Calculate(testCards(), base.WithBruenorEffect(true))

		k := len(names)
		assert.Equal(t, 2*k, with.TotalPower-without.TotalPower, "selection %v", names)
		assert.Equal(t, without.TotalToughness, with.TotalToughness, "selection %v", names)
		assert.Equal(t, 2*k, with.Bonus.FlatBonus, "selection %v", names)
	}
}

func TestCalculate_UnknownNamesIgnored(t *testing.T) {
	sel := NewSelection("Bruenor Battlehammer", "Sword of Nowhere")

	res := Calculate(testCards(), sel)

	assert.Equal(t, 5, res.TotalPower)
	assert.Equal(t, 3, res.TotalToughness)
	assert.Empty(t, res.Bonus.GrantedAbilities)
}

func TestCalculate_StarStatsResolveToZero(t *testing.T) {
	res := Calculate(testCards(), NewSelection("Tarmogoyf", "Bonesplitter"))

	assert.Equal(t, 0, res.BasePower)
	assert.Equal(t, 1, res.BaseToughness)
	assert.Equal(t, 2, res.TotalPower)
}

func TestCalculate_NoCreatureSelected(t *testing.T) {
	res := Calculate(testCards(), NewSelection("", "Bonesplitter").WithBruenorEffect(true))

	assert.Equal(t, 0, res.BasePower)
	assert.Equal(t, 0, res.BaseToughness)
	assert.Equal(t, 2+2, res.TotalPower)
}

func TestCalculate_DuplicateCardEntriesEachContribute(t *testing.T) {
	cards := []deck.CardRecord{
		{Name: "Bonesplitter", SubTypes: []string{"Equipment"}, Text: strPtr("Equipped creature gets +2/+0.")},
		{Name: "Bonesplitter", SubTypes: []string{"Equipment"}, Text: strPtr("Equipped creature gets +2/+0.")},
	}

	res := Calculate(cards, NewSelection("", "Bonesplitter").WithBruenorEffect(true))

	assert.Equal(t, 4, res.Bonus.PowerBonus)
	assert.Equal(t, 2, res.Bonus.FlatBonus)
}

func TestCalculate_NilCards(t *testing.T) {
	res := Calculate(nil, NewSelection("Anything", "Bonesplitter"))

	assert.Equal(t, 0, res.TotalPower)
	assert.NotNil(t, res.Bonus.GrantedAbilities)
	assert.NotNil(t, res.Bonus.LostAbilities)
}

func TestParseStat(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want int
	}{
		{"absent", nil, 0},
		{"star", strPtr("*"), 0},
		{"number", strPtr("3"), 3},
		{"negative", strPtr("-1"), -1},
		{"leading space", strPtr(" 4"), 4},
		{"formula", strPtr("1+*"), 1},
		{"star formula", strPtr("*+1"), 0},
		{"empty", strPtr(""), 0},
		{"garbage", strPtr("X"), 0},
		{"overflow", strPtr("99999999999999999999999"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStat(tt.in))
		})
	}
}
