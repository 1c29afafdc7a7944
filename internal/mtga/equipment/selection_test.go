package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSelection_CollapsesDuplicates(t *testing.T) {
	sel := NewSelection("Bruenor Battlehammer", "Bonesplitter", "Bonesplitter", "Swiftfoot Boots")

	assert.Equal(t, 2, sel.EquipmentCount())
	assert.Equal(t, []string{"Bonesplitter", "Swiftfoot Boots"}, sel.Equipment())
	assert.False(t, sel.BruenorEffect())
}

func TestSelection_ModifiersDoNotMutateReceiver(t *testing.T) {
	orig := NewSelection("Bruenor Battlehammer", "Bonesplitter")

	added := orig.WithEquipment("Swiftfoot Boots")
	removed := orig.WithoutEquipment("Bonesplitter")
	effect := orig.WithBruenorEffect(true)

	assert.Equal(t, []string{"Bonesplitter"}, orig.Equipment())
	assert.False(t, orig.BruenorEffect())

	assert.Equal(t, []string{"Bonesplitter", "Swiftfoot Boots"}, added.Equipment())
	assert.Empty(t, removed.Equipment())
	assert.True(t, effect.BruenorEffect())
	assert.Equal(t, orig.Equipment(), effect.Equipment())
}

func TestSelection_Toggle(t *testing.T) {
	sel := NewSelection("Bruenor Battlehammer")

	sel = sel.Toggle("Bonesplitter")
	assert.True(t, sel.HasEquipment("Bonesplitter"))

	sel = sel.Toggle("Bonesplitter")
	assert.False(t, sel.HasEquipment("Bonesplitter"))
}

func TestSelection_WithCreatureResetsChoices(t *testing.T) {
	sel := NewSelection("Bruenor Battlehammer", "Bonesplitter").WithBruenorEffect(true)

	same := sel.WithCreature("Bruenor Battlehammer")
	assert.Equal(t, 1, same.EquipmentCount())
	assert.True(t, same.BruenorEffect())

	other := sel.WithCreature("Stoneforge Mystic")
	assert.Equal(t, "Stoneforge Mystic", other.Creature())
	assert.Equal(t, 0, other.EquipmentCount())
	assert.False(t, other.BruenorEffect())
}

func TestSelection_ZeroValueIsUsable(t *testing.T) {
	var sel Selection

	assert.Equal(t, 0, sel.EquipmentCount())
	assert.False(t, sel.HasEquipment("Bonesplitter"))

	sel = sel.WithEquipment("Bonesplitter")
	assert.True(t, sel.HasEquipment("Bonesplitter"))
}
