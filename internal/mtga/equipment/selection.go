package equipment

import (
	"slices"
)

// Selection is the user's choice of creature, equipment and extra effect.
// It is a value type: every modifier returns a new Selection and leaves the
// receiver untouched.
type Selection struct {
	creature     string
	equipment    map[string]struct{}
	bruenorBonus bool
}

// NewSelection creates a selection for the given creature and equipment
// names. Duplicate names collapse into one.
func NewSelection(creature string, equipment ...string) Selection {
	s := Selection{
		creature:  creature,
		equipment: make(map[string]struct{}, len(equipment)),
	}
	for _, name := range equipment {
		s.equipment[name] = struct{}{}
	}
	return s
}

// Creature returns the selected creature name, or "" if none is selected.
func (s Selection) Creature() string {
	return s.creature
}

// Equipment returns the selected equipment names in sorted order.
func (s Selection) Equipment() []string {
	names := make([]string, 0, len(s.equipment))
	for name := range s.equipment {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// EquipmentCount returns the number of distinct selected equipment names.
func (s Selection) EquipmentCount() int {
	return len(s.equipment)
}

// HasEquipment reports whether the named equipment is selected.
func (s Selection) HasEquipment(name string) bool {
	_, ok := s.equipment[name]
	return ok
}

// BruenorEffect reports whether the flat per-equipment bonus is enabled.
func (s Selection) BruenorEffect() bool {
	return s.bruenorBonus
}

// WithCreature selects a different creature. Switching creatures clears
// the equipment selection and the extra effect.
func (s Selection) WithCreature(name string) Selection {
	if name == s.creature {
		return s
	}
	return NewSelection(name)
}

// WithEquipment returns a copy with the named equipment added.
func (s Selection) WithEquipment(name string) Selection {
	next := s.clone()
	next.equipment[name] = struct{}{}
	return next
}

// WithoutEquipment returns a copy with the named equipment removed.
func (s Selection) WithoutEquipment(name string) Selection {
	next := s.clone()
	delete(next.equipment, name)
	return next
}

// Toggle adds the equipment if it is not selected and removes it otherwise.
func (s Selection) Toggle(name string) Selection {
	if s.HasEquipment(name) {
		return s.WithoutEquipment(name)
	}
	return s.WithEquipment(name)
}

// WithBruenorEffect returns a copy with the extra effect set to enabled.
func (s Selection) WithBruenorEffect(enabled bool) Selection {
	next := s.clone()
	next.bruenorBonus = enabled
	return next
}

func (s Selection) clone() Selection {
	equipment := make(map[string]struct{}, len(s.equipment)+1)
	for name := range s.equipment {
		equipment[name] = struct{}{}
	}
	return Selection{
		creature:     s.creature,
		equipment:    equipment,
		bruenorBonus: s.bruenorBonus,
	}
}
