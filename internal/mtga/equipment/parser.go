// Package equipment extracts stat bonuses and keyword abilities from
// equipment rules text and folds them onto a creature.
//
// The parser is a heuristic over free text, not a rules engine. It runs three
// independent regexp passes over the same input, so one span of text may
// count towards more than one of them.
package equipment

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// "+2/+1", "-1/-1". Both sides must carry a sign.
	statBonusRegex = regexp.MustCompile(`([+-]\d+)/([+-]\d+)`)

	// "loses flying". Only a single word is captured.
	lostAbilityRegex = regexp.MustCompile(`(?i)loses (\w+)`)

	// "and has flying, haste and shroud", "gains first strike and vigilance".
	// Group 2 runs until punctuation other than a comma.
	grantedAbilityRegex = regexp.MustCompile(`(?i)(and has|gains) ([\w\s,]+(?: and [\w\s]+)?)`)

	abilitySeparatorRegex = regexp.MustCompile(`,| and `)
)

// Bonus is what a single piece of equipment does to the equipped creature.
type Bonus struct {
	PowerBonus       int      `json:"power_bonus"`
	ToughnessBonus   int      `json:"toughness_bonus"`
	GrantedAbilities []string `json:"granted_abilities"` // Lower case, in text order
	LostAbilities    []string `json:"lost_abilities"`    // Lower case, in text order
}

// IsZero reports whether the bonus changes nothing.
func (b Bonus) IsZero() bool {
	return b.PowerBonus == 0 && b.ToughnessBonus == 0 &&
		len(b.GrantedAbilities) == 0 && len(b.LostAbilities) == 0
}

// ParseText parses equipment rules text into a Bonus. It never fails; text
// without any recognizable pattern yields the zero bonus.
func ParseText(text string) Bonus {
	power, toughness := parseStatBonus(text)
	return Bonus{
		PowerBonus:       power,
		ToughnessBonus:   toughness,
		GrantedAbilities: parseGrantedAbilities(text),
		LostAbilities:    parseLostAbilities(text),
	}
}

// parseStatBonus sums every signed P/T modifier in the text.
func parseStatBonus(text string) (power, toughness int) {
	for _, m := range statBonusRegex.FindAllStringSubmatch(text, -1) {
		// Out-of-range numbers fail to parse and count as 0.
		p, _ := strconv.Atoi(m[1])
		t, _ := strconv.Atoi(m[2])
		power += p
		toughness += t
	}
	return power, toughness
}

// parseLostAbilities keeps duplicates; set semantics are applied when
// several bonuses are combined.
func parseLostAbilities(text string) []string {
	lost := make([]string, 0)
	for _, m := range lostAbilityRegex.FindAllStringSubmatch(text, -1) {
		lost = append(lost, strings.ToLower(m[1]))
	}
	return lost
}

func parseGrantedAbilities(text string) []string {
	granted := make([]string, 0)
	for _, m := range grantedAbilityRegex.FindAllStringSubmatch(text, -1) {
		for _, part := range abilitySeparatorRegex.Split(strings.ToLower(m[2]), -1) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			granted = append(granted, part)
		}
	}
	return granted
}
