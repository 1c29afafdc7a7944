package equipment

import (
	"regexp"
	"strconv"
)

// Leading integer of a printed stat such as "3", "-1" or "1+*".
var statPrefixRegex = regexp.MustCompile(`^\s*([+-]?\d+)`)

// ParseStat converts a printed power or toughness into a number.
//
// Absent values, "*" and anything without a leading integer resolve to 0.
// Characteristic-defining formulas are not evaluated, so "1+*" is 1.
func ParseStat(stat *string) int {
	if stat == nil || *stat == "*" {
		return 0
	}
	m := statPrefixRegex.FindStringSubmatch(*stat)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
