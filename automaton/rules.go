package automaton

import (
	"fmt"
)

// RuleTable maps every 3-cell neighborhood to the next state of its center
// cell. The neighborhood code is left*4 + center*2 + right.
type RuleTable [8]bool

// Rule110 is the elementary rule 110 table.
var Rule110 = RuleTable{
	false, // 000
	true,  // 001
	true,  // 010
	true,  // 011
	false, // 100
	true,  // 101
	true,  // 110
	false, // 111
}

// NewRuleTable builds a table from exactly eight entries indexed by
// neighborhood code.
func NewRuleTable(entries []bool) RuleTable {
	var r RuleTable
	if len(entries) != len(r) {
		panic(fmt.Sprintf("automaton: rule table needs %d entries, got %d", len(r), len(entries)))
	}
	copy(r[:], entries)
	return r
}

// RuleFromNumber builds the table of an elementary automaton from its Wolfram
// code: bit k of number is the next state for neighborhood code k.
func RuleFromNumber(number uint8) RuleTable {
	var r RuleTable
	for code := range r {
		r[code] = number>>uint(code)&1 == 1
	}
	return r
}

// Neighborhood encodes a 3-cell window as its rule table index.
func Neighborhood(left, center, right bool) uint8 {
	var code uint8
	if left {
		code |= 4
	}
	if center {
		code |= 2
	}
	if right {
		code |= 1
	}
	return code
}

// Next returns the next state of the center cell of neighborhood code.
func (r RuleTable) Next(code uint8) bool {
	return r[code&7]
}

// Evaluate returns the next state of center given its neighbors.
func (r RuleTable) Evaluate(left, center, right bool) bool {
	return r[Neighborhood(left, center, right)]
}

// Flips reports whether the center cell of neighborhood code changes state.
func (r RuleTable) Flips(code uint8) bool {
	return r.Next(code) != (code&2 != 0)
}

// Number returns the Wolfram code of the table.
func (r RuleTable) Number() uint8 {
	var n uint8
	for code, next := range r {
		if next {
			n |= 1 << uint(code)
		}
	}
	return n
}

func (r RuleTable) String() string {
	return fmt.Sprintf("rule %d", r.Number())
}
