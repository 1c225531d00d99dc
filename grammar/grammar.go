// Package grammar holds the event-code width rule (a state with n
// productions uses ceil(log2(n)) bits) and a small State descriptor. The
// per-type encoders in dctypes and xmldsig do not import this package;
// they write their event-code widths as literal constants.
//
// This generalizes the teacher's core/production.go and core/grammar.go
// (Production, Grammar, SchemaInformedGrammar) to the static shape spec.md
// §4.2 calls for: rather than a Grammar built at runtime from a dynamically
// loaded schema, each dctypes/xmldsig complex type compiles to one pair of
// Go functions that write or read its presence bits and event codes
// directly. EventCodeWidth below is the direct analog of
// utils.GetCodingLength in the teacher's pack.
package grammar

import "math/bits"

// EventCodeWidth returns ceil(log2(numProductions)) bits, the width
// mandated by spec.md §4.2 for a state with numProductions productions.
// A state with exactly one production needs no event code (width 0).
func EventCodeWidth(numProductions int) int {
	switch {
	case numProductions <= 1:
		return 0
	case numProductions == 2:
		return 1
	default:
		return bits.Len(uint(numProductions - 1))
	}
}

// State describes one grammar state: how many productions it offers (used
// to compute the event-code width) together with a human-readable label
// for diagnostics and tests. The production semantics themselves
// (event kind, payload, next state) live in the generated per-type
// encode/decode functions in dctypes/xmldsig, exactly as spec.md §4.2
// allows ("the implementation may represent them as a switch over state
// ids or as a table of transitions").
type State struct {
	ID              int
	Label           string
	NumProductions  int
}

// Width returns the event-code width for this state.
func (s State) Width() int {
	return EventCodeWidth(s.NumProductions)
}
