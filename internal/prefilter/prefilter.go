// Package prefilter accelerates scanning over byte subjects by finding the
// offsets where one of a pattern's mandatory literal prefixes occurs, so the
// backtracking engine only runs at candidate positions.
//
// All literals must have the same length: the automaton reports the leftmost
// match, and with equal-length patterns the leftmost match is also the
// earliest-starting one, which is what offset skipping relies on.
package prefilter

import (
	"github.com/coregx/ahocorasick"
)

// Prefilter wraps an Aho-Corasick automaton over the literal prefixes.
type Prefilter struct {
	auto   *ahocorasick.Automaton
	minLen int
}

// New builds a prefilter from equal-length, non-empty literals. Returns nil
// (no error) when the automaton cannot be built; callers fall back to plain
// scanning.
func New(literals [][]byte) *Prefilter {
	if len(literals) == 0 || len(literals[0]) == 0 {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		if len(lit) != len(literals[0]) {
			return nil
		}
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &Prefilter{auto: auto, minLen: len(literals[0])}
}

// Next returns the smallest offset >= at where one of the literals begins,
// or -1 when none occurs in the rest of the haystack.
func (p *Prefilter) Next(haystack []byte, at int) int {
	if at+p.minLen > len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, at)
	if m == nil {
		return -1
	}
	return m.Start
}
