package listregex

import "fmt"

// Match is an accepted contiguous span of a subject sequence.
//
// A Match holds offsets into the caller-owned subject; it never copies the
// items. Mutating the subject while matches into it are alive leads to
// undefined results.
//
// Inside user predicates, the Match passed in reflects everything matched so
// far by the enclosing pattern, so At, Next and Items are meaningful relative
// to the whole attempt.
type Match[T comparable] struct {
	items      []T
	start, end int
}

func newMatch[T comparable](items []T, at int) *Match[T] {
	return &Match[T]{items: items, start: at, end: at}
}

// advance returns a new match extended by the next n items.
func (m *Match[T]) advance(n int) *Match[T] {
	return &Match[T]{items: m.items, start: m.start, end: m.end + n}
}

// Start returns the subject offset where the match begins.
func (m *Match[T]) Start() int { return m.start }

// End returns the subject offset just past the last matched item.
func (m *Match[T]) End() int { return m.end }

// Len returns the number of matched items.
func (m *Match[T]) Len() int { return m.end - m.start }

// At returns the i-th matched item. Negative indices count from the end of
// the match, like At(-1) for the last matched item.
//
// Out-of-range indices panic with *BoundsError; inside a predicate the engine
// turns that panic into a failed predicate.
//
// Special case: while the match is still empty, At(0) returns the lookahead
// item (the same item Next returns). This lets a bare top-level predicate
// refer to "the first item" before it has confirmed any, e.g.
//
//	func(m *listregex.Match[byte]) int { return int(m.At(0)) + 1 }
func (m *Match[T]) At(i int) T {
	n := m.end - m.start
	if n == 0 && i == 0 {
		if m.end < len(m.items) {
			return m.items[m.end]
		}
		panic(&BoundsError{Op: "At", Index: i, Len: 0})
	}
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		panic(&BoundsError{Op: "At", Index: i, Len: n})
	}
	return m.items[m.start+j]
}

// HasNext reports whether any items remain after the matched ones.
func (m *Match[T]) HasNext() bool {
	return m.end < len(m.items)
}

// Next returns the first item after the matched ones.
//
// If no items remain it panics with *BoundsError; inside a predicate the
// engine turns that panic into a failed predicate, so predicates can call
// Next without checking HasNext first.
func (m *Match[T]) Next() T {
	if m.end >= len(m.items) {
		panic(&BoundsError{Op: "Next", Index: m.end, Len: m.end - m.start})
	}
	return m.items[m.end]
}

// Rest returns the items after the matched ones. The slice aliases the
// subject.
func (m *Match[T]) Rest() []T {
	return m.items[m.end:]
}

// Matched returns the matched items, possibly empty for patterns built from
// Optional or Lookahead. The slice aliases the subject.
func (m *Match[T]) Matched() []T {
	return m.items[m.start:m.end]
}

// Items returns the whole subject sequence, independent of the match bounds.
func (m *Match[T]) Items() []T {
	return m.items
}

func (m *Match[T]) String() string {
	return fmt.Sprintf("Match(%v)", m.Matched())
}
