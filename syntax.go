package listregex

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Unbounded marks a repetition with no upper limit.
const Unbounded = -1

type exprOp uint8

const (
	opAny exprOp = iota
	opStart
	opEnd
	opRepeat
	opEither
	opBoth
	opNegate
	opLookahead
	opPair
	opBackref
)

var opNames = [...]string{
	opAny:       "Any",
	opStart:     "Start",
	opEnd:       "End",
	opRepeat:    "Repeat",
	opEither:    "Either",
	opBoth:      "Both",
	opNegate:    "Negate",
	opLookahead: "Lookahead",
	opPair:      "MatchingPair",
	opBackref:   "Backreference",
}

// Expr is an uncompiled pattern form produced by the combinator functions.
// Expr values are opaque; they only gain meaning when passed to Compile,
// either directly or as elements of a pattern slice.
type Expr struct {
	op       exprOp
	subs     []any
	min, max int
	index    int
}

func (e Expr) String() string {
	switch e.op {
	case opRepeat:
		if e.max == Unbounded {
			return fmt.Sprintf("Repeat(%d, Unbounded)", e.min)
		}
		return fmt.Sprintf("Repeat(%d, %d)", e.min, e.max)
	case opBackref:
		return fmt.Sprintf("Backreference(%d)", e.index)
	default:
		return opNames[e.op]
	}
}

// Any matches any single item.
func Any() Expr { return Expr{op: opAny} }

// Start matches the start of the subject without consuming items.
func Start() Expr { return Expr{op: opStart} }

// End matches the end of the subject without consuming items.
func End() Expr { return Expr{op: opEnd} }

// Repeat matches pattern repeated between min and max times, greedily: more
// repetitions are preferred and given up one by one only when the rest of the
// pattern cannot match. Pass Unbounded as max for no upper limit.
func Repeat(pattern any, min, max int) Expr {
	return Expr{op: opRepeat, subs: []any{pattern}, min: min, max: max}
}

// Optional matches pattern once or not at all, preferring once.
func Optional(pattern any) Expr { return Repeat(pattern, 0, 1) }

// ZeroOrMore matches pattern any number of times, greedily.
func ZeroOrMore(pattern any) Expr { return Repeat(pattern, 0, Unbounded) }

// OneOrMore matches pattern at least once, greedily.
func OneOrMore(pattern any) Expr { return Repeat(pattern, 1, Unbounded) }

// Either matches the first of the given patterns that leads to an overall
// match. Alternatives are tried in the order given; this is first-match, not
// longest-match.
func Either(patterns ...any) Expr {
	return Expr{op: opEither, subs: patterns}
}

// Both matches only where all given patterns match, taking the candidate
// widths of the first pattern that every other pattern can also produce.
func Both(patterns ...any) Expr {
	return Expr{op: opBoth, subs: patterns}
}

// Negate matches the same fixed number of items as pattern, but only where
// pattern itself does not match. The pattern must have a statically fixed
// width; Compile rejects it otherwise. A predicate counts as width 1, so
// Negate over a predicate matches the single item the predicate rejects.
func Negate(pattern any) Expr {
	return Expr{op: opNegate, subs: []any{pattern}}
}

// Lookahead tests pattern at the current position without consuming items.
func Lookahead(pattern any) Expr {
	return Expr{op: opLookahead, subs: []any{pattern}}
}

// MatchingPair matches from an occurrence of open up to and including the
// close that balances it, skipping over nested open/close pairs in between.
//
//	re := listregex.MustCompile[byte](listregex.MatchingPair(byte('('), byte(')')))
//	m, _ := re.Search([]byte("ab(c(d()e)f)"))
//	// m.Matched() is "(c(d()e)f)"
func MatchingPair(open, close any) Expr {
	return Expr{op: opPair, subs: []any{open, close}}
}

// Backreference matches a single item equal to the n-th already-matched item.
// Negative n counts from the end of the match so far.
func Backreference(n int) Expr {
	return Expr{op: opBackref, index: n}
}

// Between returns a predicate matching a single item in the inclusive range
// [lo, hi]. It is a convenience for ordered element types:
//
//	re := listregex.MustCompile[int](listregex.OneOrMore(listregex.Between(1, 3)))
func Between[T constraints.Ordered](lo, hi T) func(*Match[T]) bool {
	return func(m *Match[T]) bool {
		v := m.Next()
		return lo <= v && v <= hi
	}
}
