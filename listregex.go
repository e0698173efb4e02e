// Package listregex generalizes regular expression matching from character
// strings to sequences of arbitrary comparable elements.
//
// Patterns are ordinary Go values. A bare value matches one equal item, a
// slice matches its elements in order, the combinator functions (Optional,
// Repeat, Either, Negate, Lookahead, ...) build the usual regex operators,
// and a one-parameter function is a predicate that inspects the match so far
// and reports how many further items to consume. Matching is backtracking:
// greedy quantifiers and ordered alternation explore alternatives on failure,
// exactly like a classic regex engine, at the price of exponential worst-case
// time.
//
// Basic usage:
//
//	re, err := listregex.Compile[int]([]any{1, listregex.Optional(2), 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, err := re.FullMatch([]int{1, 3})
//	if err == nil {
//	    fmt.Println(m.Matched()) // [1 3]
//	}
//
// Predicates receive the partial match and can look at the accumulated items
// and the next one:
//
//	runs := listregex.MustCompile[int]([]any{
//	    listregex.Any(),
//	    listregex.ZeroOrMore(func(m *listregex.Match[int]) bool {
//	        return m.Next() == m.At(0)
//	    }),
//	})
//
// Subjects of type []byte with literal-prefixed patterns are scanned through
// an Aho-Corasick prefilter, so Search and FindIter skip offsets that cannot
// start a match.
package listregex

import "github.com/boppreh/listregex/internal/prefilter"

// Regex is a compiled pattern over elements of type T.
//
// A Regex is immutable after compilation and safe for concurrent use. It
// never copies or mutates the subjects it is matched against.
type Regex[T comparable] struct {
	prog node[T]
	pre  *prefilter.Prefilter
}

// Compile normalizes a pattern value into its matchable form.
//
// Accepted pattern forms:
//   - a bare T value: matches one equal item
//   - a []T, []any or []Expr: matches the compiled elements in order
//   - an Expr from a combinator function (Optional, Repeat, Either, ...)
//   - func(*Match[T]) int: predicate; the returned width is how many items to
//     consume, 0 meaning no match
//   - func(*Match[T]) bool: predicate over a single item
//
// Anything else fails with a *CompileError.
func Compile[T comparable](pattern any) (*Regex[T], error) {
	prog, err := compileForm[T](pattern)
	if err != nil {
		return nil, err
	}
	r := &Regex[T]{prog: prog}
	lits, _ := literalPrefixes(prog)
	if bs := bytePrefixes(lits); bs != nil {
		r.pre = prefilter.New(bs)
	}
	return r, nil
}

// MustCompile is like Compile but panics if the pattern is invalid. Useful
// for patterns known to be well-formed at compile time.
func MustCompile[T comparable](pattern any) *Regex[T] {
	re, err := Compile[T](pattern)
	if err != nil {
		panic("listregex: " + err.Error())
	}
	return re
}
