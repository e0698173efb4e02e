package listregex

// Literal prefix extraction for the prefilter. A scanning driver may skip a
// start offset only when every possible match begins with one of the
// extracted literals, so the walk is conservative: any node it cannot prove
// literal ends the extraction.

const (
	// maxPrefixLiterals caps the alternation cross product.
	maxPrefixLiterals = 64
	// maxPrefixLen caps individual literal length; longer prefixes add
	// little filtering power.
	maxPrefixLen = 16
)

// literalPrefixes returns the mandatory literal prefixes of a compiled
// pattern. complete reports that the literals cover entire matches, not just
// prefixes, which lets a parent sequence keep extending them. An empty result
// means no usable prefix.
func literalPrefixes[T comparable](n node[T]) (lits [][]T, complete bool) {
	switch n := n.(type) {
	case *litNode[T]:
		return [][]T{{n.value}}, true
	case *startNode[T], *endNode[T], *lookaheadNode[T]:
		// Zero-width: constrains positions, contributes no items.
		return [][]T{{}}, true
	case *seqNode[T]:
		acc := [][]T{{}}
		complete = true
		for _, child := range n.children {
			cl, cc := literalPrefixes(child)
			if cl == nil {
				return acc, false
			}
			if len(acc)*len(cl) > maxPrefixLiterals {
				return acc, false
			}
			acc = crossPrefixes(acc, cl)
			if !cc || allCapped(acc) {
				return acc, false
			}
		}
		return acc, complete
	case *eitherNode[T]:
		if len(n.alts) == 0 {
			return nil, false
		}
		complete = true
		for _, alt := range n.alts {
			al, ac := literalPrefixes(alt)
			if al == nil || len(lits)+len(al) > maxPrefixLiterals {
				return nil, false
			}
			lits = append(lits, al...)
			complete = complete && ac
		}
		return lits, complete
	case *repeatNode[T]:
		if n.min < 1 {
			return [][]T{{}}, false
		}
		cl, cc := literalPrefixes(n.child)
		if cl == nil {
			return nil, false
		}
		return cl, cc && n.min == 1 && n.max == 1
	default:
		return nil, false
	}
}

func crossPrefixes[T comparable](acc, next [][]T) [][]T {
	out := make([][]T, 0, len(acc)*len(next))
	for _, a := range acc {
		for _, b := range next {
			c := make([]T, 0, len(a)+len(b))
			c = append(c, a...)
			c = append(c, b...)
			if len(c) > maxPrefixLen {
				c = c[:maxPrefixLen]
			}
			out = append(out, c)
		}
	}
	return out
}

func allCapped[T comparable](lits [][]T) bool {
	for _, l := range lits {
		if len(l) < maxPrefixLen {
			return false
		}
	}
	return true
}

// bytePrefixes converts the extracted prefixes for a byte-element pattern,
// truncated to their common minimum length so the prefilter's leftmost match
// is also the earliest-starting one. Returns nil when the element type is not
// byte or some match can start with no literal at all.
func bytePrefixes[T comparable](lits [][]T) [][]byte {
	if len(lits) == 0 {
		return nil
	}
	var zero T
	if _, ok := any(zero).(byte); !ok {
		return nil
	}
	shortest := maxPrefixLen
	for _, l := range lits {
		if len(l) == 0 {
			return nil
		}
		if len(l) < shortest {
			shortest = len(l)
		}
	}
	seen := make(map[string]bool, len(lits))
	out := make([][]byte, 0, len(lits))
	for _, l := range lits {
		b := any(l).([]byte)[:shortest]
		if seen[string(b)] {
			continue
		}
		seen[string(b)] = true
		out = append(out, b)
	}
	return out
}
