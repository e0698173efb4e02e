package listregex

// node is the compiled form of a pattern. Each variant enumerates its
// candidate completions of the partial match m in priority order by calling
// yield once per candidate. A yield returning false stops the enumeration;
// match then returns false as well, propagating the stop outward. A match
// returning true means the variant ran out of candidates.
//
// The enumeration is restartable in the sense that no state survives a call:
// taking only the first candidate and walking all of them are both just a
// matter of what yield returns.
type node[T comparable] interface {
	match(m *Match[T], yield func(*Match[T]) bool) bool
}

// litNode consumes one item equal to its value.
type litNode[T comparable] struct {
	value T
}

func (n *litNode[T]) match(m *Match[T], yield func(*Match[T]) bool) bool {
	if m.end < len(m.items) && m.items[m.end] == n.value {
		return yield(m.advance(1))
	}
	return true
}

// anyNode consumes one item if one remains.
type anyNode[T comparable] struct{}

func (n *anyNode[T]) match(m *Match[T], yield func(*Match[T]) bool) bool {
	if m.end < len(m.items) {
		return yield(m.advance(1))
	}
	return true
}

// startNode and endNode are zero-width position anchors.
type startNode[T comparable] struct{}

func (n *startNode[T]) match(m *Match[T], yield func(*Match[T]) bool) bool {
	if m.end == 0 {
		return yield(m)
	}
	return true
}

type endNode[T comparable] struct{}

func (n *endNode[T]) match(m *Match[T], yield func(*Match[T]) bool) bool {
	if m.end == len(m.items) {
		return yield(m)
	}
	return true
}

// predNode consumes the number of items its user function reports.
type predNode[T comparable] struct {
	fn func(*Match[T]) int
}

func (n *predNode[T]) match(m *Match[T], yield func(*Match[T]) bool) bool {
	w := n.eval(m)
	if w <= 0 || w > len(m.items)-m.end {
		return true
	}
	return yield(m.advance(w))
}

// eval invokes the user predicate. An out-of-range Match access inside the
// predicate counts as the predicate failing, so predicates can call Next or
// At near the end of the subject without guarding. Any other panic belongs to
// the caller and continues unwinding.
func (n *predNode[T]) eval(m *Match[T]) (w int) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*BoundsError); ok {
				w = 0
				return
			}
			panic(r)
		}
	}()
	return n.fn(m)
}

// seqNode matches its children in order with cross-child backtracking: when a
// suffix of the sequence fails, the most recent child with remaining
// candidates supplies its next one.
type seqNode[T comparable] struct {
	children []node[T]
}

func (n *seqNode[T]) match(m *Match[T], yield func(*Match[T]) bool) bool {
	return n.matchFrom(0, m, yield)
}

func (n *seqNode[T]) matchFrom(i int, m *Match[T], yield func(*Match[T]) bool) bool {
	if i == len(n.children) {
		return yield(m)
	}
	return n.children[i].match(m, func(c *Match[T]) bool {
		return n.matchFrom(i+1, c, yield)
	})
}

// repeatNode matches its child between min and max times. Greedy repetition
// descends before yielding, so higher repetition counts come out first;
// non-greedy repetition yields before descending.
type repeatNode[T comparable] struct {
	child    node[T]
	min, max int // max == Unbounded for no upper limit
	greedy   bool
}

func (n *repeatNode[T]) match(m *Match[T], yield func(*Match[T]) bool) bool {
	return n.repeat(0, m, yield)
}

func (n *repeatNode[T]) repeat(count int, m *Match[T], yield func(*Match[T]) bool) bool {
	if !n.greedy && count >= n.min {
		if !yield(m) {
			return false
		}
	}
	if n.max == Unbounded || count < n.max {
		ok := n.child.match(m, func(c *Match[T]) bool {
			if c.end == m.end && n.max == Unbounded {
				// The child stopped consuming items, so every further
				// repetition would be identical. One zero-width success
				// stands in for all of them.
				if (n.greedy && count+1 >= n.min) || count+1 == n.min {
					return yield(c)
				}
				return true
			}
			return n.repeat(count+1, c, yield)
		})
		if !ok {
			return false
		}
	}
	if n.greedy && count >= n.min {
		return yield(m)
	}
	return true
}

// eitherNode tries its alternatives in order, exhausting each one's
// candidates before moving to the next.
type eitherNode[T comparable] struct {
	alts []node[T]
}

func (n *eitherNode[T]) match(m *Match[T], yield func(*Match[T]) bool) bool {
	for _, alt := range n.alts {
		if !alt.match(m, yield) {
			return false
		}
	}
	return true
}

// bothNode yields the candidates of its first branch whose end offset every
// other branch can also reach.
type bothNode[T comparable] struct {
	alts []node[T]
}

func (n *bothNode[T]) match(m *Match[T], yield func(*Match[T]) bool) bool {
	if len(n.alts) == 0 {
		return yield(m)
	}
	var common map[int]bool
	for _, alt := range n.alts[1:] {
		ends := map[int]bool{}
		alt.match(m, func(c *Match[T]) bool {
			ends[c.end] = true
			return true
		})
		if common == nil {
			common = ends
			continue
		}
		for e := range common {
			if !ends[e] {
				delete(common, e)
			}
		}
	}
	if common != nil && len(common) == 0 {
		return true
	}
	seen := map[int]bool{}
	return n.alts[0].match(m, func(c *Match[T]) bool {
		if seen[c.end] || (common != nil && !common[c.end]) {
			return true
		}
		seen[c.end] = true
		return yield(c)
	})
}

// negateNode consumes exactly width items, but only where its child fails.
// The width is fixed at compile time.
type negateNode[T comparable] struct {
	child node[T]
	width int
}

func (n *negateNode[T]) match(m *Match[T], yield func(*Match[T]) bool) bool {
	if n.width > len(m.items)-m.end {
		return true
	}
	matched := false
	n.child.match(m, func(*Match[T]) bool {
		matched = true
		return false
	})
	if matched {
		return true
	}
	return yield(m.advance(n.width))
}

// lookaheadNode confirms its child matches here, then yields the current
// match unchanged, ignoring how much the child consumed.
type lookaheadNode[T comparable] struct {
	child node[T]
}

func (n *lookaheadNode[T]) match(m *Match[T], yield func(*Match[T]) bool) bool {
	found := false
	n.child.match(m, func(*Match[T]) bool {
		found = true
		return false
	})
	if !found {
		return true
	}
	return yield(m)
}

// backrefNode consumes one item equal to the index-th already-matched item.
// While the match is still empty, index 0 refers to the lookahead item, like
// Match.At.
type backrefNode[T comparable] struct {
	index int
}

func (n *backrefNode[T]) match(m *Match[T], yield func(*Match[T]) bool) bool {
	if m.end >= len(m.items) {
		return true
	}
	span := m.end - m.start
	var ref T
	switch {
	case span == 0 && n.index == 0:
		ref = m.items[m.end]
	default:
		j := n.index
		if j < 0 {
			j += span
		}
		if j < 0 || j >= span {
			return true
		}
		ref = m.items[m.start+j]
	}
	if ref == m.items[m.end] {
		return yield(m.advance(1))
	}
	return true
}

// pairNode matches from an occurrence of open up to the close that balances
// it. The scan walks item by item between delimiters, keeping a depth count
// for nested pairs; unbalanced input produces no candidates.
type pairNode[T comparable] struct {
	open, close node[T]
}

func (n *pairNode[T]) match(m *Match[T], yield func(*Match[T]) bool) bool {
	type frame struct {
		m     *Match[T]
		depth int
	}
	var stack []frame
	n.open.match(m, func(c *Match[T]) bool {
		stack = append(stack, frame{c, 1})
		return true
	})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var opens []*Match[T]
		n.open.match(f.m, func(c *Match[T]) bool {
			opens = append(opens, c)
			return true
		})
		if len(opens) > 0 {
			for _, c := range opens {
				stack = append(stack, frame{c, f.depth + 1})
			}
			continue
		}

		var closes []*Match[T]
		n.close.match(f.m, func(c *Match[T]) bool {
			closes = append(closes, c)
			return true
		})
		if len(closes) > 0 {
			if f.depth == 1 {
				for _, c := range closes {
					if !yield(c) {
						return false
					}
				}
				continue
			}
			for _, c := range closes {
				stack = append(stack, frame{c, f.depth - 1})
			}
			continue
		}

		if f.m.end < len(f.m.items) {
			stack = append(stack, frame{f.m.advance(1), f.depth})
		}
	}
	return true
}
