package listregex

// compileForm normalizes one user pattern value into a node. The accepted
// forms, in the order they are recognized:
//
//   - an Expr produced by a combinator function
//   - a []T, []Expr or []any, compiled as an ordered sequence
//   - a func(*Match[T]) int or func(*Match[T]) bool predicate
//   - any bare T value, compiled as a literal
func compileForm[T comparable](pattern any) (node[T], error) {
	switch p := pattern.(type) {
	case Expr:
		return compileExpr[T](p)
	case []any:
		return compileSeq[T](p)
	case []Expr:
		forms := make([]any, len(p))
		for i, e := range p {
			forms[i] = e
		}
		return compileSeq[T](forms)
	case []T:
		forms := make([]any, len(p))
		for i, v := range p {
			forms[i] = v
		}
		return compileSeq[T](forms)
	case func(*Match[T]) int:
		return &predNode[T]{fn: p}, nil
	case func(*Match[T]) bool:
		return &predNode[T]{fn: func(m *Match[T]) int {
			if p(m) {
				return 1
			}
			return 0
		}}, nil
	case T:
		return &litNode[T]{value: p}, nil
	default:
		return nil, &CompileError{Form: pattern, Err: ErrUnsupportedPattern}
	}
}

func compileSeq[T comparable](forms []any) (node[T], error) {
	children := make([]node[T], len(forms))
	for i, f := range forms {
		child, err := compileForm[T](f)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return &seqNode[T]{children: children}, nil
}

func compileExpr[T comparable](e Expr) (node[T], error) {
	subs := make([]node[T], len(e.subs))
	for i, f := range e.subs {
		child, err := compileForm[T](f)
		if err != nil {
			return nil, err
		}
		subs[i] = child
	}

	switch e.op {
	case opAny:
		return &anyNode[T]{}, nil
	case opStart:
		return &startNode[T]{}, nil
	case opEnd:
		return &endNode[T]{}, nil
	case opRepeat:
		if e.min < 0 || (e.max != Unbounded && e.max < e.min) {
			return nil, &CompileError{Form: e, Err: ErrBadRepeat}
		}
		return &repeatNode[T]{child: subs[0], min: e.min, max: e.max, greedy: true}, nil
	case opEither:
		return &eitherNode[T]{alts: subs}, nil
	case opBoth:
		return &bothNode[T]{alts: subs}, nil
	case opNegate:
		w, ok := fixedWidth(subs[0])
		if !ok {
			return nil, &CompileError{Form: e, Err: ErrVariableWidthNegate}
		}
		return &negateNode[T]{child: subs[0], width: w}, nil
	case opLookahead:
		return &lookaheadNode[T]{child: subs[0]}, nil
	case opPair:
		return &pairNode[T]{open: subs[0], close: subs[1]}, nil
	case opBackref:
		return &backrefNode[T]{index: e.index}, nil
	default:
		return nil, &CompileError{Form: e, Err: ErrUnsupportedPattern}
	}
}

// fixedWidth reports the number of items a node consumes when that number is
// the same for every possible match.
func fixedWidth[T comparable](n node[T]) (int, bool) {
	switch n := n.(type) {
	case *litNode[T], *anyNode[T], *predNode[T], *backrefNode[T]:
		return 1, true
	case *startNode[T], *endNode[T], *lookaheadNode[T]:
		return 0, true
	case *negateNode[T]:
		return n.width, true
	case *seqNode[T]:
		total := 0
		for _, c := range n.children {
			w, ok := fixedWidth(c)
			if !ok {
				return 0, false
			}
			total += w
		}
		return total, true
	case *eitherNode[T]:
		return commonWidth(n.alts)
	case *bothNode[T]:
		return commonWidth(n.alts)
	case *repeatNode[T]:
		if n.min != n.max {
			return 0, false
		}
		w, ok := fixedWidth(n.child)
		if !ok {
			return 0, false
		}
		return w * n.min, true
	default:
		return 0, false
	}
}

func commonWidth[T comparable](alts []node[T]) (int, bool) {
	if len(alts) == 0 {
		return 0, false
	}
	w, ok := fixedWidth(alts[0])
	if !ok {
		return 0, false
	}
	for _, alt := range alts[1:] {
		aw, ok := fixedWidth(alt)
		if !ok || aw != w {
			return 0, false
		}
	}
	return w, true
}
