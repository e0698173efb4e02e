package listregex

import "iter"

// Rule names a pattern for a Scanner.
type Rule[T comparable] struct {
	Name    string
	Pattern any
}

// Scanner tokenizes a subject with an ordered list of named patterns: at each
// position the first rule that matches wins and the scan resumes after its
// match.
type Scanner[T comparable] struct {
	rules []scanRule[T]
}

type scanRule[T comparable] struct {
	name string
	prog node[T]
}

// NewScanner compiles the rules into a Scanner. Rule order is significant:
// earlier rules take priority at every position.
func NewScanner[T comparable](rules ...Rule[T]) (*Scanner[T], error) {
	s := &Scanner[T]{rules: make([]scanRule[T], len(rules))}
	for i, r := range rules {
		prog, err := compileForm[T](r.Pattern)
		if err != nil {
			return nil, err
		}
		s.rules[i] = scanRule[T]{name: r.Name, prog: prog}
	}
	return s, nil
}

// Scan returns a lazy iterator of (rule name, match) pairs covering the
// subject from the start. Scanning stops at the first position where no rule
// matches, or where the winning rule matches zero items, since the scan could
// not advance past it.
func (s *Scanner[T]) Scan(subject []T) iter.Seq2[string, *Match[T]] {
	return func(yield func(string, *Match[T]) bool) {
		at := 0
		for at < len(subject) {
			name, tok := s.scanOne(subject, at)
			if tok == nil || tok.end == at {
				return
			}
			if !yield(name, tok) {
				return
			}
			at = tok.end
		}
	}
}

func (s *Scanner[T]) scanOne(subject []T, at int) (string, *Match[T]) {
	for _, rule := range s.rules {
		var found *Match[T]
		rule.prog.match(newMatch(subject, at), func(c *Match[T]) bool {
			found = c
			return false
		})
		if found != nil {
			return rule.name, found
		}
	}
	return "", nil
}
