package listregex

// Sub returns a copy of the subject with every non-overlapping match replaced
// by repl.
func (r *Regex[T]) Sub(subject, repl []T) []T {
	out, _ := r.Subn(subject, repl)
	return out
}

// Subn is like Sub and additionally reports how many replacements were made.
func (r *Regex[T]) Subn(subject, repl []T) ([]T, int) {
	return r.SubnFunc(subject, func(*Match[T]) []T { return repl })
}

// SubFunc returns a copy of the subject with every non-overlapping match
// replaced by the items repl returns for it.
func (r *Regex[T]) SubFunc(subject []T, repl func(*Match[T]) []T) []T {
	out, _ := r.SubnFunc(subject, repl)
	return out
}

// SubnFunc is like SubFunc and additionally reports how many replacements
// were made. The result interleaves the verbatim gaps between matches with
// each match's replacement.
func (r *Regex[T]) SubnFunc(subject []T, repl func(*Match[T]) []T) ([]T, int) {
	out := make([]T, 0, len(subject))
	last, n := 0, 0
	for m := range r.FindIter(subject) {
		out = append(out, subject[last:m.start]...)
		out = append(out, repl(m)...)
		last = m.end
		n++
	}
	out = append(out, subject[last:]...)
	return out, n
}

// Split returns the sub-slices of the subject between non-overlapping
// matches. The matched items themselves are not included. A positive
// maxSplit limits the number of splits; the remainder is returned unsplit.
// The sub-slices alias the subject.
func (r *Regex[T]) Split(subject []T, maxSplit int) [][]T {
	var out [][]T
	last := 0
	for m := range r.FindIter(subject) {
		if maxSplit > 0 && len(out) >= maxSplit {
			break
		}
		out = append(out, subject[last:m.start])
		last = m.end
	}
	return append(out, subject[last:])
}
