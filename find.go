package listregex

import "iter"

// Match attempts the pattern at the start of the subject and returns the
// engine's first candidate. Use FullMatch to also require that the whole
// subject is consumed.
func (r *Regex[T]) Match(subject []T) (*Match[T], error) {
	return r.matchAt(subject, 0)
}

// matchAt runs one anchored attempt and commits to the first candidate.
func (r *Regex[T]) matchAt(subject []T, at int) (*Match[T], error) {
	var found *Match[T]
	r.prog.match(newMatch(subject, at), func(c *Match[T]) bool {
		found = c
		return false
	})
	if found == nil {
		return nil, ErrNoMatch
	}
	return found, nil
}

// FullMatch attempts the pattern at the start of the subject and keeps
// backtracking until a candidate covers the whole subject.
func (r *Regex[T]) FullMatch(subject []T) (*Match[T], error) {
	var found *Match[T]
	r.prog.match(newMatch(subject, 0), func(c *Match[T]) bool {
		if c.end == len(subject) {
			found = c
			return false
		}
		return true
	})
	if found == nil {
		return nil, ErrNoMatch
	}
	return found, nil
}

// Search tries the pattern at offsets 0, 1, 2, ... and returns the first
// match found, i.e. the one with the smallest start offset.
func (r *Regex[T]) Search(subject []T) (*Match[T], error) {
	for at := 0; at <= len(subject); at++ {
		at = r.skipTo(subject, at)
		if at < 0 {
			break
		}
		if m, err := r.matchAt(subject, at); err == nil {
			return m, nil
		}
	}
	return nil, ErrNoMatch
}

// FindIter returns an iterator over successive non-overlapping matches. After
// a match over [s, e) the scan resumes at max(e, s+1), so even zero-width
// matches make forward progress.
//
// The sequence is lazy: matching work happens as the caller pulls matches.
// Each range over the returned iterator restarts the scan from the beginning.
func (r *Regex[T]) FindIter(subject []T) iter.Seq[*Match[T]] {
	return func(yield func(*Match[T]) bool) {
		at := 0
		for at <= len(subject) {
			at = r.skipTo(subject, at)
			if at < 0 {
				return
			}
			m, err := r.matchAt(subject, at)
			if err != nil {
				at++
				continue
			}
			if !yield(m) {
				return
			}
			at = max(m.end, m.start+1)
		}
	}
}

// FindAll returns the matched items of every non-overlapping match, in
// order. The sub-slices alias the subject.
func (r *Regex[T]) FindAll(subject []T) [][]T {
	var all [][]T
	for m := range r.FindIter(subject) {
		all = append(all, m.Matched())
	}
	return all
}

// Count returns the number of non-overlapping matches in the subject.
func (r *Regex[T]) Count(subject []T) int {
	n := 0
	for range r.FindIter(subject) {
		n++
	}
	return n
}

// skipTo advances at to the next offset where a match could start, using the
// literal prefilter when the subject is a byte slice. Returns -1 when no
// candidate offset remains.
func (r *Regex[T]) skipTo(subject []T, at int) int {
	if r.pre == nil {
		return at
	}
	bs, ok := any(subject).([]byte)
	if !ok {
		return at
	}
	return r.pre.Next(bs, at)
}
