// Package scanner provides a backtracking cursor over an in-memory sequence.
//
// A Scanner walks a []T with an integer cursor. Every scan either succeeds and
// commits its movement, or fails and leaves the cursor exactly where it was:
// all derived scans are built on Attempt, which saves the location, runs a
// body and restores the location when the body reports failure. Peek always
// restores. Grammars are expressed by composing these speculative scans.
//
// An optional skip predicate marks ignorable elements (typically whitespace)
// that are passed over before each substantive scan.
//
// Failure is reported through false or a comma-ok result, never through
// errors or panics. A Scanner is not safe for concurrent use; distinct
// scanners may share the same read-only slice.
package scanner

// Scanner is a cursor over seq. The location ranges over [0, len(seq)],
// where len(seq) is the end position.
type Scanner[T any] struct {
	seq  []T
	loc  int
	skip func(T) bool
}

// New returns a scanner positioned at the start of seq. The scanner never
// modifies seq.
func New[T any](seq []T) *Scanner[T] {
	return &Scanner[T]{seq: seq}
}

// SetSkip sets the predicate for elements passed over by Skip. nil disables
// skipping.
func (s *Scanner[T]) SetSkip(skip func(T) bool) {
	s.skip = skip
}

// Location returns the cursor index.
func (s *Scanner[T]) Location() int {
	return s.loc
}

// Len returns the length of the scanned sequence.
func (s *Scanner[T]) Len() int {
	return len(s.seq)
}

// Reset moves the cursor back to the start.
func (s *Scanner[T]) Reset() {
	s.loc = 0
}

// AtBeginning reports whether the cursor is at index 0.
func (s *Scanner[T]) AtBeginning() bool {
	return s.loc == 0
}

// AtEnd reports whether every element has been consumed.
func (s *Scanner[T]) AtEnd() bool {
	return s.loc == len(s.seq)
}

// AtSkipped reports whether the current element satisfies the skip
// predicate. It is false at the end or when no predicate is set.
func (s *Scanner[T]) AtSkipped() bool {
	if s.AtEnd() || s.skip == nil {
		return false
	}
	return s.skip(s.seq[s.loc])
}

// Current returns the element under the cursor.
func (s *Scanner[T]) Current() (T, bool) {
	if s.AtEnd() {
		var zero T
		return zero, false
	}
	return s.seq[s.loc], true
}

// Remaining returns the elements from the cursor to the end. It does not
// apply the skip predicate.
func (s *Scanner[T]) Remaining() ([]T, bool) {
	if s.AtEnd() {
		return nil, false
	}
	return s.seq[s.loc:], true
}

// Next returns the current element and advances past it. At the end it
// returns false and does not move.
func (s *Scanner[T]) Next() (T, bool) {
	e, ok := s.Current()
	if ok {
		s.loc++
	}
	return e, ok
}

// Previous moves back one element unless already at the beginning.
func (s *Scanner[T]) Previous() {
	if s.loc > 0 {
		s.loc--
	}
}

// Skip advances past elements satisfying the skip predicate.
func (s *Scanner[T]) Skip() {
	if s.skip == nil {
		return
	}

	skip := s.skip
	s.ScanUpTo(func(e T) bool { return !skip(e) })
}

// Attempt runs body and keeps its movement only if it returns true. When
// skip is set, Skip runs first and is undone together with body on failure.
func (s *Scanner[T]) Attempt(skip bool, body func() bool) bool {
	saved := s.loc
	if skip {
		s.Skip()
	}

	if !body() {
		s.loc = saved
		return false
	}
	return true
}

// AttemptValue is Attempt for bodies producing a value.
func AttemptValue[T, R any](s *Scanner[T], skip bool, body func() (R, bool)) (R, bool) {
	saved := s.loc
	if skip {
		s.Skip()
	}

	v, ok := body()
	if !ok {
		s.loc = saved
	}
	return v, ok
}

// Peek runs body and restores the location whatever the outcome.
func (s *Scanner[T]) Peek(body func() bool) bool {
	saved := s.loc
	ok := body()
	s.loc = saved
	return ok
}

// PeekValue is Peek for bodies producing a value.
func PeekValue[T, R any](s *Scanner[T], body func() (R, bool)) (R, bool) {
	saved := s.loc
	v, ok := body()
	s.loc = saved
	return v, ok
}

// ScanUpTo advances until test holds for the current element or the end is
// reached, and returns the elements passed over. The matching element is
// left unconsumed. It never fails and never applies the skip predicate.
func (s *Scanner[T]) ScanUpTo(test func(T) bool) []T {
	start := s.loc
	for !s.AtEnd() && !test(s.seq[s.loc]) {
		s.loc++
	}
	return s.seq[start:s.loc]
}

// ScanElement consumes one element if it passes test.
func (s *Scanner[T]) ScanElement(test func(T) bool) (T, bool) {
	return AttemptValue(s, true, func() (T, bool) {
		e, ok := s.Next()
		if !ok || !test(e) {
			var zero T
			return zero, false
		}
		return e, true
	})
}

// ScanSequence consumes the longest run of elements passing test. Consuming
// nothing is a failure.
func (s *Scanner[T]) ScanSequence(test func(T) bool) ([]T, bool) {
	return AttemptValue(s, true, func() ([]T, bool) {
		start := s.loc
		for {
			e, ok := s.Next()
			if !ok {
				break
			}
			if !test(e) {
				s.Previous()
				break
			}
		}

		if s.loc == start {
			return nil, false
		}
		return s.seq[start:s.loc], true
	})
}
