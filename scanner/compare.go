package scanner

import "slices"

// ScanEqual consumes one element equal to e.
func ScanEqual[T comparable](s *Scanner[T], e T) bool {
	_, ok := s.ScanElement(func(current T) bool { return current == e })
	return ok
}

// ScanMatchingSequence consumes len(target) elements if the upcoming input
// equals target element by element. It consumes nothing otherwise, including
// when the input ends first.
func ScanMatchingSequence[T comparable](s *Scanner[T], target []T) bool {
	return s.Attempt(true, func() bool {
		for _, want := range target {
			got, ok := s.Next()
			if !ok || got != want {
				return false
			}
		}
		return true
	})
}

// ScanElementFromSequence consumes one element contained in candidates.
func ScanElementFromSequence[T comparable](s *Scanner[T], candidates []T) (T, bool) {
	return s.ScanElement(func(e T) bool { return slices.Contains(candidates, e) })
}

// ScanUpToElementFromSet is ScanUpTo with set membership as the test.
func ScanUpToElementFromSet[T comparable](s *Scanner[T], set map[T]struct{}) []T {
	return s.ScanUpTo(func(e T) bool {
		_, ok := set[e]
		return ok
	})
}

// ScanElementFromSet consumes one element contained in set.
func ScanElementFromSet[T comparable](s *Scanner[T], set map[T]struct{}) (T, bool) {
	return s.ScanElement(func(e T) bool {
		_, ok := set[e]
		return ok
	})
}

// ScanSequenceFromSet consumes the longest run of elements contained in set.
func ScanSequenceFromSet[T comparable](s *Scanner[T], set map[T]struct{}) ([]T, bool) {
	return s.ScanSequence(func(e T) bool {
		_, ok := set[e]
		return ok
	})
}
