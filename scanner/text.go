package scanner

import (
	"errors"
	"strconv"

	"github.com/jacoelho/scan/charset"
)

// FromString returns a rune scanner over text that skips whitespace and
// newlines before each scan.
func FromString(text string) *Scanner[rune] {
	s := New([]rune(text))
	s.SetSkip(charset.WhitespaceAndNewlines().Contains)
	return s
}

// ScanString consumes the runes of literal.
func ScanString(s *Scanner[rune], literal string) bool {
	return ScanMatchingSequence(s, []rune(literal))
}

// ScanCharacterFromSet consumes one rune contained in set.
func ScanCharacterFromSet(s *Scanner[rune], set *charset.Set[rune]) (rune, bool) {
	return s.ScanElement(set.Contains)
}

// ScanCharactersFromSet consumes the longest non-empty run of runes
// contained in set.
func ScanCharactersFromSet(s *Scanner[rune], set *charset.Set[rune]) (string, bool) {
	run, ok := s.ScanSequence(set.Contains)
	if !ok {
		return "", false
	}
	return string(run), true
}

// ScanDouble consumes a run of decimal digit characters and parses it as a
// float64. The run is matched by character class only, so input such as
// "1.2.3" is consumed by the first stage and rejected by the parse; either
// failure leaves the cursor unmoved. Values beyond the float64 range scan as
// ±Inf.
func ScanDouble(s *Scanner[rune]) (float64, bool) {
	digits := charset.DecimalDigits()

	return AttemptValue(s, true, func() (float64, bool) {
		text, ok := ScanCharactersFromSet(s, digits)
		if !ok {
			return 0, false
		}

		value, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		return value, true
	})
}

// RemainingString returns the unconsumed text, or "" at the end.
func RemainingString(s *Scanner[rune]) string {
	rest, ok := s.Remaining()
	if !ok {
		return ""
	}
	return string(rest)
}
