package expr

import "github.com/jacoelho/scan/scanner"

// ParseValue types a raw variable value: true, false and null map to their
// literals, text that scans entirely as a number becomes a float64, and
// anything else stays a string.
func ParseValue(text string) any {
	switch text {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}

	s := scanner.New([]rune(text))
	if number, ok := scanner.ScanDouble(s); ok && s.AtEnd() {
		return number
	}

	return text
}
