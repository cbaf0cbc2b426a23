package charset

// Named rune sets. Each call builds a fresh tree.

// Whitespace holds space, tab, newline and carriage return.
func Whitespace() *Set[rune] {
	return FromString(" \t\n\r")
}

// Newlines holds newline and carriage return.
func Newlines() *Set[rune] {
	return FromString("\n\r")
}

// WhitespaceAndNewlines is the union of Whitespace and Newlines.
func WhitespaceAndNewlines() *Set[rune] {
	return Whitespace().Union(Newlines())
}

// DecimalDigits also holds the exponent, sign and point characters, so it
// matches the characters of a float literal without checking their order.
func DecimalDigits() *Set[rune] {
	return FromString("0123456789Ee-.")
}

// Lowercase holds the ASCII lowercase letters.
func Lowercase() *Set[rune] {
	return FromString("abcdefghijklmnopqrstuvwxyz")
}

// Uppercase holds the ASCII uppercase letters.
func Uppercase() *Set[rune] {
	return FromString("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
}

// Letters is the union of Lowercase and Uppercase.
func Letters() *Set[rune] {
	return Lowercase().Union(Uppercase())
}

// Alphanumeric is the union of Letters and DecimalDigits.
func Alphanumeric() *Set[rune] {
	return Letters().Union(DecimalDigits())
}

// Punctuation holds the sentence punctuation marks .,!?;:
func Punctuation() *Set[rune] {
	return FromString(".,!?;:")
}

var named = map[string]func() *Set[rune]{
	"whitespace":              Whitespace,
	"newlines":                Newlines,
	"whitespace_and_newlines": WhitespaceAndNewlines,
	"decimal_digits":          DecimalDigits,
	"lowercase":               Lowercase,
	"uppercase":               Uppercase,
	"letters":                 Letters,
	"alphanumeric":            Alphanumeric,
	"punctuation":             Punctuation,
}

// Lookup returns the named rune set, using the snake_case names of the
// constructors above (e.g. "decimal_digits").
func Lookup(name string) (*Set[rune], bool) {
	build, ok := named[name]
	if !ok {
		return nil, false
	}
	return build(), true
}

// Names lists the names accepted by Lookup.
func Names() []string {
	return []string{
		"alphanumeric",
		"decimal_digits",
		"letters",
		"lowercase",
		"newlines",
		"punctuation",
		"uppercase",
		"whitespace",
		"whitespace_and_newlines",
	}
}
