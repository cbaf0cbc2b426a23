package expr

import (
	"strings"

	"github.com/jacoelho/scan/charset"
	"github.com/jacoelho/scan/scanner"
)

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenIdentifier
	tokenNumber
	tokenString
	tokenTrue
	tokenFalse
	tokenNull
	tokenEqual
	tokenNotEqual
	tokenAnd
	tokenOr
	tokenNot
	tokenLParen
	tokenRParen
)

type token struct {
	typ     tokenType
	literal string
	number  float64
	pos     int
}

var (
	digits          = charset.FromString("0123456789")
	identifierStart = charset.Letters().Union(charset.Of('_'))
	identifierPart  = identifierStart.Union(digits)
	quotes          = charset.FromString(`'"`)
)

// Longer operators come first so "!=" is not read as "!".
var operators = []struct {
	literal string
	typ     tokenType
}{
	{literal: "==", typ: tokenEqual},
	{literal: "!=", typ: tokenNotEqual},
	{literal: "&&", typ: tokenAnd},
	{literal: "||", typ: tokenOr},
	{literal: "!", typ: tokenNot},
	{literal: "(", typ: tokenLParen},
	{literal: ")", typ: tokenRParen},
}

var keywords = map[string]tokenType{
	"true":  tokenTrue,
	"false": tokenFalse,
	"null":  tokenNull,
}

func lex(input string) ([]token, error) {
	s := scanner.FromString(input)
	tokens := make([]token, 0, len(input)/2)

	for {
		s.Skip()
		if s.AtEnd() {
			break
		}
		pos := s.Location()

		if word, ok := scanIdentifier(s); ok {
			if typ, isKeyword := keywords[word]; isKeyword {
				tokens = append(tokens, token{typ: typ, pos: pos})
			} else {
				tokens = append(tokens, token{typ: tokenIdentifier, literal: word, pos: pos})
			}
			continue
		}

		if isNumberStart(s) {
			value, ok := scanner.ScanDouble(s)
			if !ok {
				return nil, expressionError("invalid number at position %d", pos)
			}
			tokens = append(tokens, token{typ: tokenNumber, number: value, pos: pos})
			continue
		}

		if current, _ := s.Current(); quotes.Contains(current) {
			literal, err := lexString(s)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{typ: tokenString, literal: literal, pos: pos})
			continue
		}

		if typ, ok := scanOperator(s); ok {
			tokens = append(tokens, token{typ: typ, pos: pos})
			continue
		}

		current, _ := s.Current()
		return nil, expressionError("unexpected character %q at position %d", current, pos)
	}

	tokens = append(tokens, token{typ: tokenEOF, pos: s.Len()})
	return tokens, nil
}

func scanIdentifier(s *scanner.Scanner[rune]) (string, bool) {
	first, ok := scanner.ScanCharacterFromSet(s, identifierStart)
	if !ok {
		return "", false
	}

	rest := s.ScanUpTo(func(r rune) bool { return !identifierPart.Contains(r) })
	return string(first) + string(rest), true
}

// isNumberStart reports whether a digit, or '-' followed by a digit, is under
// the cursor.
func isNumberStart(s *scanner.Scanner[rune]) bool {
	return s.Peek(func() bool {
		scanner.ScanEqual(s, '-')
		_, ok := scanner.ScanCharacterFromSet(s, digits)
		return ok
	})
}

func scanOperator(s *scanner.Scanner[rune]) (tokenType, bool) {
	for _, op := range operators {
		if scanner.ScanString(s, op.literal) {
			return op.typ, true
		}
	}
	return tokenEOF, false
}

func lexString(s *scanner.Scanner[rune]) (string, error) {
	start := s.Location()
	quote, _ := s.Next()
	var b strings.Builder

	for {
		r, ok := s.Next()
		if !ok || r == '\n' || r == '\r' {
			return "", expressionError("unterminated string at position %d", start)
		}

		switch r {
		case quote:
			return b.String(), nil
		case '\\':
			escaped, ok := s.Next()
			if !ok {
				return "", expressionError("unterminated escape sequence at position %d", start)
			}
			switch escaped {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteRune(escaped)
			}
		default:
			b.WriteRune(r)
		}
	}
}
