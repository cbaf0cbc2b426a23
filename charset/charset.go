// Package charset provides an immutable predicate algebra over elements.
//
// A Set is an expression tree built from finite leaf sets combined with
// inversion, union and intersection. Combinators allocate a new node that
// references the existing operands, so building a set is O(1) and evaluation
// walks the tree on every Contains call.
//
//	vowels := charset.FromString("aeiou")
//	consonants := charset.Lowercase().Subtract(vowels)
//	consonants.Contains('b') // true
//
// Nodes are never mutated after construction and may be shared freely,
// including across goroutines. A nil *Set is the empty set.
package charset

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type kind uint8

const (
	kindLeaf kind = iota
	kindInverted
	kindUnion
	kindIntersection
)

// Set is a recursively defined membership predicate over elements of type E.
type Set[E comparable] struct {
	kind    kind
	members map[E]struct{} // leaf only
	left    *Set[E]        // inverted child, or left operand
	right   *Set[E]
}

// Of returns a leaf set holding exactly the given elements.
func Of[E comparable](elements ...E) *Set[E] {
	members := make(map[E]struct{}, len(elements))
	for _, e := range elements {
		members[e] = struct{}{}
	}
	return &Set[E]{kind: kindLeaf, members: members}
}

// FromString returns a leaf set holding the runes of s.
func FromString(s string) *Set[rune] {
	return Of([]rune(s)...)
}

// Contains reports whether e satisfies the predicate.
func (s *Set[E]) Contains(e E) bool {
	if s == nil {
		return false
	}

	switch s.kind {
	case kindInverted:
		return !s.left.Contains(e)
	case kindUnion:
		return s.left.Contains(e) || s.right.Contains(e)
	case kindIntersection:
		return s.left.Contains(e) && s.right.Contains(e)
	default:
		_, ok := s.members[e]
		return ok
	}
}

// Invert returns the complement of s.
func (s *Set[E]) Invert() *Set[E] {
	return &Set[E]{kind: kindInverted, left: s}
}

// Union returns a set containing elements of either s or other.
func (s *Set[E]) Union(other *Set[E]) *Set[E] {
	return &Set[E]{kind: kindUnion, left: s, right: other}
}

// Intersect returns a set containing elements of both s and other.
func (s *Set[E]) Intersect(other *Set[E]) *Set[E] {
	return &Set[E]{kind: kindIntersection, left: s, right: other}
}

// Subtract returns a set containing elements of s that are not in other.
func (s *Set[E]) Subtract(other *Set[E]) *Set[E] {
	return s.Intersect(other.Invert())
}

// String renders the expression tree. Runes and strings are quoted, other
// elements use their %v form. Leaf members are ordered by rendered length,
// then text, so the output is stable and integers list in numeric order.
func (s *Set[E]) String() string {
	var b strings.Builder
	s.write(&b)
	return b.String()
}

func (s *Set[E]) write(b *strings.Builder) {
	if s == nil {
		b.WriteString("[]")
		return
	}

	switch s.kind {
	case kindInverted:
		b.WriteByte('!')
		s.left.write(b)
	case kindUnion, kindIntersection:
		op := " | "
		if s.kind == kindIntersection {
			op = " & "
		}
		b.WriteByte('(')
		s.left.write(b)
		b.WriteString(op)
		s.right.write(b)
		b.WriteByte(')')
	default:
		rendered := make([]string, 0, len(s.members))
		for e := range s.members {
			rendered = append(rendered, render(e))
		}
		slices.SortFunc(rendered, func(a, b string) int {
			if c := cmp.Compare(len(a), len(b)); c != 0 {
				return c
			}
			return strings.Compare(a, b)
		})

		b.WriteByte('[')
		b.WriteString(strings.Join(rendered, " "))
		b.WriteByte(']')
	}
}

func render(e any) string {
	switch v := e.(type) {
	case rune:
		return strconv.QuoteRune(v)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprint(v)
	}
}
