package charset

import (
	"slices"
	"testing"
)

func TestSetContains(t *testing.T) {
	t.Parallel()

	set := Of('a', '&', 'é')

	for _, r := range []rune{'a', '&', 'é'} {
		if !set.Contains(r) {
			t.Fatalf("Contains(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{'b', 'e', '\x00', '\x01', '\x10'} {
		if set.Contains(r) {
			t.Fatalf("Contains(%q) = true, want false", r)
		}
	}
}

func TestSetInvert(t *testing.T) {
	t.Parallel()

	set := Of('a', '&', 'é').Invert()

	for _, r := range []rune{'a', '&', 'é'} {
		if set.Contains(r) {
			t.Fatalf("Invert().Contains(%q) = true, want false", r)
		}
	}
	for _, r := range []rune{'b', '\x00', '\x01', '\x10'} {
		if !set.Contains(r) {
			t.Fatalf("Invert().Contains(%q) = false, want true", r)
		}
	}
}

func TestSetCombinators(t *testing.T) {
	t.Parallel()

	lowercase := FromString("abcdefghijklmnopqrstuvwxyz")
	digits := FromString("0123456789")
	vowels := FromString("aeiou")
	first := FromString("abcdefghijklmnopqr")
	last := FromString("ijklmnopqrstuvwxyz")

	tests := []struct {
		name string
		set  *Set[rune]
		in   string
		out  string
	}{
		{
			name: "union",
			set:  lowercase.Union(digits),
			in:   "amz059",
			out:  "AZ\x00é@",
		},
		{
			name: "intersection",
			set:  first.Intersect(last),
			in:   "imr",
			out:  "dwM€",
		},
		{
			name: "subtraction",
			set:  lowercase.Subtract(vowels),
			in:   "bz",
			out:  "aeiouAB\x00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, r := range tt.in {
				if !tt.set.Contains(r) {
					t.Fatalf("Contains(%q) = false, want true", r)
				}
			}
			for _, r := range tt.out {
				if tt.set.Contains(r) {
					t.Fatalf("Contains(%q) = true, want false", r)
				}
			}
		})
	}
}

func TestSetAlgebra(t *testing.T) {
	t.Parallel()

	p := FromString("abcdef")
	q := FromString("defghi")
	samples := []rune("abcdefghijz\x00 ")

	for _, x := range samples {
		if got, want := p.Invert().Invert().Contains(x), p.Contains(x); got != want {
			t.Fatalf("double inversion of %q = %v, want %v", x, got, want)
		}
		if got, want := p.Union(q).Contains(x), p.Contains(x) || q.Contains(x); got != want {
			t.Fatalf("union of %q = %v, want %v", x, got, want)
		}
		if got, want := p.Subtract(q).Contains(x), p.Contains(x) && !q.Contains(x); got != want {
			t.Fatalf("subtract of %q = %v, want %v", x, got, want)
		}

		left := p.Union(q).Invert().Contains(x)
		right := p.Invert().Intersect(q.Invert()).Contains(x)
		if left != right {
			t.Fatalf("de morgan for %q: %v != %v", x, left, right)
		}
	}
}

func TestSetSharedOperandsAreNotMutated(t *testing.T) {
	t.Parallel()

	base := FromString("xyz")
	_ = base.Invert()
	_ = base.Union(FromString("abc"))

	if base.Contains('a') || !base.Contains('x') {
		t.Fatal("combinators changed their operand")
	}
}

func TestNilSetIsEmpty(t *testing.T) {
	t.Parallel()

	var empty *Set[int]
	if empty.Contains(0) {
		t.Fatal("nil set Contains(0) = true, want false")
	}
	if !empty.Invert().Contains(0) {
		t.Fatal("inverted nil set Contains(0) = false, want true")
	}
	if got := empty.String(); got != "[]" {
		t.Fatalf("String() = %q, want %q", got, "[]")
	}
}

func TestSetString(t *testing.T) {
	t.Parallel()

	set := Of('b', 'a').Union(Of('c').Invert()).Intersect(Of('d'))
	want := `((['a' 'b'] | !['c']) & ['d'])`
	if got := set.String(); got != want {
		t.Fatalf("String() = %s, want %s", got, want)
	}
}

func TestSetStringElementTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "ints", got: Of(1000, 65, 9).Invert().String(), want: "![9 65 1000]"},
		{name: "floats", got: Of(1.5, -2.0).String(), want: "[-2 1.5]"},
		{name: "strings", got: Of("b", "a").Union(Of("c")).String(), want: `(["a" "b"] | ["c"])`},
		{name: "runes", got: Of('\n', 'z').String(), want: `['z' '\n']`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.got != tt.want {
				t.Fatalf("String() = %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		if _, ok := Lookup(name); !ok {
			t.Fatalf("Lookup(%q) not found", name)
		}
	}

	if _, ok := Lookup("emoji"); ok {
		t.Fatal(`Lookup("emoji") found, want missing`)
	}

	if !slices.IsSorted(Names()) {
		t.Fatal("Names() is not sorted")
	}

	digits, _ := Lookup("decimal_digits")
	for _, r := range "0123456789Ee-." {
		if !digits.Contains(r) {
			t.Fatalf("decimal_digits.Contains(%q) = false", r)
		}
	}
	if digits.Contains('+') {
		t.Fatal("decimal_digits.Contains('+') = true")
	}

	alnum, _ := Lookup("alphanumeric")
	if !alnum.Contains('Q') || !alnum.Contains('7') || alnum.Contains('_') {
		t.Fatal("alphanumeric membership mismatch")
	}
}
