package profile

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jacoelho/scan/charset"
)

// Registry resolves set names to compiled sets: profile definitions first,
// then the built-in charset names.
type Registry struct {
	sets map[string]*charset.Set[rune]
	skip *charset.Set[rune]
}

// Builtin returns a registry holding only the built-in sets.
func Builtin() *Registry {
	return &Registry{sets: map[string]*charset.Set[rune]{}}
}

// Lookup returns the set registered under name.
func (r *Registry) Lookup(name string) (*charset.Set[rune], bool) {
	if set, ok := r.sets[name]; ok {
		return set, true
	}
	return charset.Lookup(name)
}

// Skip returns the skip set, or nil when the profile names none.
func (r *Registry) Skip() *charset.Set[rune] {
	return r.skip
}

// Names lists every resolvable name in sorted order.
func (r *Registry) Names() []string {
	names := slices.Collect(maps.Keys(r.sets))
	for _, name := range charset.Names() {
		if _, ok := r.sets[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// compiler tracks the definitions being resolved so that a reference back
// into the current chain is reported as a cycle.
type compiler struct {
	defs     map[string]Definition
	compiled map[string]*charset.Set[rune]
	path     []string
}

// Compile builds every definition of the profile.
func (p *Profile) Compile() (*Registry, error) {
	c := &compiler{
		defs:     p.Sets,
		compiled: make(map[string]*charset.Set[rune], len(p.Sets)),
	}

	for _, name := range slices.Sorted(maps.Keys(p.Sets)) {
		if _, err := c.resolve(name); err != nil {
			return nil, err
		}
	}

	registry := &Registry{sets: c.compiled}
	if p.Skip != "" {
		skip, ok := registry.Lookup(p.Skip)
		if !ok {
			return nil, fmt.Errorf("%w: skip %q", ErrUnknownSet, p.Skip)
		}
		registry.skip = skip
	}

	return registry, nil
}

func (c *compiler) resolve(name string) (*charset.Set[rune], error) {
	if set, ok := c.compiled[name]; ok {
		return set, nil
	}

	def, ok := c.defs[name]
	if !ok {
		set, builtin := charset.Lookup(name)
		if !builtin {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSet, name)
		}
		return set, nil
	}

	if slices.Contains(c.path, name) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrCycle, strings.Join(c.path, " -> "), name)
	}
	c.path = append(c.path, name)
	defer func() { c.path = c.path[:len(c.path)-1] }()

	set, err := c.build(def)
	if err != nil {
		return nil, fmt.Errorf("set %q: %w", name, err)
	}

	c.compiled[name] = set
	return set, nil
}

func (c *compiler) build(def Definition) (*charset.Set[rune], error) {
	var set *charset.Set[rune]
	if def.HasChars {
		set = charset.FromString(def.Chars)
	}

	for _, ref := range def.Include {
		other, err := c.resolve(ref)
		if err != nil {
			return nil, err
		}
		if set == nil {
			set = other
			continue
		}
		set = set.Union(other)
	}

	for _, ref := range def.Intersect {
		other, err := c.resolve(ref)
		if err != nil {
			return nil, err
		}
		set = set.Intersect(other)
	}

	for _, ref := range def.Exclude {
		other, err := c.resolve(ref)
		if err != nil {
			return nil, err
		}
		set = set.Subtract(other)
	}

	if def.Invert {
		set = set.Invert()
	}

	return set, nil
}
