package profile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
)

// Profile is a file of named charset definitions.
//
//	skip: whitespace_and_newlines
//	sets:
//	  consonants:
//	    include: [letters]
//	    exclude: [vowels]
//	  vowels:
//	    chars: "aeiouAEIOU"
type Profile struct {
	Skip string                `yaml:"skip"`
	Sets map[string]Definition `yaml:"sets"`
}

// Definition describes one set. The base is the union of Chars and every
// Include reference; each Intersect reference is then intersected, each
// Exclude reference subtracted, and Invert applied last.
type Definition struct {
	Chars     string
	HasChars  bool
	Include   []string
	Intersect []string
	Exclude   []string
	Invert    bool
}

// UnmarshalYAML decodes a definition mapping. Unknown keys are rejected and
// list fields accept either a single name or a sequence of names.
func (d *Definition) UnmarshalYAML(node ast.Node) error {
	mapNode, ok := node.(*ast.MappingNode)
	if !ok {
		return errors.New("set definition must be a mapping")
	}

	for _, pair := range mapNode.Values {
		key, ok := pair.Key.(*ast.StringNode)
		if !ok {
			return errors.New("set definition key must be a string")
		}

		var err error
		switch key.Value {
		case "chars":
			str, ok := pair.Value.(*ast.StringNode)
			if !ok {
				return errors.New("chars must be a string")
			}
			d.Chars = str.Value
			d.HasChars = true
		case "include":
			d.Include, err = nodeToNames(pair.Value)
		case "intersect":
			d.Intersect, err = nodeToNames(pair.Value)
		case "exclude":
			d.Exclude, err = nodeToNames(pair.Value)
		case "invert":
			b, ok := pair.Value.(*ast.BoolNode)
			if !ok {
				return errors.New("invert must be a boolean")
			}
			d.Invert = b.Value
		default:
			return fmt.Errorf("unsupported set definition key %q: use chars, include, intersect, exclude or invert", key.Value)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key.Value, err)
		}
	}

	if !d.HasChars && len(d.Include) == 0 {
		return errors.New("set definition needs chars or include")
	}

	return nil
}

func nodeToNames(node ast.Node) ([]string, error) {
	switch n := node.(type) {
	case *ast.StringNode:
		return []string{n.Value}, nil
	case *ast.SequenceNode:
		names := make([]string, 0, len(n.Values))
		for i, item := range n.Values {
			str, ok := item.(*ast.StringNode)
			if !ok {
				return nil, fmt.Errorf("entry at index %d must be a set name", i)
			}
			names = append(names, str.Value)
		}
		return names, nil
	default:
		return nil, errors.New("must be a set name or a list of set names")
	}
}

// Parse decodes a profile. An empty document yields an empty profile.
func Parse(r io.Reader) (*Profile, error) {
	var p Profile

	decoder := yaml.NewDecoder(r, yaml.Strict())
	if err := decoder.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed to decode YAML: %v", ErrInvalidProfile, err)
	}

	return &p, nil
}

// Load reads and decodes the profile at path.
func Load(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profile %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}
