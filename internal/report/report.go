package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/jacoelho/scan/internal/runs"
	"github.com/theory/jsonpath"
)

// Format determines how reports are printed.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported report format")
	ErrInvalidPath       = errors.New("invalid JSONPath")
)

// Report summarizes the runs found in one input.
type Report struct {
	File      string     `json:"file" yaml:"file"`
	Set       string     `json:"set" yaml:"set"`
	Matched   int        `json:"matched" yaml:"matched"`
	Unmatched int        `json:"unmatched" yaml:"unmatched"`
	Runs      []runs.Run `json:"runs" yaml:"runs"`
}

// New builds a report and counts its runs by kind.
func New(file, set string, found []runs.Run) Report {
	r := Report{File: file, Set: set, Runs: found}
	if r.Runs == nil {
		r.Runs = []runs.Run{}
	}

	for _, run := range found {
		switch run.Kind {
		case runs.KindMatch:
			r.Matched++
		case runs.KindUnmatched:
			r.Unmatched++
		}
	}

	return r
}

// HasUnmatched reports whether any input was left outside the set.
func (r Report) HasUnmatched() bool {
	return r.Unmatched > 0
}

// Write prints the report in the requested format.
func (r Report) Write(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(r)
	case FormatYAML:
		out, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		_, err = w.Write(out)
		return err
	case FormatText, "":
		if _, err := fmt.Fprintf(w, "%s: %d matched, %d unmatched (set %s)\n",
			r.File, r.Matched, r.Unmatched, r.Set); err != nil {
			return err
		}
		for _, run := range r.Runs {
			if _, err := fmt.Fprintf(w, "  %d:%d\t%s\t%q\n", run.Line, run.Column, run.Kind, run.Text); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Select evaluates a JSONPath expression against the JSON form of the report
// and returns the selected nodes.
func (r Report) Select(expr string) ([]any, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrInvalidPath, expr, err)
	}

	body, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}

	return path.Select(data), nil
}

// WriteNodes prints each node as compact JSON on its own line.
func WriteNodes(w io.Writer, nodes []any) error {
	encoder := json.NewEncoder(w)
	for _, node := range nodes {
		if err := encoder.Encode(node); err != nil {
			return err
		}
	}
	return nil
}
