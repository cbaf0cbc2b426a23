package runs

import (
	"github.com/jacoelho/scan/charset"
	"github.com/jacoelho/scan/scanner"
)

// Kind classifies a run.
type Kind string

const (
	KindMatch     Kind = "match"
	KindUnmatched Kind = "unmatched"
)

// Run is a stretch of input. Offset counts runes from the start of the text;
// Line and Column are 1-based and only '\n' starts a new line.
type Run struct {
	Kind   Kind   `json:"kind" yaml:"kind"`
	Text   string `json:"text" yaml:"text"`
	Offset int    `json:"offset" yaml:"offset"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

// Find splits text into maximal runs of set. Runes in skip are passed over
// between runs; any other stretch of runes outside set is returned as a
// single unmatched run. skip may be nil.
func Find(text string, set, skip *charset.Set[rune]) []Run {
	seq := []rune(text)
	s := scanner.New(seq)

	stop := set
	if skip != nil {
		s.SetSkip(skip.Contains)
		stop = set.Union(skip)
	}

	var (
		out []Run
		pos = position{line: 1, column: 1}
		at  int
	)

	for {
		s.Skip()
		pos.advance(seq[at:s.Location()])
		at = s.Location()
		if s.AtEnd() {
			break
		}

		run := Run{Kind: KindMatch, Offset: at, Line: pos.line, Column: pos.column}
		if matched, ok := scanner.ScanCharactersFromSet(s, set); ok {
			run.Text = matched
		} else {
			run.Kind = KindUnmatched
			run.Text = string(s.ScanUpTo(stop.Contains))
		}
		out = append(out, run)

		pos.advance(seq[at:s.Location()])
		at = s.Location()
	}

	return out
}

type position struct {
	line, column int
}

func (p *position) advance(consumed []rune) {
	for _, r := range consumed {
		if r == '\n' {
			p.line++
			p.column = 1
			continue
		}
		p.column++
	}
}
