package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacoelho/scan/internal/expr"
	"github.com/jacoelho/scan/internal/report"
)

// Command selects what scankit does.
type Command string

const (
	CommandRuns Command = "runs"
	CommandEval Command = "eval"
)

var (
	ErrNoArguments           = errors.New("no arguments provided")
	ErrHelp                  = errors.New("help requested")
	ErrUnknownCommand        = errors.New("unknown command")
	ErrMissingSet            = errors.New("-set is required")
	ErrMissingFile           = errors.New("exactly one input file is required")
	ErrMissingExpression     = errors.New("exactly one expression is required")
	ErrInvalidReportFormat   = errors.New("-report must be one of: text, json, yaml")
	ErrInvalidVariableFormat = errors.New("variable must be in format name=value")
	ErrEmptyVariableName     = errors.New("variable name cannot be empty")
)

// Config holds the parsed options of one scankit invocation.
type Config struct {
	Command Command

	// runs
	InputFile    string
	SetName      string
	SkipName     string
	ProfileFile  string
	ReportFormat report.Format
	JSONPath     string

	// eval
	Expression string
	Variables  map[string]any
}

// variablesFlag implements flag.Value for repeated -variable flags. Values are
// typed with expr.ParseValue.
type variablesFlag map[string]any

func (v variablesFlag) String() string {
	var pairs []string
	for k, val := range v {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, val))
	}
	return strings.Join(pairs, ",")
}

func (v variablesFlag) Set(value string) error {
	name, raw, ok := strings.Cut(value, "=")
	if !ok {
		return fmt.Errorf("%w, got: %s", ErrInvalidVariableFormat, value)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyVariableName
	}

	v[name] = expr.ParseValue(raw)
	return nil
}

// Parse parses and validates CLI arguments. args[0] is the program name and
// args[1] the command.
func Parse(args []string) (*Config, error) {
	if len(args) < 2 {
		return nil, ErrNoArguments
	}

	switch args[1] {
	case "-h", "-help", "--help", "help":
		return nil, ErrHelp
	case string(CommandRuns):
		return parseRuns(args[1:])
	case string(CommandEval):
		return parseEval(args[1:])
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, args[1])
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ErrHelp
		}
		return fmt.Errorf("parse arguments: %w", err)
	}
	return nil
}

func parseRuns(args []string) (*Config, error) {
	fs := newFlagSet(args[0])

	set := fs.String("set", "", "Name of the character set to scan for")
	skip := fs.String("skip", "", "Name of the set passed over between runs (overrides the profile)")
	profile := fs.String("profile", "", "Path to a YAML profile defining named sets")
	reportFormat := fs.String("report", "text", "Report format: text, json or yaml")
	jsonPath := fs.String("jsonpath", "", "JSONPath expression applied to the JSON report")

	if err := parseFlags(fs, args[1:]); err != nil {
		return nil, err
	}

	if *set == "" {
		return nil, ErrMissingSet
	}
	if fs.NArg() != 1 {
		return nil, ErrMissingFile
	}

	input := fs.Arg(0)
	if _, err := os.Stat(input); err != nil {
		return nil, fmt.Errorf("input file not accessible: %w", err)
	}
	if *profile != "" {
		if _, err := os.Stat(*profile); err != nil {
			return nil, fmt.Errorf("profile file not accessible: %w", err)
		}
	}

	format, err := parseReportFormat(*reportFormat)
	if err != nil {
		return nil, err
	}

	return &Config{
		Command:      CommandRuns,
		InputFile:    input,
		SetName:      *set,
		SkipName:     *skip,
		ProfileFile:  *profile,
		ReportFormat: format,
		JSONPath:     *jsonPath,
	}, nil
}

func parseEval(args []string) (*Config, error) {
	fs := newFlagSet(args[0])

	variables := make(variablesFlag)
	fs.Var(variables, "variable", "Variable in format name=value (can be used multiple times)")

	if err := parseFlags(fs, args[1:]); err != nil {
		return nil, err
	}

	if fs.NArg() != 1 {
		return nil, ErrMissingExpression
	}
	if err := expr.ValidateBoolean(fs.Arg(0)); err != nil {
		return nil, err
	}

	return &Config{
		Command:    CommandEval,
		Expression: fs.Arg(0),
		Variables:  variables,
	}, nil
}

func parseReportFormat(input string) (report.Format, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", string(report.FormatText):
		return report.FormatText, nil
	case string(report.FormatJSON):
		return report.FormatJSON, nil
	case string(report.FormatYAML):
		return report.FormatYAML, nil
	default:
		return "", fmt.Errorf("%w, got: %s", ErrInvalidReportFormat, input)
	}
}

// Usage returns command usage text.
func Usage() string {
	return `scankit - scan text with named character sets

Usage:
  scankit runs -set NAME [-skip NAME] [-profile FILE] [-report text|json|yaml] [-jsonpath EXPR] FILE
  scankit eval [-variable NAME=VALUE]... EXPRESSION

Runs options:
  -set NAME             Character set to scan for (built-in or defined in the profile)
  -skip NAME            Set passed over between runs (overrides the profile skip)
  -profile FILE         YAML profile with named set definitions and a skip set
  -report FORMAT        Report format: text, json or yaml (default: text)
  -jsonpath EXPR        Print the nodes selected from the JSON report, one per line

Eval options:
  -variable NAME=VALUE  Variable available to the expression (can be used multiple times)

  -h, --help            Show this help message

Exit codes:
  runs: 0 when every character belongs to the set or the skip set, 1 otherwise
  eval: 0 when the expression is true, 1 when false
  2 on usage, input or expression errors

Examples:
  scankit runs -set letters -skip whitespace_and_newlines notes.txt
  scankit runs -set word -profile sets.yaml -report json notes.txt
  scankit runs -set letters -jsonpath '$.runs[?@.kind == "unmatched"].text' notes.txt
  scankit eval -variable count=3 -variable debug=false 'count == 3 && !debug'`
}
