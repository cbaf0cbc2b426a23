package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/scan/internal/config"
	"github.com/jacoelho/scan/internal/expr"
	"github.com/jacoelho/scan/internal/profile"
	"github.com/jacoelho/scan/internal/report"
	"github.com/jacoelho/scan/internal/runs"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitError    = 2
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(args)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			fmt.Fprintln(stdout, config.Usage())
			return exitOK
		}

		fmt.Fprintf(stderr, "Error: %v\n\n%s\n", err, config.Usage())
		return exitError
	}

	switch cfg.Command {
	case config.CommandEval:
		return runEval(cfg, stdout, stderr)
	default:
		return runRuns(cfg, stdout, stderr)
	}
}

func runEval(cfg *config.Config, stdout, stderr io.Writer) int {
	result, err := expr.Eval(cfg.Expression, cfg.Variables)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	fmt.Fprintln(stdout, result)
	if !result {
		return exitMismatch
	}
	return exitOK
}

func runRuns(cfg *config.Config, stdout, stderr io.Writer) int {
	registry := profile.Builtin()
	if cfg.ProfileFile != "" {
		p, err := profile.Load(cfg.ProfileFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}

		registry, err = p.Compile()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
	}

	set, ok := registry.Lookup(cfg.SetName)
	if !ok {
		fmt.Fprintf(stderr, "Error: %v: %s (available: %v)\n", profile.ErrUnknownSet, cfg.SetName, registry.Names())
		return exitError
	}

	skip := registry.Skip()
	if cfg.SkipName != "" {
		skip, ok = registry.Lookup(cfg.SkipName)
		if !ok {
			fmt.Fprintf(stderr, "Error: %v: skip %s (available: %v)\n", profile.ErrUnknownSet, cfg.SkipName, registry.Names())
			return exitError
		}
	}

	text, err := os.ReadFile(cfg.InputFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to read input: %v\n", err)
		return exitError
	}

	result := report.New(cfg.InputFile, cfg.SetName, runs.Find(string(text), set, skip))

	if cfg.JSONPath != "" {
		nodes, err := result.Select(cfg.JSONPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
		if err := report.WriteNodes(stdout, nodes); err != nil {
			fmt.Fprintf(stderr, "Error: failed to write nodes: %v\n", err)
			return exitError
		}
	} else if err := result.Write(stdout, cfg.ReportFormat); err != nil {
		fmt.Fprintf(stderr, "Error: failed to write report: %v\n", err)
		return exitError
	}

	if result.HasUnmatched() {
		return exitMismatch
	}
	return exitOK
}
