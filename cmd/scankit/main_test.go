package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCommand(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"scankit"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunRunsAllMatched(t *testing.T) {
	t.Parallel()

	input := writeFile(t, t.TempDir(), "notes.txt", "hello\n  world\n")

	code, stdout, stderr := runCommand("runs", "-set", "letters", "-skip", "whitespace_and_newlines", input)
	if code != 0 {
		t.Fatalf("run() exitCode = %d, want 0 (stderr: %s)", code, stderr)
	}
	if !strings.Contains(stdout, "2 matched, 0 unmatched") {
		t.Fatalf("unexpected output: %s", stdout)
	}
	if !strings.Contains(stdout, "2:3\tmatch\t\"world\"") {
		t.Fatalf("missing world run: %s", stdout)
	}
}

func TestRunRunsUnmatchedReturnsOne(t *testing.T) {
	t.Parallel()

	input := writeFile(t, t.TempDir(), "notes.txt", "hello world")

	code, stdout, _ := runCommand("runs", "-set", "letters", input)
	if code != 1 {
		t.Fatalf("run() exitCode = %d, want 1", code)
	}
	if !strings.Contains(stdout, "2 matched, 1 unmatched") {
		t.Fatalf("unexpected output: %s", stdout)
	}
}

func TestRunRunsWithProfile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "notes.txt", "snake_case and 42")
	profile := writeFile(t, dir, "sets.yaml", `
skip: whitespace
sets:
  word:
    include: [letters]
    chars: "_"
`)

	code, stdout, stderr := runCommand("runs", "-set", "word", "-profile", profile, "-report", "json", input)
	if code != 1 {
		t.Fatalf("run() exitCode = %d, want 1 (stderr: %s)", code, stderr)
	}

	var decoded struct {
		Matched   int `json:"matched"`
		Unmatched int `json:"unmatched"`
		Runs      []struct {
			Text string `json:"text"`
		} `json:"runs"`
	}
	if err := json.Unmarshal([]byte(stdout), &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v\n%s", err, stdout)
	}
	if decoded.Matched != 2 || decoded.Unmatched != 1 {
		t.Fatalf("decoded = %+v", decoded)
	}
	if decoded.Runs[0].Text != "snake_case" || decoded.Runs[2].Text != "42" {
		t.Fatalf("runs = %+v", decoded.Runs)
	}
}

func TestRunRunsJSONPath(t *testing.T) {
	t.Parallel()

	input := writeFile(t, t.TempDir(), "notes.txt", "one, two; three")

	code, stdout, stderr := runCommand("runs", "-set", "letters", "-skip", "whitespace",
		"-jsonpath", `$.runs[?@.kind == "unmatched"].text`, input)
	if code != 1 {
		t.Fatalf("run() exitCode = %d, want 1 (stderr: %s)", code, stderr)
	}
	if stdout != "\",\"\n\";\"\n" {
		t.Fatalf("run() stdout = %q", stdout)
	}
}

func TestRunRunsErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "notes.txt", "hello")
	cyclic := writeFile(t, dir, "cyclic.yaml", "sets:\n  a:\n    include: [b]\n  b:\n    include: [a]\n")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown_set", args: []string{"runs", "-set", "greek", input}, wantErr: "unknown set"},
		{name: "unknown_skip", args: []string{"runs", "-set", "letters", "-skip", "tabs", input}, wantErr: "unknown set"},
		{name: "cyclic_profile", args: []string{"runs", "-set", "a", "-profile", cyclic, input}, wantErr: "a -> b -> a"},
		{name: "invalid_jsonpath", args: []string{"runs", "-set", "letters", "-jsonpath", "$[?", input}, wantErr: "invalid JSONPath"},
		{name: "missing_set_flag", args: []string{"runs", input}, wantErr: "-set is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, _, stderr := runCommand(tt.args...)
			if code != 2 {
				t.Fatalf("run() exitCode = %d, want 2", code)
			}
			if !strings.Contains(stderr, tt.wantErr) {
				t.Fatalf("stderr = %q, want it to contain %q", stderr, tt.wantErr)
			}
		})
	}
}

func TestRunEval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{
			name:     "true",
			args:     []string{"eval", "-variable", "count=3", "-variable", "debug=false", "count == 3 && !debug"},
			wantCode: 0,
			wantOut:  "true\n",
		},
		{
			name:     "false",
			args:     []string{"eval", "-variable", "name=ada", `name == "grace"`},
			wantCode: 1,
			wantOut:  "false\n",
		},
		{
			name:     "unknown_variable",
			args:     []string{"eval", "missing == 1"},
			wantCode: 2,
		},
		{
			name:     "syntax_error",
			args:     []string{"eval", "(true"},
			wantCode: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, stdout, _ := runCommand(tt.args...)
			if code != tt.wantCode {
				t.Fatalf("run() exitCode = %d, want %d", code, tt.wantCode)
			}
			if stdout != tt.wantOut {
				t.Fatalf("run() stdout = %q, want %q", stdout, tt.wantOut)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCommand("--help")
	if code != 0 {
		t.Fatalf("run() exitCode = %d, want 0", code)
	}
	if !strings.Contains(stdout, "scankit runs") {
		t.Fatalf("unexpected help output: %s", stdout)
	}
}
