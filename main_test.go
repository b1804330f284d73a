// main_test.go - Tests for command line handling

package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testTune = ";1\nC-4 c-4 1 00\n"

func runCLI(t *testing.T, input string, args ...string) (int, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	status := run(append([]string{"onebit"}, args...), strings.NewReader(input), &stdout, &stderr)
	return status, &stdout, &stderr
}

func TestRunRawToStdout(t *testing.T) {
	status, stdout, stderr := runCLI(t, testTune)
	if status != 0 {
		t.Fatalf("status = %d, stderr %q", status, stderr.String())
	}
	if stdout.Len() != 192+2*PFM_DEFAULT_TEMPO {
		t.Errorf("stdout holds %d bytes, want %d", stdout.Len(), 192+2*PFM_DEFAULT_TEMPO)
	}
	for _, b := range stdout.Bytes() {
		if b != RAW_SAMPLE_HIGH && b != RAW_SAMPLE_LOW {
			t.Fatalf("unexpected sample byte %#x", b)
		}
	}
}

func TestRunEngineFlag(t *testing.T) {
	status, stdout, _ := runCLI(t, "A-4 1\n", "-0")
	if status != 0 || stdout.Len() != 100 {
		t.Errorf("status = %d with %d bytes, want 0 with 100", status, stdout.Len())
	}
}

func TestRunEngineFlagBeatsComment(t *testing.T) {
	status, stdout, _ := runCLI(t, ";1\nA-4 1\n", "-0", "-backend", "raw")
	if status != 0 || stdout.Len() != 100 {
		t.Errorf("status = %d with %d bytes, want 0 with 100", status, stdout.Len())
	}
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		args   []string
		stderr string
	}{
		{"help", "", []string{"-h"}, "sound engine ID"},
		{"invalid engine", "A-4\n", []string{"-7"}, "invalid engine: 7"},
		{"no engine", "A-4\n", nil, "valid sound engine is not specified"},
		{"parse error", ";0\nA-4\nZZZ\n", nil, "invalid token at line 3: ZZZ"},
		{"unknown flag", "", []string{"-nope"}, "Error:"},
		{"unknown backend", testTune, []string{"-backend", "pulse"}, "unknown audio backend"},
		{"too many files", "", []string{"a.txt", "b.txt"}, "at most one input file"},
		{"missing file", "", []string{filepath.Join(os.TempDir(), "onebit-missing-tune.txt")}, "Error:"},
		{"file with live backend", testTune, []string{"-backend", "oto", "-o", "x.wav"}, "live backend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _, stderr := runCLI(t, tt.input, tt.args...)
			if status != 1 {
				t.Errorf("status = %d, want 1", status)
			}
			if !strings.Contains(stderr.String(), tt.stderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.stderr)
			}
		})
	}
}

func TestRunParseErrorKeepsOutput(t *testing.T) {
	status, stdout, _ := runCLI(t, ";0\nA-4 1\nA-4 1\nZZZ\n")
	if status != 1 {
		t.Errorf("status = %d, want 1", status)
	}
	if stdout.Len() != 200 {
		t.Errorf("stdout holds %d bytes, want 200", stdout.Len())
	}
}

func TestRunFeatures(t *testing.T) {
	status, _, stderr := runCLI(t, "", "-features")
	if status != 0 {
		t.Errorf("status = %d, want 0", status)
	}
	if !strings.Contains(stderr.String(), "Engines: -0 beeper, -1 pfm") {
		t.Errorf("features output = %q", stderr.String())
	}
}

func TestRunVerboseSummary(t *testing.T) {
	status, _, stderr := runCLI(t, testTune, "-v")
	if status != 0 {
		t.Fatalf("status = %d, stderr %q", status, stderr.String())
	}
	if !strings.Contains(stderr.String(), "pfm via raw: 1 rows, 5,704 samples") {
		t.Errorf("summary = %q", stderr.String())
	}
}

func TestRunInputFileToWAV(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "tune.txt")
	out := filepath.Join(dir, "tune.wav")
	if err := os.WriteFile(in, []byte(testTune), 0o644); err != nil {
		t.Fatal(err)
	}
	status, stdout, stderr := runCLI(t, "", "-o", out, in)
	if status != 0 {
		t.Fatalf("status = %d, stderr %q", status, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout holds %d bytes, want 0", stdout.Len())
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() < int64(192+2*PFM_DEFAULT_TEMPO) {
		t.Errorf("WAV file is %d bytes, want at least %d", info.Size(), 192+2*PFM_DEFAULT_TEMPO)
	}
}

func TestSplitEngineArgs(t *testing.T) {
	flagSet := flag.NewFlagSet("onebit", flag.ContinueOnError)
	flagSet.Bool("v", false, "")
	flagSet.String("o", "", "")
	flagSet.String("backend", "auto", "")

	tests := []struct {
		name      string
		args      []string
		selectors string
		rest      string
	}{
		{"mixed", []string{"-1", "-v", "-o", "x", "-0", "-2", "file"}, "102", "-v -o x file"},
		{"flag value that looks like a selector", []string{"-o", "-0", "in.txt"}, "", "-o -0 in.txt"},
		{"double dash flag value", []string{"--backend", "-1", "-0"}, "0", "--backend -1"},
		{"value after equals", []string{"-o=out.raw", "-1", "in.txt"}, "1", "-o=out.raw in.txt"},
		{"bool flag takes no value", []string{"-v", "-1"}, "1", "-v"},
		{"after terminator", []string{"-0", "--", "-1"}, "0", "-- -1"},
		{"stdin dash", []string{"-1", "-"}, "1", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selectors, rest := splitEngineArgs(flagSet, tt.args)
			if string(selectors) != tt.selectors {
				t.Errorf("selectors = %q, want %q", selectors, tt.selectors)
			}
			if got := strings.Join(rest, " "); got != tt.rest {
				t.Errorf("rest = %q, want %q", got, tt.rest)
			}
		})
	}
}

func TestRunFlagValueIsNotSelector(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "tune.txt")
	if err := os.WriteFile(in, []byte(testTune), 0o644); err != nil {
		t.Fatal(err)
	}
	status, _, stderr := runCLI(t, "", "-backend", "-0", in)
	if status != 1 || !strings.Contains(stderr.String(), "unknown audio backend: -0") {
		t.Errorf("status = %d, stderr %q, want the backend flag to take -0", status, stderr.String())
	}
	data, err := os.ReadFile(in)
	if err != nil || string(data) != testTune {
		t.Errorf("input file changed: %q, %v", data, err)
	}
}
