// Package testutil provides shared test infrastructure for the crossing simulator.
// It holds the golden trace loader and assertion helpers used by sim/ tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// LoadGoldenTrace loads testdata/<name>.golden, one expected trace line per file line.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
// Lines are kept verbatim; snapshot lines with an empty location end in a space.
func LoadGoldenTrace(t *testing.T, name string) []string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", name+".golden")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden trace: %v", err)
	}

	content := strings.TrimSuffix(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if content == "" {
		return []string{}
	}
	return strings.Split(content, "\n")
}

// AssertTraceMatchesGolden compares rendered trace lines with a golden file and reports
// the first differing line.
func AssertTraceMatchesGolden(t *testing.T, name string, got []string) {
	t.Helper()
	want := LoadGoldenTrace(t, name)
	for i := 0; i < len(want) && i < len(got); i++ {
		if want[i] != got[i] {
			t.Fatalf("%s: line %d differs\n got: %q\nwant: %q", name, i+1, got[i], want[i])
		}
	}
	if len(got) != len(want) {
		t.Fatalf("%s: got %d lines, want %d", name, len(got), len(want))
	}
}
