// Package testutil provides golden file helpers for tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// Update returns true if UPDATE_GOLDEN environment variable is set.
// Use: UPDATE_GOLDEN=1 go test ./... to update golden files.
var Update = os.Getenv("UPDATE_GOLDEN") == "1"

// GoldenDir returns the testdata/golden directory at the module root
func GoldenDir() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "testdata", "golden")
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return filepath.Join("testdata", "golden")
		}
		dir = parent
	}
}

// AssertGolden compares actual output to testdata/golden/<name>, printing a
// unified diff on mismatch. With UPDATE_GOLDEN=1 it rewrites the file instead.
func AssertGolden(t *testing.T, name string, actual string) {
	t.Helper()

	goldenPath := filepath.Join(GoldenDir(), name)
	actual = strings.ReplaceAll(actual, "\r\n", "\n")

	if Update {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
			t.Fatalf("failed to create golden file directory: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(actual), 0644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", goldenPath, err)
		}
		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("golden file %s does not exist. Run with UPDATE_GOLDEN=1 to create it", goldenPath)
		}
		t.Fatalf("failed to read golden file %s: %v", goldenPath, err)
	}

	if string(expected) != actual {
		t.Errorf("output mismatch for golden file %s\n%s", goldenPath, Diff(string(expected), actual))
	}
}

// Diff returns a unified diff between expected and actual
func Diff(expected, actual string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}
