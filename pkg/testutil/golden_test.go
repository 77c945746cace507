package testutil

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDiff(t *testing.T) {
	diff := Diff("a\nb\nc\n", "a\nB\nc\n")

	for _, want := range []string{"--- expected", "+++ actual", "-b", "+B"} {
		if !strings.Contains(diff, want) {
			t.Errorf("diff does not contain %q:\n%s", want, diff)
		}
	}

	if got := Diff("same\n", "same\n"); got != "" {
		t.Errorf("Diff of equal input = %q; want empty", got)
	}
}

func TestGoldenDir(t *testing.T) {
	dir := GoldenDir()
	if filepath.Base(dir) != "golden" || filepath.Base(filepath.Dir(dir)) != "testdata" {
		t.Errorf("GoldenDir() = %s; want .../testdata/golden", dir)
	}
}
