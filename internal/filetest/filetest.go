// Package filetest provides a small godebug/diff-backed assertion helper
// for comparing actual command output against an expected string inline in
// the test, rather than against an on-disk golden fixture.
package filetest

import (
	"testing"

	"github.com/kylelemons/godebug/diff"
)

// AssertOutput fails t with a unified diff if got does not match want
// exactly. label identifies the kind of output being compared (e.g.
// "stdout", "stderr") in the failure message.
func AssertOutput(t *testing.T, label, want, got string) {
	t.Helper()

	if testing.Verbose() {
		t.Logf("got %s:\n%s\n", label, got)
	}
	if patch := diff.Diff(want, got); patch != "" {
		if testing.Verbose() {
			t.Logf("want %s:\n%s\n", label, want)
		}
		t.Errorf("diff %s:\n%s\n", label, patch)
	}
}
