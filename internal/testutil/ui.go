package testutil

import (
	"testing"

	"github.com/brudil/launchgen/internal/ui"
)

// StubConfirm replaces ui.ConfirmFunc for the duration of the test so that
// calls to ui.Confirm return the given result without prompting.
func StubConfirm(t *testing.T, result bool) {
	t.Helper()
	orig := ui.ConfirmFunc
	ui.ConfirmFunc = func(string) (bool, error) { return result, nil }
	t.Cleanup(func() { ui.ConfirmFunc = orig })
}

// StubPickMultiple replaces ui.PickMultipleFunc so that pickers return the
// given selection without prompting.
func StubPickMultiple(t *testing.T, selected ...string) {
	t.Helper()
	orig := ui.PickMultipleFunc
	ui.PickMultipleFunc = func(string, []string) ([]string, error) { return selected, nil }
	t.Cleanup(func() { ui.PickMultipleFunc = orig })
}
