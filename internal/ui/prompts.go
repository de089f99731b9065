package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func IsInteractive() bool {
	return IsTerminal(os.Stdin)
}

// Prompt hooks, replaceable in tests.
var (
	ConfirmFunc      = confirm
	PickMultipleFunc = pickMultiple
)

// PickMultiple shows a multi-select picker and returns the selected options.
func PickMultiple(title string, options []string) ([]string, error) {
	return PickMultipleFunc(title, options)
}

func Confirm(message string) (bool, error) {
	return ConfirmFunc(message)
}

func pickMultiple(title string, options []string) ([]string, error) {
	if !IsInteractive() {
		return nil, fmt.Errorf("interactive terminal required for multi-select")
	}

	var selected []string
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, o)
	}

	err := huh.NewMultiSelect[string]().
		Title(title).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}

func confirm(message string) (bool, error) {
	if !IsInteractive() {
		return false, fmt.Errorf("confirmation required but not in an interactive terminal")
	}

	var confirmed bool
	err := huh.NewConfirm().
		Title(message).
		Value(&confirmed).
		Run()

	return confirmed, err
}
