package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive overrides the terminal check, used by the
// --interactive flag and tests
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// ResetIsInteractive undoes ForceSetIsInteractive
func ResetIsInteractive() {
	interactiveOverride = nil
}

// IsInteractive returns true if a user is typing the input and reading the
// output, i.e. both stdin and stdout are terminals. When either is piped the
// simulator prints the truth table for a single expression and exits.
func IsInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
