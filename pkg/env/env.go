package env

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// Prefix is prepended to every environment variable the CLI reads.
const Prefix = "GRAPH"

// NonInteractiveVar disables prompting when set to a true value.
const NonInteractiveVar = Prefix + "_NON_INTERACTIVE"

// isTerminal is swapped in tests.
var isTerminal = func(fd uintptr) bool {
	return term.IsTerminal(int(fd)) // #nosec G115 -- file descriptors fit in int
}

// Interactive reports whether the CLI may prompt the user. Prompts need a
// terminal on both stdin and stdout, and can be turned off with GRAPH_NON_INTERACTIVE.
func Interactive() bool {
	if v := os.Getenv(NonInteractiveVar); v != "" {
		if off, err := strconv.ParseBool(v); err == nil && off {
			return false
		}
	}
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}
