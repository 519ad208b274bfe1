// Package debug gates verbose tracing behind an environment variable.
package debug

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
)

var _, enabled = os.LookupEnv("SVFMT_DEBUG")

// Enabled reports whether SVFMT_DEBUG is set in the environment.
func Enabled() bool {
	return enabled
}

// Printf writes a debug trace line to stderr, a no-op unless Enabled.
func Printf(format string, a ...any) {
	if !enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "\033[0;31mDEBUG:\033[0m "+format+"\n", a...)
}

// Dump pretty-prints v (token slices, partitions, format tokens) via
// repr, a no-op unless Enabled.
func Dump(label string, v any) {
	if !enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "\033[0;31mDEBUG:\033[0m %s = %s\n", label, repr.String(v))
}
