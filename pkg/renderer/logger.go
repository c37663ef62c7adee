package renderer

import (
	"fmt"

	"mobilert/pkg/core"
)

// DefaultLogger writes through fmt.Printf, matching the teacher
// codebase's own minimal logging shape (SPEC_FULL.md "Ambient Stack") —
// no logging framework, since logging here is a diagnostic side channel
// for a numerically dense renderer, not the product.
type DefaultLogger struct{}

// NewDefaultLogger returns a Logger that writes to stdout.
func NewDefaultLogger() core.Logger {
	return DefaultLogger{}
}

// Printf writes a formatted line to stdout.
func (DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

var _ core.Logger = DefaultLogger{}
