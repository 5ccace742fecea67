package render

import (
	"fmt"

	"github.com/evhansen/lumentrace/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout.
type DefaultLogger struct{}

// Printf implements core.Logger.
func (DefaultLogger) Printf(format string, args ...interface{}) { fmt.Printf(format, args...) }

// NewDefaultLogger returns a core.Logger that writes rendering progress to
// stdout.
func NewDefaultLogger() core.Logger { return DefaultLogger{} }

// nopLogger discards everything; it's the zero-value World's logger so a
// caller that never sets one pays nothing for progress output it didn't ask
// for.
type nopLogger struct{}

func (nopLogger) Printf(format string, args ...interface{}) {}
