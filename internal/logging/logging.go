// Package logging builds the process logger.
package logging

import (
	"io"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// New returns a logger writing to stderr. Messages logged with V(n) are
// emitted when n <= verbosity.
func New(verbosity int) logr.Logger {
	return NewTo(os.Stderr, verbosity)
}

// NewTo is New with an explicit destination.
func NewTo(w io.Writer, verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	return stdr.New(log.New(w, "", log.LstdFlags))
}
