package config

import (
	"errors"
	"fmt"
)

// Version is injected at build-time with
// -ldflags="-X github.com/a2y-d5l/minigrep/internal/config.Version=$(git describe --tags --always --dirty)"
var Version = "dev"

// Usage is the one-line invocation summary printed with arity errors.
const Usage = "usage: minigrep <query> <filename>"

var (
	ErrTooFewArguments  = errors.New("not enough arguments")
	ErrTooManyArguments = errors.New("too many arguments")
)

// ArgCountError reports an invocation with the wrong number of positional
// arguments. Err is ErrTooFewArguments or ErrTooManyArguments.
type ArgCountError struct {
	Got int
	Err error
}

func (e *ArgCountError) Error() string {
	return fmt.Sprintf("%v: got %d, want 2 (%s)", e.Err, e.Got, Usage)
}

func (e *ArgCountError) Unwrap() error { return e.Err }

// Config captures the search term and the file to search.
type Config struct {
	Query string
	Path  string
}

// FromArgs builds a Config from the full argument vector, program name
// included (os.Args shape).
func FromArgs(args []string) (*Config, error) {
	switch {
	case len(args) < 3:
		return nil, &ArgCountError{Got: positional(args), Err: ErrTooFewArguments}
	case len(args) > 3:
		return nil, &ArgCountError{Got: positional(args), Err: ErrTooManyArguments}
	}

	return &Config{
		Query: args[1],
		Path:  args[2],
	}, nil
}

func positional(args []string) int {
	if len(args) == 0 {
		return 0
	}
	return len(args) - 1
}
