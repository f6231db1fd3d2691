// Package intent turns keylight's command-line options into an immutable
// description of what a single invocation should do.
package intent

import (
	"errors"
	"fmt"
)

// Action is the brightness adjustment requested on the command line.
type Action int

const (
	None Action = iota
	Increment
	Decrement
	Set
)

func (a Action) String() string {
	switch a {
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	case Set:
		return "set"
	default:
		return "none"
	}
}

// Unspecified is reported by Raw for adjustments that were not requested.
const Unspecified = -1

var (
	ErrMutuallyExclusive = errors.New("Increment, Decrement and Set are mutually exclusive options")

	ErrNoDigits   = errors.New("No digits were found")
	ErrNonDigit   = errors.New("Non digit in decimal value")
	ErrOutOfRange = errors.New("value out of range")
)

// ParseError is returned for option values that are not base-10 integers.
type ParseError struct {
	Flag  string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid value %q for --%s: %v", e.Value, e.Flag, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Intent is built once per invocation and not modified afterwards.
type Intent struct {
	Verbose bool
	Action  Action
	Amount  int
}

// Adjusts reports whether the intent asks for the brightness to change.
func (in Intent) Adjusts() bool {
	return in.Action != None
}

// Raw returns the increment, decrement and set amounts, using Unspecified
// for the ones that were not given.
func (in Intent) Raw() (inc, dec, set int) {
	inc, dec, set = Unspecified, Unspecified, Unspecified
	switch in.Action {
	case Increment:
		inc = in.Amount
	case Decrement:
		dec = in.Amount
	case Set:
		set = in.Amount
	}
	return inc, dec, set
}

func (in Intent) String() string {
	inc, dec, set := in.Raw()
	return fmt.Sprintf("Increment:%d; Decrement:%d, Set:%d", inc, dec, set)
}
