package intent

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Binder collects the keylight options from a pflag.FlagSet.
type Binder struct {
	verbose bool
	action  Action
	amount  int
	err     error
}

// Bind registers -v/--verbose, -i/--inc, -d/--dec and -s/--set on fs.
func Bind(fs *pflag.FlagSet) *Binder {
	b := &Binder{}
	fs.BoolVarP(&b.verbose, "verbose", "v", false, "Produce verbose output")
	fs.VarP(&adjustValue{b: b, action: Increment}, "inc", "i", "Increment")
	fs.VarP(&adjustValue{b: b, action: Decrement}, "dec", "d", "Decrement")
	fs.VarP(&adjustValue{b: b, action: Set}, "set", "s", "Set")
	return b
}

// Err returns the first option error seen while parsing, if any. pflag
// flattens errors returned from flag values into strings, so callers use
// this to recover ErrMutuallyExclusive and *ParseError.
func (b *Binder) Err() error {
	return b.err
}

// Intent returns the parsed options. It is only meaningful once the flag
// set has been parsed without error.
func (b *Binder) Intent() Intent {
	return Intent{Verbose: b.verbose, Action: b.action, Amount: b.amount}
}

type adjustValue struct {
	b      *Binder
	action Action
	value  string
}

func (v *adjustValue) Set(s string) error {
	// The same option given twice keeps the last value.
	if v.b.action != None && v.b.action != v.action {
		return v.fail(ErrMutuallyExclusive)
	}

	n, err := parseAmount(s)
	if err != nil {
		return v.fail(&ParseError{Flag: v.flagName(), Value: s, Err: err})
	}

	v.value = s
	v.b.action = v.action
	v.b.amount = n
	return nil
}

func (v *adjustValue) fail(err error) error {
	if v.b.err == nil {
		v.b.err = err
	}
	return err
}

func (v *adjustValue) flagName() string {
	switch v.action {
	case Increment:
		return "inc"
	case Decrement:
		return "dec"
	default:
		return "set"
	}
}

func (v *adjustValue) String() string {
	return v.value
}

func (v *adjustValue) Type() string {
	return "int"
}

// parseAmount accepts what strtol(s, &end, 10) accepts with *end == 0.
func parseAmount(s string) (int, error) {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	n, err := strconv.Atoi(s)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, ErrOutOfRange
	}

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i == len(s) || s[i] < '0' || s[i] > '9' {
		return 0, ErrNoDigits
	}
	return 0, ErrNonDigit
}
