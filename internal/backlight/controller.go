package backlight

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/hoppxi/keylight/internal/intent"
)

// Store gives access to a backlight's brightness attributes.
type Store interface {
	MaxBrightness() (int, error)
	Brightness() (int, error)
	SetBrightness(int) error
}

// ErrReadState wraps failures to read the current or maximum brightness.
var ErrReadState = errors.New("cannot read backlight state")

type State struct {
	Max     int
	Current int
}

// Result describes a completed run. WriteErr is set when the new
// brightness could not be stored; the run itself still succeeds.
type Result struct {
	State    State
	Wrote    bool
	WriteErr error
}

// Controller reads the backlight, applies an intent and reports the result.
type Controller struct {
	Store Store
	Out   io.Writer
	Log   *log.Logger
}

// Run performs one invocation. Only failing to read the backlight state
// is returned as an error.
func (c *Controller) Run(in intent.Intent) (Result, error) {
	max, err := c.Store.MaxBrightness()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrReadState, err)
	}
	cur, err := c.Store.Brightness()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrReadState, err)
	}

	res := Result{State: Apply(State{Max: max, Current: cur}, in)}

	if in.Adjusts() {
		if err := c.Store.SetBrightness(res.State.Current); err != nil {
			res.WriteErr = err
			c.logf("Unable to set brightness of %s.  Check permissions (%v)", describe(c.Store), err)
		} else {
			res.Wrote = true
		}
	}

	c.report(res.State, in)
	return res, nil
}

func (c *Controller) report(s State, in intent.Intent) {
	if c.Out == nil {
		return
	}
	fmt.Fprintf(c.Out, "Max Brightness = %d\n", s.Max)
	fmt.Fprintf(c.Out, "Current Brightness = %d\n", s.Current)
	if in.Verbose {
		fmt.Fprintln(c.Out, in.String())
	}
}

func describe(s Store) string {
	if n, ok := s.(fmt.Stringer); ok {
		return n.String()
	}
	return "the keyboard backlight"
}

func (c *Controller) logf(format string, args ...any) {
	if c.Log == nil {
		log.Printf(format, args...)
		return
	}
	c.Log.Printf(format, args...)
}

// Apply returns s with the intent's adjustment applied and the current
// brightness clamped to [0, s.Max].
func Apply(s State, in intent.Intent) State {
	switch in.Action {
	case intent.Increment:
		s.Current = addSat(s.Current, in.Amount)
	case intent.Decrement:
		s.Current = subSat(s.Current, in.Amount)
	case intent.Set:
		s.Current = in.Amount
	}
	s.Current = Clamp(s.Current, s.Max)
	return s
}

// Clamp limits v to the inclusive range [0, max].
func Clamp(v, max int) int {
	if v < 0 {
		v = 0
	}
	if v > max {
		v = max
	}
	return v
}

// addSat and subSat stop at the int limits instead of wrapping, so huge
// amounts still clamp toward the requested end.
func addSat(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}

func subSat(a, b int) int {
	if b < 0 && a > math.MaxInt+b {
		return math.MaxInt
	}
	if b > 0 && a < math.MinInt+b {
		return math.MinInt
	}
	return a - b
}
