package values

import "fmt"

// Symbolic wraps a math-backend result (a symbolic expression, or an
// attribute of one such as a trig identity) so it can flow through the
// evaluator like any other value without lang/values importing
// lang/mathbackend. Payload is opaque here; only lang/mathbackend knows
// what concrete type it holds.
type Symbolic struct {
	Payload any
	Text    string // display form, computed by the producing backend
}

func (s Symbolic) String() string { return s.Text }
func (s Symbolic) Type() string   { return "symbolic" }
func (s Symbolic) Truth() bool    { return true }

func (s Symbolic) GoString() string { return fmt.Sprintf("Symbolic(%s)", s.Text) }
