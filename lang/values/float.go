package values

import (
	"strconv"

	"github.com/mna/evalscript/lang/langerr"
)

// Float is the type of a floating-point value.
type Float float64

var (
	_ Value   = Float(0)
	_ Ordered = Float(0)
)

func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (f Float) Type() string   { return "float" }
func (f Float) Truth() bool    { return f != 0 }

func (f Float) Cmp(y Value) (int, error) {
	var g Float
	switch v := y.(type) {
	case Float:
		g = v
	case Int:
		g = Float(v)
	default:
		return 0, langerr.TypeErrorf("'<' not supported between instances of 'float' and '%s'", y.Type())
	}
	switch {
	case f < g:
		return -1, nil
	case f > g:
		return +1, nil
	}
	return 0, nil
}
