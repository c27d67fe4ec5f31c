package values

import "github.com/mna/evalscript/lang/langerr"

// Bool is the type of boolean values.
type Bool bool

const (
	False Bool = false
	True  Bool = true
)

var (
	_ Value   = True
	_ Ordered = True
)

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) Type() string { return "bool" }
func (b Bool) Truth() bool  { return bool(b) }

func (b Bool) Cmp(y Value) (int, error) {
	c, ok := y.(Bool)
	if !ok {
		return 0, langerr.TypeErrorf("'<' not supported between instances of 'bool' and '%s'", y.Type())
	}
	return b2i(bool(b)) - b2i(bool(c)), nil
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
