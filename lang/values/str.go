package values

import (
	"strings"

	"github.com/mna/evalscript/lang/langerr"
)

// Str is the type of a text string. Strings are immutable; indexing and
// slicing produce new Str values.
type Str string

var (
	_ Value     = Str("")
	_ Indexable = Str("")
	_ Sliceable = Str("")
	_ Ordered   = Str("")
)

func (s Str) String() string { return string(s) }
func (s Str) Type() string   { return "string" }
func (s Str) Truth() bool    { return len(s) > 0 }
func (s Str) Len() int       { return len(s) }

func (s Str) Index(i int) (Value, error) {
	if i < 0 || i >= len(s) {
		return nil, langerr.IndexErrorf("string index out of range")
	}
	return s[i : i+1], nil
}

// Slice returns the bytes from start to end (exclusive) in steps of step. A
// step of 0 returns an empty string rather than looping forever.
func (s Str) Slice(start, end, step int) Value {
	if step == 1 {
		if start < 0 || end > len(s) || start > end {
			return Str("")
		}
		return s[start:end]
	}
	if step == 0 {
		// A zero step never advances; there is no meaningful slice, so return
		// empty rather than loop forever.
		return Str("")
	}
	sign := signum(step)
	var b strings.Builder
	for i := start; i >= 0 && i < len(s) && signum(end-i) == sign; i += step {
		b.WriteByte(s[i])
	}
	return Str(b.String())
}

func (s Str) Cmp(y Value) (int, error) {
	t, ok := y.(Str)
	if !ok {
		return 0, langerr.TypeErrorf("'<' not supported between instances of 'string' and '%s'", y.Type())
	}
	return strings.Compare(string(s), string(t)), nil
}

// signum returns +1, 0 or -1 as x is positive, zero or negative.
func signum(x int) int {
	switch {
	case x > 0:
		return +1
	case x < 0:
		return -1
	}
	return 0
}
