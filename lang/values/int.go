package values

import (
	"strconv"

	"github.com/mna/evalscript/lang/langerr"
)

// Int is the type of an integer value.
type Int int64

var (
	_ Value   = Int(0)
	_ Ordered = Int(0)
)

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
func (i Int) Type() string   { return "int" }
func (i Int) Truth() bool    { return i != 0 }

func (i Int) Cmp(y Value) (int, error) {
	switch j := y.(type) {
	case Int:
		switch {
		case i < j:
			return -1, nil
		case i > j:
			return +1, nil
		}
		return 0, nil
	case Float:
		return Float(i).Cmp(j)
	}
	return 0, langerr.TypeErrorf("'<' not supported between instances of 'int' and '%s'", y.Type())
}
