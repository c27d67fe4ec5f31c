package langerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mna/evalscript/lang/langerr"
)

func TestErrorfConstructors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
		kind string
	}{
		{"name", langerr.NameErrorf("name '%s' is not defined", "x"), "name 'x' is not defined", "NameError"},
		{"type", langerr.TypeErrorf("unsupported operand type(s) for %s: '%s' and '%s'", "+", "int", "string"), "unsupported operand type(s) for +: 'int' and 'string'", "TypeError"},
		{"index", langerr.IndexErrorf("list index out of range"), "list index out of range", "IndexError"},
		{"zerodiv", langerr.ZeroDivisionErrorf("division by zero"), "division by zero", "ZeroDivisionError"},
		{"syntax", langerr.SyntaxErrorf("expected 'break' at the end of a case"), "expected 'break' at the end of a case", "SyntaxError"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.EqualError(t, c.err, c.want)
			require.Equal(t, c.kind, langerr.Kind(c.err))
		})
	}
}

func TestKindUnclassified(t *testing.T) {
	require.Equal(t, "", langerr.Kind(errors.New("plain error")))
	require.Equal(t, "", langerr.Kind(nil))
}
