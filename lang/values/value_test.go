package values_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mna/evalscript/lang/token"
	"github.com/mna/evalscript/lang/values"
)

func TestTruth(t *testing.T) {
	cases := []struct {
		name string
		v    values.Value
		want bool
	}{
		{"zero int", values.Int(0), false},
		{"nonzero int", values.Int(1), true},
		{"zero float", values.Float(0), false},
		{"nonzero float", values.Float(0.1), true},
		{"empty string", values.Str(""), false},
		{"nonempty string", values.Str("a"), true},
		{"false", values.False, false},
		{"true", values.True, true},
		{"empty list", values.NewList(nil), false},
		{"nonempty list", values.NewList([]values.Value{values.Int(1)}), true},
		{"none", values.None, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.v.Truth())
		})
	}
}

func TestBinaryArith(t *testing.T) {
	cases := []struct {
		name     string
		x, y     values.Value
		op       token.Token
		want     values.Value
		wantErr  string
	}{
		{"int+int", values.Int(2), values.Int(3), token.PLUS, values.Int(5), ""},
		{"int/int", values.Int(7), values.Int(2), token.SLASH, values.Float(3.5), ""},
		{"int/0", values.Int(1), values.Int(0), token.SLASH, nil, "division by zero"},
		{"int%0", values.Int(1), values.Int(0), token.PERCENT, nil, "integer division or modulo by zero"},
		{"int^int", values.Int(2), values.Int(10), token.CIRCUMFLEX, values.Int(1024), ""},
		{"float+int", values.Float(1.5), values.Int(1), token.PLUS, values.Float(2.5), ""},
		{"str+str", values.Str("a"), values.Str("b"), token.PLUS, values.Str("ab"), ""},
		{"str*int", values.Str("ab"), values.Int(2), token.STAR, values.Str("abab"), ""},
		{"int*str unsupported", values.Int(2), values.Str("ab"), token.STAR, nil, "unsupported operand type(s) for *: 'int' and 'string'"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := values.Binary(c.op, c.x, c.y)
			if c.wantErr != "" {
				require.ErrorContains(t, err, c.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestCompareOperators(t *testing.T) {
	cases := []struct {
		name string
		x, y values.Value
		op   token.Token
		want bool
	}{
		{"1<2", values.Int(1), values.Int(2), token.LT, true},
		{"2<=2", values.Int(2), values.Int(2), token.LE, true},
		{"2>1", values.Int(2), values.Int(1), token.GT, true},
		{"1>=2", values.Int(1), values.Int(2), token.GE, false},
		{"1==1.0", values.Int(1), values.Float(1), token.EQL, true},
		{"1!=2", values.Int(1), values.Int(2), token.NEQ, true},
		{"str<str", values.Str("a"), values.Str("b"), token.LT, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := values.Binary(c.op, c.x, c.y)
			require.NoError(t, err)
			require.Equal(t, values.Bool(c.want), got)
		})
	}
}

func TestCompareIncomparable(t *testing.T) {
	_, err := values.Binary(token.LT, values.Str("a"), values.Int(1))
	require.ErrorContains(t, err, "not supported between instances of")
}

func TestEqualCrossType(t *testing.T) {
	eq, err := values.Equal(values.Str("a"), values.Int(1))
	require.NoError(t, err)
	require.False(t, eq)
}

func TestListAppendIsSharedReference(t *testing.T) {
	l := values.NewList([]values.Value{values.Int(1)})
	var v values.Value = l
	l.Append(values.Int(2))
	alias := v.(*values.List)
	require.Equal(t, 2, alias.Len())
}

func TestListIndexOutOfRange(t *testing.T) {
	l := values.NewList([]values.Value{values.Int(1)})
	_, err := l.Index(5)
	require.ErrorContains(t, err, "list index out of range")
}

func TestStrIndexAndSlice(t *testing.T) {
	s := values.Str("hello")
	v, err := s.Index(1)
	require.NoError(t, err)
	require.Equal(t, values.Str("e"), v)

	require.Equal(t, values.Str("ell"), s.Slice(1, 4, 1))
	require.Equal(t, values.Str("olleh"), s.Slice(4, -1, -1))
}

func TestStrSliceZeroStepReturnsEmptyInsteadOfHanging(t *testing.T) {
	s := values.Str("hello")
	require.Equal(t, values.Str(""), s.Slice(2, 2, 0))
	require.Equal(t, values.Str(""), s.Slice(0, 4, 0))
}

func TestListSlice(t *testing.T) {
	l := values.NewList([]values.Value{values.Int(0), values.Int(1), values.Int(2), values.Int(3)})
	sl := l.Slice(1, 3, 1).(*values.List)
	require.Equal(t, []values.Value{values.Int(1), values.Int(2)}, sl.Elems())
}

func TestListSliceZeroStepReturnsEmptyInsteadOfHanging(t *testing.T) {
	l := values.NewList([]values.Value{values.Int(0), values.Int(1), values.Int(2), values.Int(3)})
	sl := l.Slice(2, 2, 0).(*values.List)
	require.Empty(t, sl.Elems())
}

func TestListStringQuotesStrElements(t *testing.T) {
	l := values.NewList([]values.Value{values.Str("a"), values.Int(1)})
	require.Equal(t, "['a', 1]", l.String())
}
