package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mna/evalscript/lang/builtins"
	"github.com/mna/evalscript/lang/values"
)

func TestLen(t *testing.T) {
	v, err := builtins.Len([]values.Value{values.Str("hello")})
	require.NoError(t, err)
	require.Equal(t, values.Int(5), v)

	_, err = builtins.Len([]values.Value{values.Int(1)})
	require.ErrorContains(t, err, "has no len()")
}

func TestMinMax(t *testing.T) {
	args := []values.Value{values.Int(3), values.Int(1), values.Int(2)}
	v, err := builtins.Min(args)
	require.NoError(t, err)
	require.Equal(t, values.Int(1), v)

	v, err = builtins.Max(args)
	require.NoError(t, err)
	require.Equal(t, values.Int(3), v)
}

func TestMinMaxFlattensOneListLevel(t *testing.T) {
	args := []values.Value{values.NewList([]values.Value{values.Int(5), values.Int(2)})}
	v, err := builtins.Max(args)
	require.NoError(t, err)
	require.Equal(t, values.Int(5), v)
}

func TestIntConversions(t *testing.T) {
	cases := []struct {
		name string
		arg  values.Value
		want values.Value
	}{
		{"from float", values.Float(3.9), values.Int(3)},
		{"from true", values.True, values.Int(1)},
		{"from false", values.False, values.Int(0)},
		{"from string", values.Str("42"), values.Int(42)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := builtins.Int([]values.Value{c.arg})
			require.NoError(t, err)
			require.Equal(t, c.want, v)
		})
	}
}

func TestIntInvalidString(t *testing.T) {
	_, err := builtins.Int([]values.Value{values.Str("abc")})
	require.ErrorContains(t, err, "invalid literal for int()")
}

func TestFloatConversions(t *testing.T) {
	v, err := builtins.Float([]values.Value{values.Str("3.5")})
	require.NoError(t, err)
	require.Equal(t, values.Float(3.5), v)
}

func TestStrQuotesAnyArgument(t *testing.T) {
	v, err := builtins.Str([]values.Value{values.Str("hi")})
	require.NoError(t, err)
	require.Equal(t, values.Str("'hi'"), v)

	v, err = builtins.Str([]values.Value{values.Int(5)})
	require.NoError(t, err)
	require.Equal(t, values.Str("'5'"), v)

	v, err = builtins.Str([]values.Value{values.Bool(true)})
	require.NoError(t, err)
	require.Equal(t, values.Str("'true'"), v)
}

func TestListConversions(t *testing.T) {
	v, err := builtins.List([]values.Value{values.Str("ab")})
	require.NoError(t, err)
	l := v.(*values.List)
	require.Equal(t, []values.Value{values.Str("a"), values.Str("b")}, l.Elems())

	v, err = builtins.List([]values.Value{values.Int(5)})
	require.NoError(t, err)
	require.Equal(t, []values.Value{values.Int(5)}, v.(*values.List).Elems())
}

func TestListRejectsNonIterable(t *testing.T) {
	_, err := builtins.List([]values.Value{values.None})
	require.ErrorContains(t, err, "is not iterable")
}

func TestType(t *testing.T) {
	v, err := builtins.Type([]values.Value{values.Int(1)})
	require.NoError(t, err)
	require.Equal(t, values.Str("int"), v)
}
