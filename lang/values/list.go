package values

import (
	"strings"

	"github.com/mna/evalscript/lang/langerr"
)

// List is a mutable, ordered sequence of values. Assignment and append
// mutate the receiver in place; every reference to the same List observes
// the change, matching the language's single, shared list type.
type List struct {
	elems []Value
}

// NewList returns a List wrapping elems. The caller must not retain elems.
func NewList(elems []Value) *List { return &List{elems: elems} }

var (
	_ Value       = (*List)(nil)
	_ Indexable   = (*List)(nil)
	_ Sliceable   = (*List)(nil)
	_ HasSetIndex = (*List)(nil)
)

func (l *List) Type() string { return "list" }
func (l *List) Truth() bool  { return len(l.elems) > 0 }
func (l *List) Len() int     { return len(l.elems) }

// Elems exposes the backing slice for iteration. Callers must not retain or
// mutate it beyond the current statement.
func (l *List) Elems() []Value { return l.elems }

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range l.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		if s, ok := e.(Str); ok {
			b.WriteByte('\'')
			b.WriteString(string(s))
			b.WriteByte('\'')
		} else {
			b.WriteString(e.String())
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (l *List) Index(i int) (Value, error) {
	if i < 0 || i >= len(l.elems) {
		return nil, langerr.IndexErrorf("list index out of range")
	}
	return l.elems[i], nil
}

func (l *List) SetIndex(i int, v Value) error {
	if i < 0 || i >= len(l.elems) {
		return langerr.IndexErrorf("list assignment index out of range")
	}
	l.elems[i] = v
	return nil
}

// Slice returns the elements from start to end (exclusive) in steps of
// step. A step of 0 returns an empty list rather than looping forever.
func (l *List) Slice(start, end, step int) Value {
	if step == 1 {
		if start < 0 {
			start = 0
		}
		if end > len(l.elems) {
			end = len(l.elems)
		}
		if start > end {
			return NewList(nil)
		}
		out := append([]Value{}, l.elems[start:end]...)
		return NewList(out)
	}
	if step == 0 {
		// A zero step never advances; there is no meaningful slice, so return
		// empty rather than loop forever.
		return NewList(nil)
	}
	sign := signum(step)
	var out []Value
	for i := start; i >= 0 && i < len(l.elems) && signum(end-i) == sign; i += step {
		out = append(out, l.elems[i])
	}
	return NewList(out)
}

// Append grows the list in place.
func (l *List) Append(v Value) { l.elems = append(l.elems, v) }

func (l *List) Cmp(y Value) (int, error) {
	m, ok := y.(*List)
	if !ok {
		return 0, langerr.TypeErrorf("'<' not supported between instances of 'list' and '%s'", y.Type())
	}
	for i := 0; i < len(l.elems) && i < len(m.elems); i++ {
		c, err := Compare(l.elems[i], m.elems[i])
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	return len(l.elems) - len(m.elems), nil
}

var _ Ordered = (*List)(nil)
