// Package values implements the tagged value model of the language: the
// runtime representation of every value an evaluated program can produce or
// manipulate, and the arithmetic/comparison operations defined over them.
package values

import "github.com/mna/evalscript/lang/token"

// Value is the interface implemented by every runtime value.
type Value interface {
	// String returns the value's textual representation, as used by print and
	// by the str() builtin's quoting.
	String() string

	// Type returns the value's dynamic type tag, as returned by the type()
	// builtin.
	Type() string

	// Truth reports the value's truthiness: 0, 0.0, "", an empty list, None
	// and false are falsy; everything else is truthy.
	Truth() bool
}

// Ordered is implemented by values that support the ordered comparison
// operators (< <= > >=). Cmp returns negative, zero or positive as the
// receiver is less than, equal to, or greater than y; each implementation
// applies its own int/float promotion. Client code should call the
// standalone Compare function rather than Cmp directly, since Compare also
// reports a TypeError for values that are not Ordered.
type Ordered interface {
	Value
	Cmp(y Value) (int, error)
}

// Indexable is a value that supports read access by integer index, namely
// List and Str. Index returns an *langerr.IndexError wrapped as error when i
// is out of range.
type Indexable interface {
	Value
	Index(i int) (Value, error)
	Len() int
}

// Sliceable is an Indexable that also supports the slice operator
// arr[start:end:step].
type Sliceable interface {
	Indexable
	Slice(start, end, step int) Value
}

// HasSetIndex is an Indexable whose elements may be reassigned in place.
type HasSetIndex interface {
	Indexable
	SetIndex(i int, v Value) error
}

// HasBinary is implemented by values that want to customize a binary
// operator beyond the default numeric/string/list rules in Binary. An
// implementation declines an operator it does not handle by returning
// (nil, nil, false).
type HasBinary interface {
	Value
	Binary(op token.Token, y Value) (Value, error, bool)
}
