package eval

import "github.com/mna/evalscript/lang/values"

// Value is an alias for values.Value, used throughout this package to keep
// signatures readable.
type Value = values.Value
