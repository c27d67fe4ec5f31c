// Package langerr defines the error types a running program can raise, named
// after the conditions they report rather than after any Go mechanism.
package langerr

import "fmt"

// NameError reports a reference to a name that is not bound in any visible
// scope, or a redeclaration of a name that already is.
type NameError struct{ Msg string }

func (e *NameError) Error() string { return e.Msg }

// NameErrorf formats a NameError.
func NameErrorf(format string, args ...any) error {
	return &NameError{Msg: fmt.Sprintf(format, args...)}
}

// TypeError reports an operation applied to a value of the wrong type.
type TypeError struct{ Msg string }

func (e *TypeError) Error() string { return e.Msg }

// TypeErrorf formats a TypeError.
func TypeErrorf(format string, args ...any) error {
	return &TypeError{Msg: fmt.Sprintf(format, args...)}
}

// IndexError reports an out-of-range list or string index.
type IndexError struct{ Msg string }

func (e *IndexError) Error() string { return e.Msg }

// IndexErrorf formats an IndexError.
func IndexErrorf(format string, args ...any) error {
	return &IndexError{Msg: fmt.Sprintf(format, args...)}
}

// ZeroDivisionError reports division or modulo by zero.
type ZeroDivisionError struct{ Msg string }

func (e *ZeroDivisionError) Error() string { return e.Msg }

// ZeroDivisionErrorf formats a ZeroDivisionError.
func ZeroDivisionErrorf(format string, args ...any) error {
	return &ZeroDivisionError{Msg: fmt.Sprintf(format, args...)}
}

// SyntaxError reports a structural violation the evaluator detects at run
// time, such as a switch case missing its terminating break.
type SyntaxError struct{ Msg string }

func (e *SyntaxError) Error() string { return e.Msg }

// SyntaxErrorf formats a SyntaxError.
func SyntaxErrorf(format string, args ...any) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

// Kind classifies err as one of the language-level error kinds, or returns
// "" if err is not one of them (including nil).
func Kind(err error) string {
	switch err.(type) {
	case *NameError:
		return "NameError"
	case *TypeError:
		return "TypeError"
	case *IndexError:
		return "IndexError"
	case *ZeroDivisionError:
		return "ZeroDivisionError"
	case *SyntaxError:
		return "SyntaxError"
	default:
		return ""
	}
}
