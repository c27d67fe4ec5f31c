package values

import "fmt"

// SliceSpec is the value a `start:end:step` expression evaluates to, built
// by a List node in ListSlice mode and consumed immediately by a following
// index operation; it is never stored in a variable.
type SliceSpec struct {
	Start, End, Step int64
}

func (s SliceSpec) String() string {
	return fmt.Sprintf("%d:%d:%d", s.Start, s.End, s.Step)
}
func (s SliceSpec) Type() string { return "slice" }
func (s SliceSpec) Truth() bool  { return true }
