package values

// breakMarkerType is the type of the BreakMarker singleton.
type breakMarkerType struct{}

// BreakMarker is a sentinel value the switch/case evaluator threads through
// its case bodies to detect a terminating break; it is never visible to
// user code as a variable's value.
var BreakMarker Value = breakMarkerType{}

func (breakMarkerType) String() string { return "<break>" }
func (breakMarkerType) Type() string   { return "break" }
func (breakMarkerType) Truth() bool    { return false }
