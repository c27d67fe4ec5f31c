package values

// noneType is the type of the None singleton.
type noneType struct{}

// None is the value representing the absence of a value, yielded by a bare
// return and by statements evaluated for effect.
var None Value = noneType{}

func (noneType) String() string { return "None" }
func (noneType) Type() string   { return "NoneType" }
func (noneType) Truth() bool    { return false }
