package eval

import (
	"github.com/mna/evalscript/lang/ast"
	"github.com/mna/evalscript/lang/langerr"
	"github.com/mna/evalscript/lang/values"
)

func evalList(ec *Context, n *ast.List) (Value, error) {
	switch n.Op {
	case ast.ListSlice:
		return evalSliceSpec(ec, n)
	case ast.ListGet:
		return evalListGet(ec, n)
	case ast.ListAssign:
		return evalListAssign(ec, n)
	}
	return nil, langerr.TypeErrorf("eval: unhandled list op %d", n.Op)
}

func evalSliceSpec(ec *Context, n *ast.List) (Value, error) {
	start, err := evalExpr(ec, n.Start)
	if err != nil {
		return nil, err
	}
	end, err := evalExpr(ec, n.End)
	if err != nil {
		return nil, err
	}
	step, err := evalExpr(ec, n.Step)
	if err != nil {
		return nil, err
	}
	si, ok1 := start.(values.Int)
	ei, ok2 := end.(values.Int)
	sti, ok3 := step.(values.Int)
	if !ok1 || !ok2 || !ok3 {
		return nil, langerr.TypeErrorf("slice indices must be integers")
	}
	return values.SliceSpec{Start: int64(si), End: int64(ei), Step: int64(sti)}, nil
}

// applyIndex applies a single evaluated index expression (an Int or a
// SliceSpec) to v, returning the narrowed value.
func applyIndex(v Value, idx Value) (Value, error) {
	switch spec := idx.(type) {
	case values.SliceSpec:
		s, ok := v.(values.Sliceable)
		if !ok {
			return nil, langerr.TypeErrorf("'%s' object is not sliceable", v.Type())
		}
		return s.Slice(int(spec.Start), int(spec.End), int(spec.Step)), nil
	case values.Int:
		ix, ok := v.(values.Indexable)
		if !ok {
			return nil, langerr.TypeErrorf("'%s' object is not subscriptable", v.Type())
		}
		i := int(spec)
		if i < 0 {
			i += ix.Len()
		}
		return ix.Index(i)
	}
	return nil, langerr.TypeErrorf("list indices must be integers, not '%s'", idx.Type())
}

func evalListGet(ec *Context, n *ast.List) (Value, error) {
	v, ok := ec.Scope.Lookup(n.Name)
	if !ok {
		return nil, langerr.NameErrorf("name '%s' is not defined", n.Name)
	}
	for _, idxExpr := range n.Indices {
		idx, err := evalExpr(ec, idxExpr)
		if err != nil {
			return nil, err
		}
		v, err = applyIndex(v, idx)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

func evalListAssign(ec *Context, n *ast.List) (Value, error) {
	root, ok := ec.Scope.Lookup(n.Name)
	if !ok {
		return nil, langerr.NameErrorf("name '%s' is not defined", n.Name)
	}
	if len(n.Indices) == 0 {
		return nil, langerr.TypeErrorf("eval: list assignment requires at least one index")
	}

	target := root
	for _, idxExpr := range n.Indices[:len(n.Indices)-1] {
		idx, err := evalExpr(ec, idxExpr)
		if err != nil {
			return nil, err
		}
		target, err = applyIndex(target, idx)
		if err != nil {
			return nil, err
		}
	}

	lastIdxV, err := evalExpr(ec, n.Indices[len(n.Indices)-1])
	if err != nil {
		return nil, err
	}
	lastIdx, ok := lastIdxV.(values.Int)
	if !ok {
		return nil, langerr.TypeErrorf("list assignment index must be an integer, not '%s'", lastIdxV.Type())
	}
	setter, ok := target.(values.HasSetIndex)
	if !ok {
		return nil, langerr.TypeErrorf("'%s' object does not support item assignment", target.Type())
	}
	rhs, err := evalExpr(ec, n.Rhs)
	if err != nil {
		return nil, err
	}
	i := int(lastIdx)
	if i < 0 {
		i += setter.Len()
	}
	if err := setter.SetIndex(i, rhs); err != nil {
		return nil, err
	}
	return values.None, nil
}
