// Package scope implements the evaluator's variable bindings: a stack of
// named block scopes plus a stack of function call frames, each backed by a
// swiss.Map from name to value.
package scope

import (
	"fmt"

	"github.com/dolthub/swiss"
	"github.com/mna/evalscript/lang/langerr"
	"github.com/mna/evalscript/lang/values"
)

// Kind names a block-scope flavor. Each kind gets its own counter so that
// nested scopes of the same kind (e.g. a for loop inside a for loop) get
// distinct, stable names instead of colliding or requiring a linear search
// for a free slot.
type Kind string

const (
	KindIf      Kind = "if"
	KindElse    Kind = "else"
	KindFor     Kind = "for_loop"
	KindWhile   Kind = "while_loop"
	KindCase    Kind = "case"
	KindDefault Kind = "default"
	KindParams  Kind = "params"
	KindSwitch  Kind = "switch"
)

// Stack is the evaluator's symbol table: a stack of block scopes, rooted at
// an always-present global scope, plus an independent stack of function call
// frames. Block scopes nest visually (if/for/while/case bodies); function
// frames nest by call, and a frame's local scopes are only ever searched
// while that frame is the innermost one.
type Stack struct {
	global *swiss.Map[string, values.Value]

	blocks   []string                          // innermost last
	blockVar map[string]*swiss.Map[string, values.Value]
	counters map[Kind]int

	frames         []string // innermost last; mangled "func_<id>_<k>" keys
	frameBlockBase []int    // len(s.blocks) at the time each frame was pushed
	frameVars      map[string]*swiss.Map[string, values.Value]
}

// NewStack returns an empty Stack with just the global scope.
func NewStack() *Stack {
	return &Stack{
		global:    swiss.NewMap[string, values.Value](16),
		blockVar:  make(map[string]*swiss.Map[string, values.Value]),
		counters:  make(map[Kind]int),
		frameVars: make(map[string]*swiss.Map[string, values.Value]),
	}
}

// PushBlockScope opens a new block scope of the given kind and returns its
// generated, unique name (e.g. "if0", "for_loop1").
func (s *Stack) PushBlockScope(kind Kind) string {
	n := s.counters[kind]
	s.counters[kind] = n + 1
	name := fmt.Sprintf("%s%d", kind, n)
	s.blocks = append(s.blocks, name)
	s.blockVar[name] = swiss.NewMap[string, values.Value](4)
	return name
}

// PopBlockScope closes the innermost block scope. It panics if there is no
// open block scope, which indicates an evaluator bug.
func (s *Stack) PopBlockScope() {
	n := len(s.blocks)
	if n == 0 {
		panic("scope: PopBlockScope with no open block scope")
	}
	name := s.blocks[n-1]
	s.blocks = s.blocks[:n-1]
	delete(s.blockVar, name)
}

// PushFuncFrame opens a new function call frame keyed frameKey
// ("func_<id>_<k>") and a paired "params" block scope, matching the
// language's rule that a function's parameters live one scope outside its
// body. It records the caller's block depth as this frame's boundary: once
// pushed, searchOrder/Define/Assign never look at blocks opened before the
// call, so a callee cannot see or collide with the caller's locals even
// though both share the same s.blocks stack.
func (s *Stack) PushFuncFrame(frameKey string) {
	s.frameBlockBase = append(s.frameBlockBase, len(s.blocks))
	s.frames = append(s.frames, frameKey)
	s.frameVars[frameKey] = swiss.NewMap[string, values.Value](4)
	s.PushBlockScope(KindParams)
}

// PopFuncFrame closes the innermost function call frame and its paired
// params scope.
func (s *Stack) PopFuncFrame() {
	s.PopBlockScope()
	n := len(s.frames)
	if n == 0 {
		panic("scope: PopFuncFrame with no open frame")
	}
	key := s.frames[n-1]
	s.frames = s.frames[:n-1]
	s.frameBlockBase = s.frameBlockBase[:n-1]
	delete(s.frameVars, key)
}

// InnermostFrame returns the frame key of the currently executing function,
// or "" if execution is at top level.
func (s *Stack) InnermostFrame() string {
	if len(s.frames) == 0 {
		return ""
	}
	return s.frames[len(s.frames)-1]
}

// IsFrameActive reports whether frameKey is anywhere on the active call
// stack, used to detect a recursive reentry into the same function.
func (s *Stack) IsFrameActive(frameKey string) bool {
	for _, f := range s.frames {
		if f == frameKey {
			return true
		}
	}
	return false
}

// SetLocal writes name directly into the innermost open block scope,
// overwriting any prior value without the "already defined" check Define
// applies. It is used to bind a loop's iteration variable, which is
// legitimately rewritten once per iteration in the same scope.
func (s *Stack) SetLocal(name string, v values.Value) {
	if len(s.blocks) == 0 {
		s.global.Put(name, v)
		return
	}
	s.blockVar[s.blocks[len(s.blocks)-1]].Put(name, v)
}

// DefineParam binds name directly in the named frame's own variable map,
// bypassing block scopes. It is used to seed a function call's arguments.
func (s *Stack) DefineParam(frameKey, name string, v values.Value) {
	s.frameVars[frameKey].Put(name, v)
}

// FrameParams returns the (unordered) variable map for frameKey, or nil if it
// is not an open frame.
func (s *Stack) FrameParams(frameKey string) *swiss.Map[string, values.Value] {
	return s.frameVars[frameKey]
}

// blockBase returns the index of the first block visible to the current
// point of execution: 0 at top level, or the caller's block depth at the
// time the innermost frame was entered. Blocks below this index belong to
// an enclosing call (or to top level, from inside a function) and are
// never searched or written to — there are no closures, and a function's
// visible locals are only its own params/body scopes plus the global
// scope.
func (s *Stack) blockBase() int {
	if n := len(s.frames); n > 0 {
		return s.frameBlockBase[n-1]
	}
	return 0
}

// searchOrder yields the maps to search from innermost to outermost: the
// open block scopes back to the innermost frame's boundary (topmost
// first), then that frame's own variables (not its caller's), then the
// global scope.
func (s *Stack) searchOrder() []*swiss.Map[string, values.Value] {
	base := s.blockBase()
	order := make([]*swiss.Map[string, values.Value], 0, len(s.blocks)-base+2)
	for i := len(s.blocks) - 1; i >= base; i-- {
		order = append(order, s.blockVar[s.blocks[i]])
	}
	if f := s.InnermostFrame(); f != "" {
		order = append(order, s.frameVars[f])
	}
	order = append(order, s.global)
	return order
}

// Define declares name in the innermost scope (the innermost open block
// scope, or the global scope if none is open). It is a NameError if name is
// already visible in any enclosing scope, matching the language's rule that
// redeclaration anywhere in the visible chain is an error.
func (s *Stack) Define(name string, v values.Value) error {
	if _, ok := s.Lookup(name); ok {
		return langerr.NameErrorf("name '%s' is already defined", name)
	}
	target := s.global
	if len(s.blocks) > s.blockBase() {
		target = s.blockVar[s.blocks[len(s.blocks)-1]]
	}
	target.Put(name, v)
	return nil
}

// Lookup searches scopes from innermost to outermost for name.
func (s *Stack) Lookup(name string) (values.Value, bool) {
	for _, m := range s.searchOrder() {
		if v, ok := m.Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Assign writes v to the innermost scope that already holds name. It is a
// NameError if name is not bound anywhere visible.
func (s *Stack) Assign(name string, v values.Value) error {
	for _, m := range s.searchOrder() {
		if _, ok := m.Get(name); ok {
			m.Put(name, v)
			return nil
		}
	}
	return langerr.NameErrorf("name '%s' is not defined", name)
}
