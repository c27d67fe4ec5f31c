package ast

import (
	"encoding/json"
	"fmt"

	"github.com/mna/evalscript/lang/token"
	"github.com/mna/evalscript/lang/values"
)

// DecodeProgram decodes a JSON-encoded AST into a *Program. This is the
// evaluator's stand-in for a real parser (out of scope for this module):
// each node is a JSON object tagged with a "kind" field matching Kind's
// String() names, and the fields a real parser would have filled in from
// source syntax.
func DecodeProgram(data []byte) (*Program, error) {
	var raw struct {
		Stmts []json.RawMessage `json:"stmts"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("ast: decoding program: %w", err)
	}
	stmts := make([]Stmt, len(raw.Stmts))
	for i, r := range raw.Stmts {
		s, err := decodeStmt(r)
		if err != nil {
			return nil, fmt.Errorf("ast: decoding stmts[%d]: %w", i, err)
		}
		stmts[i] = s
	}
	return &Program{Stmts: stmts}, nil
}

type wireNode struct {
	Kind string          `json:"kind"`
	Body json.RawMessage `json:"-"`
}

func peekKind(data []byte) (string, error) {
	var k struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &k); err != nil {
		return "", err
	}
	if k.Kind == "" {
		return "", fmt.Errorf("ast: node missing \"kind\" field")
	}
	return k.Kind, nil
}

func decodeStmts(raws []json.RawMessage) ([]Stmt, error) {
	out := make([]Stmt, len(raws))
	for i, r := range raws {
		s, err := decodeStmt(r)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func decodeExprs(raws []json.RawMessage) ([]Expr, error) {
	out := make([]Expr, len(raws))
	for i, r := range raws {
		e, err := decodeExpr(r)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func decodeExpr(data []byte) (Expr, error) {
	kind, err := peekKind(data)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "Literal":
		var w struct {
			Scalar *wireValue        `json:"scalar"`
			Elems  []json.RawMessage `json:"elems"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		n := &Literal{}
		if w.Scalar != nil {
			v, err := w.Scalar.decode()
			if err != nil {
				return nil, err
			}
			n.Scalar = v
		}
		if w.Elems != nil {
			elems, err := decodeExprs(w.Elems)
			if err != nil {
				return nil, err
			}
			n.Elems = elems
		}
		return n, nil
	case "Range":
		var w struct{ Start, End, Step json.RawMessage }
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		start, err := decodeExpr(w.Start)
		if err != nil {
			return nil, err
		}
		end, err := decodeExpr(w.End)
		if err != nil {
			return nil, err
		}
		step, err := decodeExpr(w.Step)
		if err != nil {
			return nil, err
		}
		return &Range{Start: start, End: end, Step: step}, nil
	case "Variable":
		var w struct {
			Op   string
			Name string
			Expr json.RawMessage
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		n := &Variable{Name: w.Name, Op: decodeVarOp(w.Op)}
		if len(w.Expr) > 0 {
			e, err := decodeExpr(w.Expr)
			if err != nil {
				return nil, err
			}
			n.Expr = e
		}
		return n, nil
	case "BinaryOp":
		var w struct {
			Lhs, Rhs json.RawMessage
			Op       string
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		lhs, err := decodeExpr(w.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := decodeExpr(w.Rhs)
		if err != nil {
			return nil, err
		}
		op, err := decodeToken(w.Op)
		if err != nil {
			return nil, err
		}
		return &BinaryOp{Lhs: lhs, Rhs: rhs, Op: op}, nil
	case "BoolOp":
		var w struct {
			Not      bool
			Operands []json.RawMessage
			Ops      []string
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		operands, err := decodeExprs(w.Operands)
		if err != nil {
			return nil, err
		}
		ops := make([]token.Token, len(w.Ops))
		for i, o := range w.Ops {
			t, err := decodeToken(o)
			if err != nil {
				return nil, err
			}
			ops[i] = t
		}
		return &BoolOp{Not: w.Not, Operands: operands, Ops: ops}, nil
	case "VariableBinopReassign":
		var w struct {
			Name string
			Op   string
			Rhs  json.RawMessage
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		rhs, err := decodeExpr(w.Rhs)
		if err != nil {
			return nil, err
		}
		op, err := decodeToken(w.Op)
		if err != nil {
			return nil, err
		}
		return &VariableBinopReassign{Name: w.Name, Op: op, Rhs: rhs}, nil
	case "VariableIncrDecr":
		var w struct{ Name, Op string }
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		op, err := decodeToken(w.Op)
		if err != nil {
			return nil, err
		}
		return &VariableIncrDecr{Name: w.Name, Op: op}, nil
	case "List":
		return decodeList(data)
	case "FuncCall":
		return decodeFuncCall(data)
	}
	return nil, fmt.Errorf("ast: unknown expression kind %q", kind)
}

func decodeList(data []byte) (*List, error) {
	var w struct {
		Op               string
		Name             string
		Indices          []json.RawMessage
		Rhs              json.RawMessage
		Start, End, Step json.RawMessage
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	n := &List{Name: w.Name}
	switch w.Op {
	case "get":
		n.Op = ListGet
	case "assign":
		n.Op = ListAssign
	case "slice":
		n.Op = ListSlice
	default:
		return nil, fmt.Errorf("ast: unknown list op %q", w.Op)
	}
	if w.Indices != nil {
		idx, err := decodeExprs(w.Indices)
		if err != nil {
			return nil, err
		}
		n.Indices = idx
	}
	if len(w.Rhs) > 0 {
		rhs, err := decodeExpr(w.Rhs)
		if err != nil {
			return nil, err
		}
		n.Rhs = rhs
	}
	for _, pair := range []struct {
		raw json.RawMessage
		dst *Expr
	}{{w.Start, &n.Start}, {w.End, &n.End}, {w.Step, &n.Step}} {
		if len(pair.raw) == 0 {
			continue
		}
		e, err := decodeExpr(pair.raw)
		if err != nil {
			return nil, err
		}
		*pair.dst = e
	}
	return n, nil
}

func decodeFuncCall(data []byte) (*FuncCall, error) {
	var w struct {
		Op   string
		Name string
		Args []json.RawMessage
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	n := &FuncCall{Name: w.Name}
	switch w.Op {
	case "exec":
		n.Op = FuncCallExec
	case "builtin":
		n.Op = FuncCallBuiltin
	case "trig":
		n.Op = FuncCallTrig
	case "integral":
		n.Op = FuncCallIntegral
	case "deriv":
		n.Op = FuncCallDeriv
	default:
		return nil, fmt.Errorf("ast: unknown func call op %q", w.Op)
	}
	args, err := decodeExprs(w.Args)
	if err != nil {
		return nil, err
	}
	n.Args = args
	return n, nil
}

func decodeStmt(data []byte) (Stmt, error) {
	kind, err := peekKind(data)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "Print":
		var w struct{ Args []json.RawMessage }
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		args, err := decodeExprs(w.Args)
		if err != nil {
			return nil, err
		}
		return &Print{Args: args}, nil
	case "IfElseBlock":
		var w struct {
			If   json.RawMessage
			Else json.RawMessage
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		ifN, err := decodeStmt(w.If)
		if err != nil {
			return nil, err
		}
		n := &IfElseBlock{If: ifN.(*IfStmt)}
		if len(w.Else) > 0 {
			elseN, err := decodeStmt(w.Else)
			if err != nil {
				return nil, err
			}
			n.Else = elseN.(*ElseStmt)
		}
		return n, nil
	case "IfStmt":
		var w struct {
			Cond json.RawMessage
			Body []json.RawMessage
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		cond, err := decodeExpr(w.Cond)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmts(w.Body)
		if err != nil {
			return nil, err
		}
		return &IfStmt{Cond: cond, Body: body}, nil
	case "ElseStmt":
		var w struct{ Body []json.RawMessage }
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		body, err := decodeStmts(w.Body)
		if err != nil {
			return nil, err
		}
		return &ElseStmt{Body: body}, nil
	case "ForStmt":
		var w struct {
			IterName  string          `json:"iterName"`
			RangeExpr json.RawMessage `json:"rangeExpr"`
			Body      []json.RawMessage
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		rangeExpr, err := decodeExpr(w.RangeExpr)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmts(w.Body)
		if err != nil {
			return nil, err
		}
		return &ForStmt{IterName: w.IterName, RangeExpr: rangeExpr, Body: body}, nil
	case "WhileStmt":
		var w struct {
			Cond json.RawMessage
			Body []json.RawMessage
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		cond, err := decodeExpr(w.Cond)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmts(w.Body)
		if err != nil {
			return nil, err
		}
		return &WhileStmt{Cond: cond, Body: body}, nil
	case "SwitchStmt":
		var w struct {
			Expr    json.RawMessage
			Cases   []json.RawMessage
			Default json.RawMessage
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		expr, err := decodeExpr(w.Expr)
		if err != nil {
			return nil, err
		}
		n := &SwitchStmt{Expr: expr}
		for _, c := range w.Cases {
			cs, err := decodeStmt(c)
			if err != nil {
				return nil, err
			}
			n.Cases = append(n.Cases, cs.(*CaseStmt))
		}
		if len(w.Default) > 0 {
			d, err := decodeStmt(w.Default)
			if err != nil {
				return nil, err
			}
			n.Default = d.(*DefaultStmt)
		}
		return n, nil
	case "CaseStmt":
		var w struct {
			Value json.RawMessage
			Body  []json.RawMessage
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		val, err := decodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmts(w.Body)
		if err != nil {
			return nil, err
		}
		return &CaseStmt{Value: val, Body: body}, nil
	case "DefaultStmt":
		var w struct{ Body []json.RawMessage }
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		body, err := decodeStmts(w.Body)
		if err != nil {
			return nil, err
		}
		return &DefaultStmt{Body: body}, nil
	case "BreakStmt":
		return &BreakStmt{}, nil
	case "ReturnStmt":
		var w struct{ Expr json.RawMessage }
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		n := &ReturnStmt{}
		if len(w.Expr) > 0 {
			e, err := decodeExpr(w.Expr)
			if err != nil {
				return nil, err
			}
			n.Expr = e
		}
		return n, nil
	case "FuncDecl":
		var w struct {
			ID     string
			Params []string
			Body   []json.RawMessage
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, err
		}
		body, err := decodeStmts(w.Body)
		if err != nil {
			return nil, err
		}
		return &FuncDecl{ID: w.ID, Params: w.Params, Body: body}, nil
	case "Variable", "VariableBinopReassign", "VariableIncrDecr", "List", "FuncCall":
		e, err := decodeExpr(data)
		if err != nil {
			return nil, err
		}
		return e.(Stmt), nil
	}
	return nil, fmt.Errorf("ast: unknown statement kind %q", kind)
}

func decodeVarOp(s string) VarOp {
	switch s {
	case "assign":
		return VarAssign
	case "reassign":
		return VarReassign
	case "reassignGet":
		return VarReassignGet
	default:
		return VarGet
	}
}

func decodeToken(s string) (token.Token, error) {
	for i := 0; i < 64; i++ {
		t := token.Token(i)
		if t.String() == s {
			return t, nil
		}
	}
	return token.ILLEGAL, fmt.Errorf("ast: unknown operator %q", s)
}

// wireValue is the JSON shape of a values.Value literal payload.
type wireValue struct {
	Type string          `json:"type"`
	Val  json.RawMessage `json:"value"`
}

func (w *wireValue) decode() (values.Value, error) {
	switch w.Type {
	case "int":
		var i int64
		if err := json.Unmarshal(w.Val, &i); err != nil {
			return nil, err
		}
		return values.Int(i), nil
	case "float":
		var f float64
		if err := json.Unmarshal(w.Val, &f); err != nil {
			return nil, err
		}
		return values.Float(f), nil
	case "string":
		var s string
		if err := json.Unmarshal(w.Val, &s); err != nil {
			return nil, err
		}
		return values.Str(s), nil
	case "bool":
		var b bool
		if err := json.Unmarshal(w.Val, &b); err != nil {
			return nil, err
		}
		return values.Bool(b), nil
	case "none":
		return values.None, nil
	}
	return nil, fmt.Errorf("ast: unknown literal type %q", w.Type)
}
