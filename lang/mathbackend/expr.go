package mathbackend

import (
	"fmt"
	"math"
)

// Expr is a single-variable symbolic arithmetic expression: the minimal
// algebra needed to differentiate and numerically evaluate the kinds of
// formulas the language's trig/integral/deriv calls are given.
type Expr interface {
	// Eval substitutes x for the expression's free variable and returns the
	// numeric result.
	Eval(x float64) float64
	// Deriv returns the expression's derivative with respect to its free
	// variable.
	Deriv() Expr
	// Integral returns an antiderivative with respect to its free variable.
	// It returns an error if the expression is not one of the forms this
	// backend knows how to integrate in closed form.
	Integral() (Expr, error)
	String() string
}

// Const is a constant expression.
type Const float64

func (c Const) Eval(float64) float64        { return float64(c) }
func (c Const) Deriv() Expr                 { return Const(0) }
func (c Const) Integral() (Expr, error)      { return &Mul{Const(c), Var{}}, nil }
func (c Const) String() string              { return trimFloat(float64(c)) }

// Var is the expression's single free variable.
type Var struct{}

func (Var) Eval(x float64) float64   { return x }
func (Var) Deriv() Expr              { return Const(1) }
func (Var) Integral() (Expr, error)  { return &Mul{Const(0.5), &Pow{Var{}, 2}}, nil }
func (Var) String() string           { return "x" }

// Add is x + y.
type Add struct{ X, Y Expr }

func (a *Add) Eval(x float64) float64 { return a.X.Eval(x) + a.Y.Eval(x) }
func (a *Add) Deriv() Expr            { return &Add{a.X.Deriv(), a.Y.Deriv()} }
func (a *Add) Integral() (Expr, error) {
	ix, err := a.X.Integral()
	if err != nil {
		return nil, err
	}
	iy, err := a.Y.Integral()
	if err != nil {
		return nil, err
	}
	return &Add{ix, iy}, nil
}
func (a *Add) String() string { return fmt.Sprintf("(%s + %s)", a.X, a.Y) }

// Sub is x - y.
type Sub struct{ X, Y Expr }

func (s *Sub) Eval(x float64) float64 { return s.X.Eval(x) - s.Y.Eval(x) }
func (s *Sub) Deriv() Expr            { return &Sub{s.X.Deriv(), s.Y.Deriv()} }
func (s *Sub) Integral() (Expr, error) {
	ix, err := s.X.Integral()
	if err != nil {
		return nil, err
	}
	iy, err := s.Y.Integral()
	if err != nil {
		return nil, err
	}
	return &Sub{ix, iy}, nil
}
func (s *Sub) String() string { return fmt.Sprintf("(%s - %s)", s.X, s.Y) }

// Mul is x * y; differentiation supports the common case of a constant
// times a variable expression (the product rule is applied generally, but
// integration only handles a constant factor).
type Mul struct{ X, Y Expr }

func (m *Mul) Eval(x float64) float64 { return m.X.Eval(x) * m.Y.Eval(x) }
func (m *Mul) Deriv() Expr {
	return &Add{&Mul{m.X.Deriv(), m.Y}, &Mul{m.X, m.Y.Deriv()}}
}
func (m *Mul) Integral() (Expr, error) {
	if c, ok := m.X.(Const); ok {
		iy, err := m.Y.Integral()
		if err != nil {
			return nil, err
		}
		return &Mul{c, iy}, nil
	}
	if c, ok := m.Y.(Const); ok {
		ix, err := m.X.Integral()
		if err != nil {
			return nil, err
		}
		return &Mul{c, ix}, nil
	}
	return nil, fmt.Errorf("mathbackend: cannot integrate %s in closed form", m)
}
func (m *Mul) String() string { return fmt.Sprintf("(%s * %s)", m.X, m.Y) }

// Neg is -x.
type Neg struct{ X Expr }

func (n *Neg) Eval(x float64) float64 { return -n.X.Eval(x) }
func (n *Neg) Deriv() Expr            { return &Neg{n.X.Deriv()} }
func (n *Neg) Integral() (Expr, error) {
	ix, err := n.X.Integral()
	if err != nil {
		return nil, err
	}
	return &Neg{ix}, nil
}
func (n *Neg) String() string { return fmt.Sprintf("-%s", n.X) }

// Pow is X^N for a constant integer exponent N.
type Pow struct {
	X Expr
	N int
}

func (p *Pow) Eval(x float64) float64 { return math.Pow(p.X.Eval(x), float64(p.N)) }
func (p *Pow) Deriv() Expr {
	if p.N == 0 {
		return Const(0)
	}
	return &Mul{Const(p.N), &Mul{&Pow{p.X, p.N - 1}, p.X.Deriv()}}
}
func (p *Pow) Integral() (Expr, error) {
	if _, ok := p.X.(Var); !ok {
		return nil, fmt.Errorf("mathbackend: cannot integrate %s in closed form", p)
	}
	if p.N == -1 {
		return nil, fmt.Errorf("mathbackend: cannot integrate %s in closed form", p)
	}
	return &Mul{Const(1.0 / float64(p.N+1)), &Pow{p.X, p.N + 1}}, nil
}
func (p *Pow) String() string { return fmt.Sprintf("%s^%d", p.X, p.N) }

// Sin and Cos are the trig building blocks integrals/derivatives commonly
// need. Their argument may be any expression: Deriv applies the chain rule,
// but Integral only handles the bare free variable and errors otherwise.
type Sin struct{ X Expr }

func (s *Sin) Eval(x float64) float64 { return math.Sin(s.X.Eval(x)) }
func (s *Sin) Deriv() Expr            { return &Mul{&Cos{s.X}, s.X.Deriv()} }
func (s *Sin) Integral() (Expr, error) {
	if _, ok := s.X.(Var); !ok {
		return nil, fmt.Errorf("mathbackend: cannot integrate %s in closed form", s)
	}
	return &Neg{&Cos{s.X}}, nil
}
func (s *Sin) String() string { return fmt.Sprintf("sin(%s)", s.X) }

type Cos struct{ X Expr }

func (c *Cos) Eval(x float64) float64 { return math.Cos(c.X.Eval(x)) }
func (c *Cos) Deriv() Expr            { return &Neg{&Mul{&Sin{c.X}, c.X.Deriv()}} }
func (c *Cos) Integral() (Expr, error) {
	if _, ok := c.X.(Var); !ok {
		return nil, fmt.Errorf("mathbackend: cannot integrate %s in closed form", c)
	}
	return &Sin{c.X}, nil
}
func (c *Cos) String() string { return fmt.Sprintf("cos(%s)", c.X) }

func trimFloat(f float64) string {
	if f == math.Trunc(f) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
