package term

import "fmt"

// Expr is the kernel's expression tree: a variable reference, a universe,
// an application, or one of the two binder forms. It is a finite tree with
// no sharing assumed; every traversal that produces a new Expr returns a
// freshly owned one.
type Expr interface {
	isExpr()
	String() string
}

// Var is a reference to a variable, bound or free.
type Var struct {
	Name Variable
}

func (Var) isExpr() {}
func (e Var) String() string {
	return e.Name.String()
}

// Uni is the universe at a given level.
type Uni struct {
	Level Universe
}

func (Uni) isExpr() {}
func (e Uni) String() string {
	return e.Level.String()
}

// App is the application of Fn to Arg.
type App struct {
	Fn  Expr
	Arg Expr
}

func (App) isExpr() {}
func (e App) String() string {
	return fmt.Sprintf("(%s %s)", e.Fn.String(), e.Arg.String())
}

// Binder is the shared shape of Lam and Pi: a bound variable, its type
// annotation (living in the enclosing scope, not under the binder), and a
// body in which the variable is bound. Lam and Pi are kept as distinct
// struct types rather than one struct with a kind flag, because their
// inference and equality rules are never unified — a lambda's type is a Pi,
// never another lambda.
type Binder struct {
	Bound Variable
	Ann   Expr
	Body  Expr
}

// Lam is a lambda abstraction: \Bound : Ann, Body.
type Lam struct {
	Binder
}

func (Lam) isExpr() {}
func (e Lam) String() string {
	return fmt.Sprintf("(\\%s : %s, %s)", e.Bound.String(), e.Ann.String(), e.Body.String())
}

// Pi is a dependent function type: Π Bound : Ann, Body.
type Pi struct {
	Binder
}

func (Pi) isExpr() {}
func (e Pi) String() string {
	return fmt.Sprintf("(Pi %s : %s, %s)", e.Bound.String(), e.Ann.String(), e.Body.String())
}

// NewLam and NewPi are small convenience constructors so call sites don't
// have to spell out the embedded Binder field by hand.
func NewLam(bound Variable, ann, body Expr) Lam {
	return Lam{Binder{Bound: bound, Ann: ann, Body: body}}
}

func NewPi(bound Variable, ann, body Expr) Pi {
	return Pi{Binder{Bound: bound, Ann: ann, Body: body}}
}
