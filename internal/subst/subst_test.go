package subst

import (
	"testing"

	"github.com/sinepia-lang/sinepia/internal/fresh"
	"github.com/sinepia-lang/sinepia/internal/term"
)

// alphaEqual is a minimal structural-with-renaming comparison used only by
// these tests; the kernel package has the real definitional-equality
// implementation that goes through normalization first.
func alphaEqual(a, b term.Expr) bool {
	switch x := a.(type) {
	case term.Var:
		y, ok := b.(term.Var)
		return ok && x.Name.Equal(y.Name)
	case term.Uni:
		y, ok := b.(term.Uni)
		return ok && x.Level.Equal(y.Level)
	case term.App:
		y, ok := b.(term.App)
		return ok && alphaEqual(x.Fn, y.Fn) && alphaEqual(x.Arg, y.Arg)
	case term.Lam:
		y, ok := b.(term.Lam)
		if !ok {
			return false
		}
		return alphaEqualBinder(x.Binder, y.Binder)
	case term.Pi:
		y, ok := b.(term.Pi)
		if !ok {
			return false
		}
		return alphaEqualBinder(x.Binder, y.Binder)
	default:
		return false
	}
}

func alphaEqualBinder(a, b term.Binder) bool {
	if !alphaEqual(a.Ann, b.Ann) {
		return false
	}
	renamed := Subst(b.Body, b.Bound, term.Var{Name: a.Bound}, fresh.NewSupply())
	return alphaEqual(a.Body, renamed)
}

func TestSubstOfSelfIsIdentity(t *testing.T) {
	supply := fresh.NewSupply()
	x := term.NewVar("x")
	e := term.NewLam(x, term.Uni{term.NewUniverse(0)}, term.Var{Name: x})
	got := Subst(e, x, term.Var{Name: x}, supply)
	if !alphaEqual(got, e) {
		t.Errorf("Subst(E, v, Var(v)) = %s, want alpha-equivalent to %s", got, e)
	}
}

func TestSubstRemovesVariable(t *testing.T) {
	supply := fresh.NewSupply()
	x := term.NewVar("x")
	y := term.NewVar("y")
	// E = x applied to x; substitute x := y. No free x should remain.
	e := term.App{Fn: term.Var{Name: x}, Arg: term.Var{Name: x}}
	got := Subst(e, x, term.Var{Name: y}, supply)
	if containsFree(got, x) {
		t.Errorf("Subst result still mentions %s: %s", x, got)
	}
}

func containsFree(e term.Expr, v term.Variable) bool {
	switch n := e.(type) {
	case term.Var:
		return n.Name.Equal(v)
	case term.Uni:
		return false
	case term.App:
		return containsFree(n.Fn, v) || containsFree(n.Arg, v)
	case term.Lam:
		return containsFreeBinder(n.Binder, v)
	case term.Pi:
		return containsFreeBinder(n.Binder, v)
	}
	return false
}

func containsFreeBinder(b term.Binder, v term.Variable) bool {
	if containsFree(b.Ann, v) {
		return true
	}
	if b.Bound.Equal(v) {
		return false // shadowed
	}
	return containsFree(b.Body, v)
}

func TestCaptureAvoidance(t *testing.T) {
	supply := fresh.NewSupply()
	x := term.NewVar("x")
	y := term.NewVar("y")
	// E = \x : T, x
	e := term.NewLam(x, term.Uni{term.NewUniverse(0)}, term.Var{Name: x})
	// subst(E, y, Var(x)) with y != x: the inner x must not be captured.
	got := Subst(e, y, term.Var{Name: x}, supply)
	if !alphaEqual(got, e) {
		t.Errorf("capture avoidance failed: got %s, want alpha-equivalent to %s", got, e)
	}
}

func TestSubstIdempotentOnV(t *testing.T) {
	supply := fresh.NewSupply()
	x := term.NewVar("x")
	y := term.NewVar("y")
	z := term.NewVar("z")
	e := term.NewLam(y, term.Var{Name: x}, term.App{Fn: term.Var{Name: x}, Arg: term.Var{Name: y}})
	once := Subst(e, x, term.Var{Name: z}, supply)
	twice := Subst(once, x, term.Var{Name: z}, supply)
	if !alphaEqual(once, twice) {
		t.Errorf("second substitution changed the result: once=%s twice=%s", once, twice)
	}
}
