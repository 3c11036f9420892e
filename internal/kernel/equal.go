package kernel

import (
	"github.com/sinepia-lang/sinepia/internal/fresh"
	"github.com/sinepia-lang/sinepia/internal/subst"
	"github.com/sinepia-lang/sinepia/internal/term"
)

// Equal decides definitional equality: normalize both sides under ctx, then
// compare the results up to alpha-renaming of binders. It returns false both
// when the two terms genuinely differ and when either side fails to
// normalize (free variable escaping ctx) — callers that need to distinguish
// the two should normalize explicitly first.
func Equal(e1, e2 term.Expr, ctx *Context, supply *fresh.Supply) bool {
	n1, ok := Normalize(e1, ctx, supply)
	if !ok {
		return false
	}
	n2, ok := Normalize(e2, ctx, supply)
	if !ok {
		return false
	}
	return alphaEqual(n1, n2, supply)
}

// alphaEqual compares two already-normalized expressions structurally, with
// binder occurrences matched up to renaming: Binder(x1,T1,b1) and
// Binder(x2,T2,b2) are equal when T1 ≡ T2 and b1 ≡ b2 with x2 renamed to x1.
func alphaEqual(e1, e2 term.Expr, supply *fresh.Supply) bool {
	switch n1 := e1.(type) {
	case term.Var:
		n2, ok := e2.(term.Var)
		return ok && n1.Name.Equal(n2.Name)

	case term.Uni:
		n2, ok := e2.(term.Uni)
		return ok && n1.Level.Equal(n2.Level)

	case term.App:
		n2, ok := e2.(term.App)
		return ok && alphaEqual(n1.Fn, n2.Fn, supply) && alphaEqual(n1.Arg, n2.Arg, supply)

	case term.Lam:
		n2, ok := e2.(term.Lam)
		return ok && alphaEqualBinder(n1.Binder, n2.Binder, supply)

	case term.Pi:
		n2, ok := e2.(term.Pi)
		return ok && alphaEqualBinder(n1.Binder, n2.Binder, supply)

	default:
		panic("alphaEqual: unknown expression variant")
	}
}

func alphaEqualBinder(b1, b2 term.Binder, supply *fresh.Supply) bool {
	if !alphaEqual(b1.Ann, b2.Ann, supply) {
		return false
	}
	renamedBody2 := subst.Subst(b2.Body, b2.Bound, term.Var{Name: b1.Bound}, supply)
	return alphaEqual(b1.Body, renamedBody2, supply)
}
