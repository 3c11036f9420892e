// Package subst implements capture-avoiding substitution of a variable by
// an expression within an expression, via the rename-then-substitute
// strategy: a binder is first alpha-renamed to a fresh name drawn from the
// supply, then the real substitution proceeds under the renamed binder.
package subst

import (
	"github.com/sinepia-lang/sinepia/internal/fresh"
	"github.com/sinepia-lang/sinepia/internal/term"
)

// Subst replaces every free occurrence of v in e with r, avoiding capture.
// It never fails and never mutates e or r; it returns a freshly built tree.
func Subst(e term.Expr, v term.Variable, r term.Expr, supply *fresh.Supply) term.Expr {
	switch n := e.(type) {
	case term.Var:
		if n.Name.Equal(v) {
			return r
		}
		return n
	case term.Uni:
		return n
	case term.App:
		return term.App{
			Fn:  Subst(n.Fn, v, r, supply),
			Arg: Subst(n.Arg, v, r, supply),
		}
	case term.Lam:
		return term.Lam{substBinder(n.Binder, v, r, supply)}
	case term.Pi:
		return term.Pi{substBinder(n.Binder, v, r, supply)}
	default:
		panic("subst: unknown expression variant")
	}
}

// substBinder implements the binder case shared by Lam and Pi:
//  1. substitute in the annotation, which lives in the outer scope;
//  2. draw a fresh name x' for the bound variable;
//  3. rewrite the body's occurrences of the old bound name to x' (the
//     renaming pass — this alone is a no-capture substitution since x' is
//     fresh and cannot appear in the body yet);
//  4. substitute r for v in the renamed body — safe because the binder no
//     longer shadows v under its old name, and x' is disjoint from anything
//     r might mention;
//  5. rebuild the binder under x'.
func substBinder(b term.Binder, v term.Variable, r term.Expr, supply *fresh.Supply) term.Binder {
	ann := Subst(b.Ann, v, r, supply)
	x2 := supply.Refresh(b.Bound)
	renamed := Subst(b.Body, b.Bound, term.Var{Name: x2}, supply)
	body := Subst(renamed, v, r, supply)
	return term.Binder{Bound: x2, Ann: ann, Body: body}
}
