package kernel

import (
	"github.com/sinepia-lang/sinepia/internal/fresh"
	"github.com/sinepia-lang/sinepia/internal/subst"
	"github.com/sinepia-lang/sinepia/internal/term"
)

// Infer computes the type of e under ctx, bidirectionally: variables and
// universes are looked up or constructed directly, Pi and Lam check their
// domain is itself well-sorted, and App requires the function side to infer
// a Pi whose domain matches the argument's inferred type exactly — there is
// no subtyping between universes beyond the max rule at Pi formation. It
// reports false on any failure; it does not distinguish the failure's cause,
// matching ErrDoesNotTypeCheck's shape in internal/kernel/errors.go.
func Infer(e term.Expr, ctx *Context, supply *fresh.Supply) (term.Expr, bool) {
	switch n := e.(type) {
	case term.Var:
		return ctx.LookupType(n.Name)

	case term.Uni:
		return term.Uni{Level: n.Level.Succ()}, true

	case term.Pi:
		u1, ok := inferUniverse(n.Ann, ctx, supply)
		if !ok {
			return nil, false
		}
		ctx2 := ctx.withType(n.Bound, n.Ann)
		u2, ok := inferUniverse(n.Body, ctx2, supply)
		if !ok {
			return nil, false
		}
		return term.Uni{Level: term.Max(u1, u2)}, true

	case term.Lam:
		if _, ok := inferUniverse(n.Ann, ctx, supply); !ok {
			return nil, false
		}
		ctx2 := ctx.withType(n.Bound, n.Ann)
		bodyType, ok := Infer(n.Body, ctx2, supply)
		if !ok {
			return nil, false
		}
		return term.Pi{term.Binder{Bound: n.Bound, Ann: n.Ann, Body: bodyType}}, true

	case term.App:
		pi, ok := inferPi(n.Fn, ctx, supply)
		if !ok {
			return nil, false
		}
		argType, ok := Infer(n.Arg, ctx, supply)
		if !ok {
			return nil, false
		}
		if !Equal(pi.Ann, argType, ctx, supply) {
			return nil, false
		}
		return subst.Subst(pi.Body, pi.Bound, n.Arg, supply), true

	default:
		panic("infer: unknown expression variant")
	}
}

// inferUniverse infers e's type, normalizes it, and requires the result be a
// universe, returning that universe on success.
func inferUniverse(e term.Expr, ctx *Context, supply *fresh.Supply) (term.Universe, bool) {
	typ, ok := Infer(e, ctx, supply)
	if !ok {
		return term.Universe{}, false
	}
	norm, ok := Normalize(typ, ctx, supply)
	if !ok {
		return term.Universe{}, false
	}
	uni, ok := norm.(term.Uni)
	if !ok {
		return term.Universe{}, false
	}
	return uni.Level, true
}

// inferPi infers e's type, normalizes it, and requires the result be a Pi,
// returning that Pi's binder on success.
func inferPi(e term.Expr, ctx *Context, supply *fresh.Supply) (term.Binder, bool) {
	typ, ok := Infer(e, ctx, supply)
	if !ok {
		return term.Binder{}, false
	}
	norm, ok := Normalize(typ, ctx, supply)
	if !ok {
		return term.Binder{}, false
	}
	pi, ok := norm.(term.Pi)
	if !ok {
		return term.Binder{}, false
	}
	return pi.Binder, true
}
