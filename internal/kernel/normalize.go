package kernel

import (
	"github.com/sinepia-lang/sinepia/internal/fresh"
	"github.com/sinepia-lang/sinepia/internal/subst"
	"github.com/sinepia-lang/sinepia/internal/term"
)

// Normalize reduces e to weak-head/normal form under ctx, recursing under
// binders, unfolding proved theorems (delta-unfolding) and beta-reducing
// applications of a literal lambda. It reports false ("ill-scoped") when a
// free variable in e is not bound in ctx. It is not guaranteed to terminate
// on ill-typed terms — callers that need a hard bound should consult a fuel
// budget at the driver level (see internal/config's Fuel setting); the
// kernel itself imposes none.
func Normalize(e term.Expr, ctx *Context, supply *fresh.Supply) (term.Expr, bool) {
	switch n := e.(type) {
	case term.Var:
		entry, ok := ctx.entries[keyOf(n.Name)]
		if !ok {
			return nil, false
		}
		if entry.kind == kindProved {
			return Normalize(entry.val, ctx, supply)
		}
		return n, true

	case term.Uni:
		return n, true

	case term.App:
		arg, ok := Normalize(n.Arg, ctx, supply)
		if !ok {
			return nil, false
		}
		fn, ok := Normalize(n.Fn, ctx, supply)
		if !ok {
			return nil, false
		}
		if lam, ok := fn.(term.Lam); ok {
			reduced := subst.Subst(lam.Body, lam.Bound, arg, supply)
			return Normalize(reduced, ctx, supply)
		}
		return term.App{Fn: fn, Arg: arg}, true

	case term.Lam:
		b, ok := normalizeBinder(n.Binder, ctx, supply)
		if !ok {
			return nil, false
		}
		return term.Lam{b}, true

	case term.Pi:
		b, ok := normalizeBinder(n.Binder, ctx, supply)
		if !ok {
			return nil, false
		}
		return term.Pi{b}, true

	default:
		panic("normalize: unknown expression variant")
	}
}

func normalizeBinder(b term.Binder, ctx *Context, supply *fresh.Supply) (term.Binder, bool) {
	ann, ok := Normalize(b.Ann, ctx, supply)
	if !ok {
		return term.Binder{}, false
	}
	ctx2 := ctx.withType(b.Bound, ann)
	body, ok := Normalize(b.Body, ctx2, supply)
	if !ok {
		return term.Binder{}, false
	}
	return term.Binder{Bound: b.Bound, Ann: ann, Body: body}, true
}
