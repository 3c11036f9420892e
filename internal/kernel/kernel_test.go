package kernel

import (
	"testing"

	"github.com/sinepia-lang/sinepia/internal/fresh"
	"github.com/sinepia-lang/sinepia/internal/term"
)

func u(n int64) term.Expr { return term.Uni{Level: term.NewUniverse(n)} }

func TestInferUniverseSucc(t *testing.T) {
	ctx := NewContext()
	supply := fresh.NewSupply()
	typ, ok := Infer(u(0), ctx, supply)
	if !ok {
		t.Fatal("expected U0 to type check")
	}
	if !Equal(typ, u(1), ctx, supply) {
		t.Errorf("type of U0 = %s, want U1", typ)
	}
}

func TestIdentityFunctionTypeChecks(t *testing.T) {
	ctx := NewContext()
	supply := fresh.NewSupply()
	a := term.NewVar("A")
	x := term.NewVar("x")
	// \A : U0, \x : A, x : Pi A : U0, Pi x : A, A
	id := term.NewLam(a, u(0), term.NewLam(x, term.Var{Name: a}, term.Var{Name: x}))
	typ, ok := Infer(id, ctx, supply)
	if !ok {
		t.Fatal("identity function failed to type check")
	}
	want := term.NewPi(a, u(0), term.NewPi(x, term.Var{Name: a}, term.Var{Name: a}))
	if !Equal(typ, want, ctx, supply) {
		t.Errorf("identity type = %s, want %s", typ, want)
	}
}

func TestApplicationBetaReduces(t *testing.T) {
	ctx := NewContext()
	supply := fresh.NewSupply()
	a := term.NewVar("A")
	x := term.NewVar("x")
	id := term.NewLam(a, u(0), term.NewLam(x, term.Var{Name: a}, term.Var{Name: x}))
	// (id U0) should normalize to \x : U0, x
	applied := term.App{Fn: id, Arg: u(0)}
	norm, ok := Normalize(applied, ctx, supply)
	if !ok {
		t.Fatal("normalize failed")
	}
	want := term.NewLam(x, u(0), term.Var{Name: x})
	if !Equal(norm, want, ctx, supply) {
		t.Errorf("beta reduction = %s, want %s", norm, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	ctx := NewContext()
	supply := fresh.NewSupply()
	a := term.NewVar("A")
	x := term.NewVar("x")
	id := term.NewLam(a, u(0), term.NewLam(x, term.Var{Name: a}, term.Var{Name: x}))
	n1, ok := Normalize(id, ctx, supply)
	if !ok {
		t.Fatal("normalize failed")
	}
	n2, ok := Normalize(n1, ctx, supply)
	if !ok {
		t.Fatal("second normalize failed")
	}
	if !Equal(n1, n2, ctx, supply) {
		t.Errorf("normalization not idempotent: %s vs %s", n1, n2)
	}
}

func TestAddAxiomThenLookup(t *testing.T) {
	ctx := NewContext()
	supply := fresh.NewSupply()
	nat := term.NewVar("Nat")
	if err := ctx.AddAxiom(nat, u(0), supply); err != nil {
		t.Fatalf("AddAxiom failed: %v", err)
	}
	if !ctx.IsAxiom(nat) {
		t.Error("Nat should be an axiom")
	}
	typ, ok := ctx.LookupType(nat)
	if !ok || !Equal(typ, u(0), ctx, supply) {
		t.Errorf("LookupType(Nat) = %s, want U0", typ)
	}
}

func TestAddAxiomDuplicateFails(t *testing.T) {
	ctx := NewContext()
	supply := fresh.NewSupply()
	nat := term.NewVar("Nat")
	if err := ctx.AddAxiom(nat, u(0), supply); err != nil {
		t.Fatalf("first AddAxiom failed: %v", err)
	}
	err := ctx.AddAxiom(nat, u(0), supply)
	if _, ok := err.(*ErrAlreadyExists); !ok {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAddAxiomIllTypedFails(t *testing.T) {
	ctx := NewContext()
	supply := fresh.NewSupply()
	bad := term.NewVar("Bad")
	// A variable with no entry does not type check as anything.
	illTyped := term.Var{Name: term.NewVar("undefined")}
	err := ctx.AddAxiom(bad, illTyped, supply)
	if _, ok := err.(*ErrDoesNotTypeCheck); !ok {
		t.Errorf("expected ErrDoesNotTypeCheck, got %v", err)
	}
}

func TestDischargeAxiomFails(t *testing.T) {
	ctx := NewContext()
	supply := fresh.NewSupply()
	nat := term.NewVar("Nat")
	if err := ctx.AddAxiom(nat, u(0), supply); err != nil {
		t.Fatalf("AddAxiom failed: %v", err)
	}
	_, _, err := ctx.Discharge(nat, u(0), supply)
	if _, ok := err.(*ErrCannotProveAxiom); !ok {
		t.Errorf("expected ErrCannotProveAxiom, got %v", err)
	}
}

func TestDischargeUnknownFails(t *testing.T) {
	ctx := NewContext()
	supply := fresh.NewSupply()
	ghost := term.NewVar("Ghost")
	_, _, err := ctx.Discharge(ghost, u(0), supply)
	if _, ok := err.(*ErrVariableNotFound); !ok {
		t.Errorf("expected ErrVariableNotFound, got %v", err)
	}
}

func TestDischargeWrongTypeFails(t *testing.T) {
	ctx := NewContext()
	supply := fresh.NewSupply()
	refl := term.NewVar("refl")
	if err := ctx.AddTheorem(refl, u(5), supply); err != nil {
		t.Fatalf("AddTheorem failed: %v", err)
	}
	_, _, err := ctx.Discharge(refl, u(0), supply)
	if _, ok := err.(*ErrTypesDoNotMatch); !ok {
		t.Errorf("expected ErrTypesDoNotMatch, got %v", err)
	}
}

func TestDischargeSuccessAndRebind(t *testing.T) {
	ctx := NewContext()
	supply := fresh.NewSupply()
	thm := term.NewVar("thm")
	if err := ctx.AddTheorem(thm, u(1), supply); err != nil {
		t.Fatalf("AddTheorem failed: %v", err)
	}
	_, had, err := ctx.Discharge(thm, u(0), supply)
	if err != nil {
		t.Fatalf("first Discharge failed: %v", err)
	}
	if had {
		t.Error("should not report a previous proof on first discharge")
	}
	if !ctx.IsProved(thm) {
		t.Error("thm should be proved")
	}

	prev, had, err := ctx.Discharge(thm, u(0), supply)
	if err != nil {
		t.Fatalf("rebind discharge failed: %v", err)
	}
	if !had {
		t.Error("should report a previous proof on rebind")
	}
	if !Equal(prev, u(0), ctx, supply) {
		t.Errorf("previous proof = %s, want U0", prev)
	}
}

func TestDischargeSelfReferenceFails(t *testing.T) {
	// A theorem whose stated proof mentions its own name cannot type check,
	// since the discharge snapshot excludes the name being proved.
	ctx := NewContext()
	supply := fresh.NewSupply()
	loopy := term.NewVar("loopy")
	if err := ctx.AddTheorem(loopy, u(0), supply); err != nil {
		t.Fatalf("AddTheorem failed: %v", err)
	}
	selfRef := term.Var{Name: loopy}
	_, _, err := ctx.Discharge(loopy, selfRef, supply)
	if err == nil {
		t.Error("expected self-referential proof to fail")
	}
}

func TestContextMonotonicity(t *testing.T) {
	ctx := NewContext()
	supply := fresh.NewSupply()
	a := term.NewVar("A")
	if err := ctx.AddAxiom(a, u(0), supply); err != nil {
		t.Fatalf("AddAxiom failed: %v", err)
	}
	before := ctx.Stats()
	ctx2 := ctx.withType(term.NewVar("extra"), u(0))
	after := ctx.Stats()
	if before != after {
		t.Error("deriving a new context mutated the original's stats")
	}
	if !ctx2.Contains(term.NewVar("extra")) {
		t.Error("derived context should contain the new entry")
	}
}

func TestStatsCounts(t *testing.T) {
	ctx := NewContext()
	supply := fresh.NewSupply()
	ctx.AddAxiom(term.NewVar("Nat"), u(0), supply)
	ctx.AddTheorem(term.NewVar("open1"), u(0), supply)
	ctx.AddTheorem(term.NewVar("done1"), u(1), supply)
	ctx.Discharge(term.NewVar("done1"), u(0), supply)

	s := ctx.Stats()
	if s.Axioms != 1 || s.Unproved != 1 || s.Proved != 1 {
		t.Errorf("Stats() = %+v, want {Axioms:1 Unproved:1 Proved:1}", s)
	}
}

func TestDeltaUnfoldingInNormalization(t *testing.T) {
	ctx := NewContext()
	supply := fresh.NewSupply()
	n := term.NewVar("n")
	if err := ctx.AddTheorem(n, u(4), supply); err != nil {
		t.Fatalf("AddTheorem failed: %v", err)
	}
	if _, _, err := ctx.Discharge(n, u(3), supply); err != nil {
		t.Fatalf("Discharge failed: %v", err)
	}
	norm, ok := Normalize(term.Var{Name: n}, ctx, supply)
	if !ok {
		t.Fatal("normalize failed")
	}
	if !Equal(norm, u(3), ctx, supply) {
		t.Errorf("delta-unfolded n = %s, want U3", norm)
	}
}

func TestPiCumulativityTakesMax(t *testing.T) {
	ctx := NewContext()
	supply := fresh.NewSupply()
	x := term.NewVar("x")
	pi := term.NewPi(x, u(2), u(7))
	typ, ok := Infer(pi, ctx, supply)
	if !ok {
		t.Fatal("Pi failed to type check")
	}
	if !Equal(typ, u(8), ctx, supply) {
		t.Errorf("type of Pi x:U2, U7 = %s, want U8", typ)
	}
}

func TestApplicationTypeMismatchFails(t *testing.T) {
	ctx := NewContext()
	supply := fresh.NewSupply()
	x := term.NewVar("x")
	// \x : U0, x applied to U5 (argument type U6, domain U0) must fail.
	f := term.NewLam(x, u(0), term.Var{Name: x})
	applied := term.App{Fn: f, Arg: u(5)}
	_, ok := Infer(applied, ctx, supply)
	if ok {
		t.Error("expected application with mismatched argument type to fail")
	}
}

func TestEqualityRespectsAlphaRenaming(t *testing.T) {
	ctx := NewContext()
	supply := fresh.NewSupply()
	x := term.NewVar("x")
	y := term.NewVar("y")
	lamX := term.NewLam(x, u(0), term.Var{Name: x})
	lamY := term.NewLam(y, u(0), term.Var{Name: y})
	if !Equal(lamX, lamY, ctx, supply) {
		t.Error("alpha-equivalent lambdas should be definitionally equal")
	}
}
