package diagnostics

import (
	"testing"

	"github.com/sinepia-lang/sinepia/internal/kernel"
)

func TestFormatMapsFixedStrings(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&kernel.ErrCannotProveAxiom{Name: "Nat"}, "Axioms cannot be proven"},
		{&kernel.ErrVariableNotFound{Name: "ghost"}, "Bound variable is not found"},
		{&kernel.ErrDoesNotTypeCheck{}, "Expression does not type check"},
		{&kernel.ErrTypesDoNotMatch{}, "Types do not match"},
		{&kernel.ErrAlreadyExists{Name: "Nat"}, "Axiom or theorem with the same name already exists"},
	}
	for _, c := range cases {
		if got := Format(c.err); got != c.want {
			t.Errorf("Format(%T) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestFormatStats(t *testing.T) {
	s := kernel.Stats{Axioms: 3, Unproved: 2, Proved: 1}
	got := FormatStats(s, 42)
	want := "axioms=3 theorems=3 proved=1 fresh-names=42"
	if got != want {
		t.Errorf("FormatStats() = %q, want %q", got, want)
	}
}
