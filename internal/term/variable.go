// Package term defines the expression tree of the kernel's lambda calculus:
// variables, universes, application, and the two binder forms (lambda and
// pi). Nothing in this package talks to a context or performs reduction —
// it is the pure data model every other kernel package recurses over.
package term

import "fmt"

// Variable is either a user-written name or a name generated during
// substitution. Two user variables are equal iff their text matches; two
// generated variables are equal iff both their hint and identifier match.
// A user variable is never equal to a generated one, even with identical
// text, since they occupy disjoint namespaces.
type Variable struct {
	name      string
	id        uint64
	generated bool
}

// NewVar builds a user-written variable.
func NewVar(name string) Variable {
	return Variable{name: name}
}

// Hint returns the textual part of a variable: its name if user-written, or
// the hint it was generated from otherwise. refresh uses this to name the
// fresh variable it produces.
func (v Variable) Hint() string {
	return v.name
}

// ID returns the generated identifier, or 0 for a user variable.
func (v Variable) ID() uint64 {
	return v.id
}

// IsGenerated reports whether v was produced by a fresh-name supply.
func (v Variable) IsGenerated() bool {
	return v.generated
}

// Equal implements the structural equality rule from the data model: kind
// must match, then either the name (user) or name+id (generated) must match.
func (v Variable) Equal(o Variable) bool {
	if v.generated != o.generated {
		return false
	}
	if v.generated {
		return v.name == o.name && v.id == o.id
	}
	return v.name == o.name
}

func (v Variable) String() string {
	if !v.generated {
		return v.name
	}
	return fmt.Sprintf("$gensym_%s_%d", v.name, v.id)
}

// newGenerated is package-private to term; only fresh.Supply may mint one,
// via the NewGenerated constructor exposed below, to keep uniqueness owned
// by a single counter.
func newGenerated(hint string, id uint64) Variable {
	return Variable{name: hint, id: id, generated: true}
}

// NewGenerated constructs a generated variable. Exported for internal/fresh;
// callers outside that package should never need to mint one by hand since
// it breaks the "globally unique within a session" invariant.
func NewGenerated(hint string, id uint64) Variable {
	return newGenerated(hint, id)
}
