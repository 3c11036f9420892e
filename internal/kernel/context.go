package kernel

import (
	"github.com/sinepia-lang/sinepia/internal/fresh"
	"github.com/sinepia-lang/sinepia/internal/term"
)

// entryKind distinguishes the three states a name in the context can be in.
type entryKind int

const (
	kindAxiom entryKind = iota
	kindUnproved
	kindProved
)

type entry struct {
	kind entryKind
	typ  term.Expr
	val  term.Expr // only meaningful when kind == kindProved
}

// varKey is the map key for a Variable: entries are looked up by structural
// identity (name/id/generated-ness), matching Variable.Equal.
type varKey struct {
	name      string
	id        uint64
	generated bool
}

func keyOf(v term.Variable) varKey {
	return varKey{name: v.Hint(), id: v.ID(), generated: v.IsGenerated()}
}

// Context is the persistent mapping from variable to context entry — the Γ
// in Γ |- x : A. Names are unique once inserted as an axiom; an unproved
// theorem may transition to proved; a proved theorem's value may be
// replaced by a later proof of the same name. No operation removes an
// entry from a context reachable by a caller.
type Context struct {
	entries map[varKey]entry
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{entries: make(map[varKey]entry)}
}

// clone returns a context with its own copy of the entry map, so extensions
// made by a recursive call never leak back to the caller's context. A plain
// copy-on-extend map is an acceptable persistent mapping at the context
// sizes this kernel sees.
func (c *Context) clone() *Context {
	cp := make(map[varKey]entry, len(c.entries))
	for k, v := range c.entries {
		cp[k] = v
	}
	return &Context{entries: cp}
}

// withType returns a derived context extending c with an additional
// Unproved entry for x : typ. It is the mechanism normalization and
// inference use to descend under a binder, treating the bound variable as
// an opaque neutral rather than something δ-unfoldable. It performs no
// type-checking of typ and must never be exposed outside this package.
func (c *Context) withType(x term.Variable, typ term.Expr) *Context {
	cp := c.clone()
	cp.entries[keyOf(x)] = entry{kind: kindUnproved, typ: typ}
	return cp
}

// withoutEntry returns a derived context with v removed entirely. discharge
// uses this to type-check a proof against a snapshot that does not include
// the theorem being proved, so the proof cannot δ-unfold its own name during
// normalization.
func (c *Context) withoutEntry(v term.Variable) *Context {
	cp := c.clone()
	delete(cp.entries, keyOf(v))
	return cp
}

// Contains reports whether v has any entry (axiom, unproved, or proved).
func (c *Context) Contains(v term.Variable) bool {
	_, ok := c.entries[keyOf(v)]
	return ok
}

// IsAxiom reports whether v refers to an axiom.
func (c *Context) IsAxiom(v term.Variable) bool {
	e, ok := c.entries[keyOf(v)]
	return ok && e.kind == kindAxiom
}

// IsUnproved reports whether v refers to a theorem with no proof yet.
func (c *Context) IsUnproved(v term.Variable) bool {
	e, ok := c.entries[keyOf(v)]
	return ok && e.kind == kindUnproved
}

// IsProved reports whether v refers to a theorem with a stored proof.
func (c *Context) IsProved(v term.Variable) bool {
	e, ok := c.entries[keyOf(v)]
	return ok && e.kind == kindProved
}

// LookupType returns the stored type for v, whether axiom, proved, or
// unproved theorem, as long as v exists in the context.
func (c *Context) LookupType(v term.Variable) (term.Expr, bool) {
	e, ok := c.entries[keyOf(v)]
	if !ok {
		return nil, false
	}
	return e.typ, true
}

// LookupValue returns the stored proof term for v, only when v is proved.
func (c *Context) LookupValue(v term.Variable) (term.Expr, bool) {
	e, ok := c.entries[keyOf(v)]
	if !ok || e.kind != kindProved {
		return nil, false
	}
	return e.val, true
}

// AddAxiom postulates v as an inhabitant of typ. It fails with
// ErrAlreadyExists if v is already in the context, or with
// ErrDoesNotTypeCheck if typ itself fails to type-check.
func (c *Context) AddAxiom(v term.Variable, typ term.Expr, supply *fresh.Supply) error {
	if c.Contains(v) {
		return &ErrAlreadyExists{Name: v.String()}
	}
	if _, ok := Infer(typ, c, supply); !ok {
		return &ErrDoesNotTypeCheck{}
	}
	c.entries[keyOf(v)] = entry{kind: kindAxiom, typ: typ}
	return nil
}

// AddTheorem states v : typ without a proof. Same failure modes as
// AddAxiom.
func (c *Context) AddTheorem(v term.Variable, typ term.Expr, supply *fresh.Supply) error {
	if c.Contains(v) {
		return &ErrAlreadyExists{Name: v.String()}
	}
	if _, ok := Infer(typ, c, supply); !ok {
		return &ErrDoesNotTypeCheck{}
	}
	c.entries[keyOf(v)] = entry{kind: kindUnproved, typ: typ}
	return nil
}

// Discharge supplies proof as the inhabitant of v's stated type. It fails
// with ErrCannotProveAxiom if v is an axiom, ErrVariableNotFound if v is
// absent, ErrDoesNotTypeCheck if proof itself fails to type-check, or
// ErrTypesDoNotMatch if proof's inferred type is not definitionally equal to
// v's stated type. On success it returns the previous proof term, if v was
// already proved (a rebind), and whether one existed.
func (c *Context) Discharge(v term.Variable, proof term.Expr, supply *fresh.Supply) (term.Expr, bool, error) {
	e, ok := c.entries[keyOf(v)]
	if !ok {
		return nil, false, &ErrVariableNotFound{Name: v.String()}
	}
	if e.kind == kindAxiom {
		return nil, false, &ErrCannotProveAxiom{Name: v.String()}
	}

	// Snapshot excludes v itself so the proof cannot reference its own name
	// and loop under delta-unfolding during normalization.
	snapshot := c.withoutEntry(v)

	inferred, ok := Infer(proof, snapshot, supply)
	if !ok {
		return nil, false, &ErrDoesNotTypeCheck{}
	}
	if !Equal(e.typ, inferred, snapshot, supply) {
		return nil, false, &ErrTypesDoNotMatch{Expected: e.typ, Actual: inferred}
	}

	hadPrevious := e.kind == kindProved
	var previous term.Expr
	if hadPrevious {
		previous = e.val
	}
	c.entries[keyOf(v)] = entry{kind: kindProved, typ: e.typ, val: proof}
	return previous, hadPrevious, nil
}

// Stats summarizes the population of a context, for diagnostics and REPL
// status lines.
type Stats struct {
	Axioms   int
	Unproved int
	Proved   int
}

// Stats computes the current entry-kind counts.
func (c *Context) Stats() Stats {
	var s Stats
	for _, e := range c.entries {
		switch e.kind {
		case kindAxiom:
			s.Axioms++
		case kindUnproved:
			s.Unproved++
		case kindProved:
			s.Proved++
		}
	}
	return s
}
