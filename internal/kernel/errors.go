package kernel

import (
	"fmt"

	"github.com/sinepia-lang/sinepia/internal/term"
)

// ErrAlreadyExists is returned when add_axiom/add_theorem targets a name
// already present in the context, axiom or theorem alike.
type ErrAlreadyExists struct {
	Name string
}

func (e *ErrAlreadyExists) Error() string {
	return fmt.Sprintf("%q already exists in the context", e.Name)
}

// ErrVariableNotFound is returned when discharge targets a name absent from
// the context.
type ErrVariableNotFound struct {
	Name string
}

func (e *ErrVariableNotFound) Error() string {
	return fmt.Sprintf("%q is not bound in the context", e.Name)
}

// ErrCannotProveAxiom is returned when discharge targets an axiom.
type ErrCannotProveAxiom struct {
	Name string
}

func (e *ErrCannotProveAxiom) Error() string {
	return fmt.Sprintf("%q is an axiom and cannot be proven", e.Name)
}

// ErrDoesNotTypeCheck wraps a failed inference call. Cause is reserved for
// future nested diagnostics; the current kernel never populates it.
type ErrDoesNotTypeCheck struct {
	Cause error
}

func (e *ErrDoesNotTypeCheck) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("expression does not type check: %s", e.Cause)
	}
	return "expression does not type check"
}

func (e *ErrDoesNotTypeCheck) Unwrap() error {
	return e.Cause
}

// ErrTypesDoNotMatch is returned when a proof's inferred type is not
// definitionally equal to its theorem's stated type.
type ErrTypesDoNotMatch struct {
	Expected term.Expr
	Actual   term.Expr
}

func (e *ErrTypesDoNotMatch) Error() string {
	return fmt.Sprintf("expected type %s, got %s", e.Expected, e.Actual)
}
