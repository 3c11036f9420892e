// Package diagnostics maps kernel errors to the fixed user-visible strings
// the driver prints, and formats context statistics for status lines.
package diagnostics

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/sinepia-lang/sinepia/internal/kernel"
)

// Format returns the fixed user-visible message for a kernel error, one per
// error kind, regardless of the dynamic detail (name, expected/actual type)
// the error carries — those live in err.Error() for logs, not for the REPL.
func Format(err error) string {
	switch err.(type) {
	case *kernel.ErrCannotProveAxiom:
		return "Axioms cannot be proven"
	case *kernel.ErrVariableNotFound:
		return "Bound variable is not found"
	case *kernel.ErrDoesNotTypeCheck:
		return "Expression does not type check"
	case *kernel.ErrTypesDoNotMatch:
		return "Types do not match"
	case *kernel.ErrAlreadyExists:
		return "Axiom or theorem with the same name already exists"
	default:
		return err.Error()
	}
}

// FormatStats renders a context's population for the REPL's :stats status
// line, using humanize.Comma so large counts (from a big axiom pack) stay
// readable.
func FormatStats(s kernel.Stats, freshCount uint64) string {
	return fmt.Sprintf(
		"axioms=%s theorems=%s proved=%s fresh-names=%s",
		humanize.Comma(int64(s.Axioms)),
		humanize.Comma(int64(s.Unproved+s.Proved)),
		humanize.Comma(int64(s.Proved)),
		humanize.Comma(int64(freshCount)),
	)
}
