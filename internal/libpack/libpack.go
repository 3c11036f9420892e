// Package libpack loads axiom packs: txtar archives bundling preset
// sinepia statements (see internal/surface) that get applied to a
// kernel.Context before a session starts, so a REPL or batch run doesn't
// begin from a bare context every time.
package libpack

import (
	"fmt"
	"os"

	"golang.org/x/tools/txtar"

	"github.com/sinepia-lang/sinepia/internal/fresh"
	"github.com/sinepia-lang/sinepia/internal/kernel"
	"github.com/sinepia-lang/sinepia/internal/surface"
)

// Result reports how many statements were applied from each file of a pack,
// in archive order, so a caller can print a short load summary.
type Result struct {
	File       string
	Statements int
}

// Load reads the txtar archive at path and applies every statement in every
// file, in archive order, to ctx. A malformed or ill-typed statement fails
// exactly the way a REPL line typed by hand would: loading a pack grants no
// special trust over any other source of statements.
func Load(path string, ctx *kernel.Context, supply *fresh.Supply) ([]Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading axiom pack %s: %w", path, err)
	}
	archive := txtar.Parse(data)

	results := make([]Result, 0, len(archive.Files))
	for _, f := range archive.Files {
		stmts, err := surface.ParseStatements(string(f.Data))
		if err != nil {
			return nil, fmt.Errorf("%s: parsing %s: %w", path, f.Name, err)
		}
		if err := applyAll(stmts, ctx, supply); err != nil {
			return nil, fmt.Errorf("%s: applying %s: %w", path, f.Name, err)
		}
		results = append(results, Result{File: f.Name, Statements: len(stmts)})
	}
	return results, nil
}

func applyAll(stmts []surface.Statement, ctx *kernel.Context, supply *fresh.Supply) error {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case surface.AxiomStmt:
			if err := ctx.AddAxiom(s.Name, s.Type, supply); err != nil {
				return err
			}
		case surface.TheoremStmt:
			if err := ctx.AddTheorem(s.Name, s.Type, supply); err != nil {
				return err
			}
		case surface.ProofStmt:
			if _, _, err := ctx.Discharge(s.Name, s.Proof, supply); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown statement type %T", stmt)
		}
	}
	return nil
}
