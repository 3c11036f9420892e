package surface

import "github.com/sinepia-lang/sinepia/internal/term"

// Statement is one of the three top-level forms the surface language
// accepts, each ending in a period: "axiom NAME : EXPR.",
// "theorem NAME : EXPR.", or "proof NAME := EXPR.".
type Statement interface {
	isStatement()
}

// AxiomStmt postulates Name : Type.
type AxiomStmt struct {
	Name term.Variable
	Type term.Expr
}

func (AxiomStmt) isStatement() {}

// TheoremStmt states Name : Type without yet supplying a proof.
type TheoremStmt struct {
	Name term.Variable
	Type term.Expr
}

func (TheoremStmt) isStatement() {}

// ProofStmt supplies Proof as the inhabitant of a previously stated
// theorem named Name.
type ProofStmt struct {
	Name  term.Variable
	Proof term.Expr
}

func (ProofStmt) isStatement() {}
