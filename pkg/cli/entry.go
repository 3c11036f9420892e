// Package cli implements the interactive driver: a read-parse-dispatch loop
// over a kernel.Context, plus the one-shot batch mode used by `sinepia run`.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/sinepia-lang/sinepia/internal/config"
	"github.com/sinepia-lang/sinepia/internal/diagnostics"
	"github.com/sinepia-lang/sinepia/internal/fresh"
	"github.com/sinepia-lang/sinepia/internal/kernel"
	"github.com/sinepia-lang/sinepia/internal/libpack"
	"github.com/sinepia-lang/sinepia/internal/surface"
)

// REPL is the interactive read-parse-dispatch loop: one statement per line,
// dispatched to the kernel, with a fixed diagnostic printed on failure. It
// never panics on bad input — every error path prints
// a message and continues to the next line.
type REPL struct {
	ctx    *kernel.Context
	supply *fresh.Supply
	cfg    *config.Config

	scanner *bufio.Scanner
	input   io.Reader
	output  io.Writer

	promptSuppressed bool
}

// NewREPL returns a REPL reading from in and writing to out, configured by
// cfg (nil means defaults).
func NewREPL(in io.Reader, out io.Writer, cfg *config.Config) *REPL {
	if cfg == nil {
		cfg = &config.Config{}
		cfg.UniverseDisplay = "short"
		cfg.Prompt = "sinepia> "
	}
	return &REPL{
		ctx:     kernel.NewContext(),
		supply:  fresh.NewSupply(),
		cfg:     cfg,
		input:   in,
		output:  out,
		scanner: bufio.NewScanner(in),
	}
}

// LoadLibs applies every axiom pack named in the REPL's configuration, in
// order, before the first prompt is shown.
func (r *REPL) LoadLibs() error {
	for _, path := range r.cfg.Libs {
		results, err := libpack.Load(path, r.ctx, r.supply)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		for _, res := range results {
			fmt.Fprintf(r.output, "loaded %s (%d statements) from %s\n", res.File, res.Statements, path)
		}
	}
	return nil
}

// Run drives the loop until EOF or a fatal read error. A statement that
// merely fails to type-check does not stop the loop: its diagnostic is
// printed and the loop continues, exiting 0 on normal termination.
func (r *REPL) Run() {
	isTTY := false
	if f, ok := r.input.(*os.File); ok {
		isTTY = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	var pending strings.Builder
	for {
		if isTTY {
			if pending.Len() == 0 {
				fmt.Fprint(r.output, r.cfg.Prompt)
			} else {
				fmt.Fprint(r.output, "... ")
			}
		}

		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				fmt.Fprintf(r.output, "read error: %v\n", err)
			}
			return
		}

		line := r.scanner.Text()

		if pending.Len() == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, ":") {
				r.handleMeta(trimmed)
				continue
			}
		}

		pending.WriteString(line)
		pending.WriteString("\n")

		if !strings.Contains(pending.String(), ".") {
			continue
		}

		src := pending.String()
		pending.Reset()
		r.runStatements(src)
	}
}

func (r *REPL) handleMeta(line string) bool {
	switch {
	case line == ":quit" || line == ":q":
		os.Exit(0)
		return true
	case line == ":stats":
		fmt.Fprintln(r.output, diagnostics.FormatStats(r.ctx.Stats(), r.supply.Count()))
		return true
	case strings.HasPrefix(line, ":load "):
		path := strings.TrimSpace(strings.TrimPrefix(line, ":load "))
		results, err := libpack.Load(path, r.ctx, r.supply)
		if err != nil {
			fmt.Fprintf(r.output, "error: %v\n", err)
			return true
		}
		for _, res := range results {
			fmt.Fprintf(r.output, "loaded %s (%d statements)\n", res.File, res.Statements)
		}
		return true
	default:
		return false
	}
}

func (r *REPL) runStatements(src string) {
	stmts, err := surface.ParseStatements(src)
	if err != nil {
		fmt.Fprintf(r.output, "error: %v\n", err)
		return
	}
	for _, stmt := range stmts {
		r.runStatement(stmt)
	}
}

func (r *REPL) runStatement(stmt surface.Statement) {
	switch s := stmt.(type) {
	case surface.AxiomStmt:
		if err := r.ctx.AddAxiom(s.Name, s.Type, r.supply); err != nil {
			fmt.Fprintln(r.output, diagnostics.Format(err))
			return
		}
		fmt.Fprintf(r.output, "%s : axiom\n", s.Name)
	case surface.TheoremStmt:
		if err := r.ctx.AddTheorem(s.Name, s.Type, r.supply); err != nil {
			fmt.Fprintln(r.output, diagnostics.Format(err))
			return
		}
		fmt.Fprintf(r.output, "%s : theorem (unproved)\n", s.Name)
	case surface.ProofStmt:
		if _, _, err := r.ctx.Discharge(s.Name, s.Proof, r.supply); err != nil {
			fmt.Fprintln(r.output, diagnostics.Format(err))
			return
		}
		fmt.Fprintf(r.output, "%s : proved\n", s.Name)
	}
}

// RunBatch applies every statement in src to a fresh context and reports the
// first error encountered, if any — the non-interactive counterpart to Run,
// used by `sinepia run FILE` and by tests.
func RunBatch(src string) (*kernel.Context, error) {
	ctx := kernel.NewContext()
	supply := fresh.NewSupply()
	stmts, err := surface.ParseStatements(src)
	if err != nil {
		return ctx, err
	}
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case surface.AxiomStmt:
			if err := ctx.AddAxiom(s.Name, s.Type, supply); err != nil {
				return ctx, err
			}
		case surface.TheoremStmt:
			if err := ctx.AddTheorem(s.Name, s.Type, supply); err != nil {
				return ctx, err
			}
		case surface.ProofStmt:
			if _, _, err := ctx.Discharge(s.Name, s.Proof, supply); err != nil {
				return ctx, err
			}
		}
	}
	return ctx, nil
}
