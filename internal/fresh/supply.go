// Package fresh implements the monotone counter that substitution threads
// through every binder traversal to allocate capture-free variable names.
package fresh

import "github.com/sinepia-lang/sinepia/internal/term"

// Supply is a single monotone counter, initialized to zero. It is owned
// exclusively by whichever goroutine drives one kernel call; it requires no
// locking — each session owns its own supply.
type Supply struct {
	counter uint64
}

// NewSupply returns a fresh, zeroed counter.
func NewSupply() *Supply {
	return &Supply{}
}

// Refresh increments the counter and returns a generated variable whose hint
// is v's textual part and whose identifier is the new counter value. It
// never reuses an identifier.
func (s *Supply) Refresh(v term.Variable) term.Variable {
	s.counter++
	return term.NewGenerated(v.Hint(), s.counter)
}

// Count reports how many names have been generated so far, used by
// diagnostics.FormatStats to report session activity.
func (s *Supply) Count() uint64 {
	return s.counter
}
