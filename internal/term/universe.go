package term

import "math/big"

// Universe is a single non-negative level. The level is arbitrary-precision
// (math/big.Int) so overflow is structurally impossible rather than merely
// unlikely.
type Universe struct {
	Level *big.Int
}

// NewUniverse builds a universe from a small int, for convenience at call
// sites that don't need arbitrary precision (tests, literals below U1000 or
// so). Levels read from surface syntax go through big.Int parsing directly.
func NewUniverse(level int64) Universe {
	return Universe{Level: big.NewInt(level)}
}

// Succ returns the universe one level above u, used by Uni's inference rule
// (U_i : U_i+1).
func (u Universe) Succ() Universe {
	return Universe{Level: new(big.Int).Add(u.Level, big.NewInt(1))}
}

// Max returns the universe with the greater of two levels, used by Pi's
// inference rule.
func Max(a, b Universe) Universe {
	if a.Level.Cmp(b.Level) >= 0 {
		return a
	}
	return b
}

// Equal compares two universes by level.
func (u Universe) Equal(o Universe) bool {
	return u.Level.Cmp(o.Level) == 0
}

func (u Universe) String() string {
	return "U" + u.Level.String()
}
