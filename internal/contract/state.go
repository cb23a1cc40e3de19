package contract

import "fmt"

// ReferenceState is an ordered sequence of occupation numbers in {0, 1}
// describing the reference configuration for normal ordering, e.g. a
// Fermi sea. It is read-only for the duration of a contraction call.
type ReferenceState []int

// Validate checks length against the operand edge size and restricts
// entries to {0, 1}.
func (s ReferenceState) Validate(n int) error {
	if len(s) != n {
		return fmt.Errorf("%w: reference state has %d modes, operands have %d", ErrShapeMismatch, len(s), n)
	}
	for i, occ := range s {
		if occ != 0 && occ != 1 {
			return fmt.Errorf("%w: mode %d has occupation %d", ErrBadReferenceState, i, occ)
		}
	}
	return nil
}

// FermiSea returns a reference state with the first filled modes
// occupied and the rest empty.
func FermiSea(n, filled int) ReferenceState {
	state := make(ReferenceState, n)
	for i := 0; i < filled && i < n; i++ {
		state[i] = 1
	}
	return state
}
