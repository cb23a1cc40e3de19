package contract

import "errors"

// Structural errors are detected before any computation runs and are
// fatal to the call. Numeric anomalies (NaN, overflow) are not checked:
// the engine trusts its inputs and propagates whatever arithmetic
// produces.
var (
	// ErrShapeMismatch reports a non-square matrix, a non-hypercubic
	// rank-4 tensor, operands with different edge lengths, or a
	// reference state whose length disagrees with the operands.
	ErrShapeMismatch = errors.New("contract: operand shapes incompatible")

	// ErrUnsupportedOperation reports a rank combination outside the
	// supported set for the requested mode.
	ErrUnsupportedOperation = errors.New("contract: unsupported rank combination")

	// ErrBadReferenceState reports an occupation number outside {0, 1}.
	ErrBadReferenceState = errors.New("contract: occupation numbers must be 0 or 1")
)
