// Package contract implements the tensor contraction engine for the
// flow-equation method: generalized commutators between rank-2 and
// rank-4 operators and their normal-ordering corrections with respect
// to a reference occupation state.
//
// All routines are pure: operands are read-only, every result is
// freshly allocated and owned by the caller. The outer flow integrator
// invokes the engine once per operator pair per integration step.
package contract

import (
	"fmt"
	"log/slog"

	"github.com/floweq-dev/floweq/internal/parallel"
	"github.com/floweq-dev/floweq/internal/tensor"
)

// Variant selects the computation strategy for a contraction.
type Variant int

const (
	// SymmetryOptimized computes only the upper triangle of a matrix
	// commutator and derives the rest from the declared symmetry. This
	// is the production path.
	SymmetryOptimized Variant = iota
	// Reference computes every output element directly, exploiting no
	// symmetry. Used to validate the optimized path, not for speed.
	Reference
)

// String returns a human-readable variant name.
func (v Variant) String() string {
	switch v {
	case SymmetryOptimized:
		return "symmetry-optimized"
	case Reference:
		return "reference"
	default:
		return "unknown"
	}
}

// Symmetry declares the symmetry class of a matrix commutator result.
// The surrounding physics fixes it; the engine does not verify it.
type Symmetry int

const (
	// Symmetric mirrors the upper triangle unchanged: C[j,i] = C[i,j].
	Symmetric Symmetry = iota
	// Antisymmetric mirrors with a sign flip: C[j,i] = -C[i,j].
	// Generators of the flow are antisymmetric.
	Antisymmetric
)

// Options select the strategy and symmetry class for a contraction.
type Options struct {
	// Variant picks the computation path. The zero value is the
	// optimized production path.
	Variant Variant
	// Symmetry declares how mirrored matrix entries are derived.
	Symmetry Symmetry
	// Hermitian enables conjugate-aware mirroring for complex
	// operands: C[j,i] = conj(C[i,j]) for a Hermitian result,
	// C[j,i] = -conj(C[i,j]) for an anti-Hermitian one. Valid only
	// when the operands are Hermitian; the engine does not check.
	Hermitian bool
}

// Engine routes contraction requests to the matching kernel. It is
// stateless apart from injected configuration and safe for concurrent
// use.
type Engine struct {
	par    parallel.Config
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithParallelism sets the parallel execution configuration.
func WithParallelism(cfg parallel.Config) Option {
	return func(e *Engine) {
		e.par = cfg
	}
}

// WithLogger sets the logger used for diagnostics such as variant
// downgrades.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine. By default parallelism is derived from the
// CPU count once, and diagnostics go to the default slog logger.
func New(opts ...Option) *Engine {
	e := &Engine{
		par:    parallel.DefaultConfig(),
		logger: slog.Default().With("component", "contract"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Contract computes the commutator of two operators, routing on their
// ranks:
//
//	2×2 → [A,B] matrix commutator
//	4×2 → single-index commutator of an interaction tensor with a matrix
//	2×4 → the mirror of 4×2, with a global sign flip ([B,A] = -[A,B])
//
// Operands of differing element type are promoted to complex128 before
// the kernel runs. The result rank follows the operands; 4×4 has no
// plain commutator here and fails with ErrUnsupportedOperation.
func (e *Engine) Contract(a, b *tensor.RawTensor, opts Options) (*tensor.RawTensor, error) {
	if _, err := checkOperands(a, b); err != nil {
		return nil, err
	}
	a, b = promotePair(a, b)

	ra, rb := a.Shape().Rank(), b.Shape().Rank()
	switch {
	case ra == 2 && rb == 2:
		return e.matrixCommutator(a, b, opts), nil
	case ra == 4 && rb == 2:
		return e.tensorCommutator(a, b, false), nil
	case ra == 2 && rb == 4:
		return e.tensorCommutator(b, a, true), nil
	default:
		return nil, fmt.Errorf("%w: commutator of rank %d with rank %d", ErrUnsupportedOperation, ra, rb)
	}
}

// ContractNO computes the normal-ordering correction of two operators
// with respect to a reference state, routing on ranks:
//
//	4×2 → two-body reduction to a matrix
//	2×4 → the mirror of 4×2, with a global sign flip
//	4×4 → four-body reduction to an interaction tensor
//	2×2 → identically zero matrix (no correction exists at this rank)
//
// The reference variant has no normal-ordering kernels; requesting it
// downgrades to the optimized variant with a logged warning.
func (e *Engine) ContractNO(a, b *tensor.RawTensor, state ReferenceState, opts Options) (*tensor.RawTensor, error) {
	n, err := checkOperands(a, b)
	if err != nil {
		return nil, err
	}
	if err := state.Validate(n); err != nil {
		return nil, err
	}
	if opts.Variant == Reference {
		e.logger.Warn("normal-ordering corrections unavailable for requested variant, downgrading",
			"requested", opts.Variant.String(),
			"using", SymmetryOptimized.String())
		opts.Variant = SymmetryOptimized
	}
	a, b = promotePair(a, b)

	ra, rb := a.Shape().Rank(), b.Shape().Rank()
	switch {
	case ra == 4 && rb == 2:
		return e.normalOrder42(a, b, state, false), nil
	case ra == 2 && rb == 4:
		return e.normalOrder42(b, a, state, true), nil
	case ra == 4 && rb == 4:
		return e.normalOrder44(a, b, state), nil
	default:
		// Two rank-2 operators carry no normal-ordering correction:
		// the contribution is identically zero at matching shape.
		return zerosLike(a, tensor.Matrix(n)), nil
	}
}

// checkOperands validates ranks, hypercubic shapes and the shared edge
// length, returning that length.
func checkOperands(a, b *tensor.RawTensor) (int, error) {
	na, err := checkOperand(a)
	if err != nil {
		return 0, err
	}
	nb, err := checkOperand(b)
	if err != nil {
		return 0, err
	}
	if na != nb {
		return 0, fmt.Errorf("%w: operand edge lengths %d and %d differ", ErrShapeMismatch, na, nb)
	}
	return na, nil
}

func checkOperand(t *tensor.RawTensor) (int, error) {
	shape := t.Shape()
	if r := shape.Rank(); r != 2 && r != 4 {
		return 0, fmt.Errorf("%w: operand has rank %d, want 2 or 4", ErrUnsupportedOperation, r)
	}
	n, ok := shape.Hypercubic()
	if !ok {
		return 0, fmt.Errorf("%w: operand shape %v is not hypercubic", ErrShapeMismatch, shape)
	}
	return n, nil
}

// promotePair lifts a mixed real/complex operand pair into the complex
// field. Matching pairs pass through untouched.
func promotePair(a, b *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor) {
	if a.DType() == b.DType() {
		return a, b
	}
	return tensor.Promote(a), tensor.Promote(b)
}

// zerosLike allocates a zero tensor of the given shape carrying the
// element type of the prototype.
func zerosLike(proto *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	if proto.DType() == tensor.Complex128 {
		return tensor.Zeros[complex128](shape)
	}
	return tensor.Zeros[float64](shape)
}
