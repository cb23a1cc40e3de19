package contract

import (
	"github.com/floweq-dev/floweq/internal/parallel"
	"github.com/floweq-dev/floweq/internal/tensor"
)

// tensorCommutator computes the single-index commutator of an
// interaction tensor A with a matrix B, acting once on each of the
// four tensor legs with alternating sign:
//
//	C[i,j,k,q] =  Σ_l A[i,j,k,l]·B[l,q]
//	            - Σ_l A[i,j,l,q]·B[k,l]
//	            + Σ_l A[i,l,k,q]·B[l,j]
//	            - Σ_l A[l,j,k,q]·B[i,l]
//
// flip negates the whole result, which realizes the mirrored operand
// order (matrix first) through [B,A] = -[A,B]. No symmetry halving
// applies: the four legs are independent, so the full N⁵ work is done
// by both variants with the same formula.
func (e *Engine) tensorCommutator(a, b *tensor.RawTensor, flip bool) *tensor.RawTensor {
	switch a.DType() {
	case tensor.Complex128:
		out := commutator42Kernel[complex128](e, a, b)
		if flip {
			negate[complex128](out)
		}
		return out
	default:
		out := commutator42Kernel[float64](e, a, b)
		if flip {
			negate[float64](out)
		}
		return out
	}
}

func commutator42Kernel[T tensor.Scalar](e *Engine, a, b *tensor.RawTensor) *tensor.RawTensor {
	n := b.Shape()[0]
	n2 := n * n
	n3 := n2 * n
	out := tensor.Zeros[T](tensor.Rank4(n))

	av := tensor.As[T](a)
	bv := tensor.As[T](b)
	cv := tensor.As[T](out)

	parallel.ForSquare(n, func(i, j int) {
		base := i*n3 + j*n2
		for k := 0; k < n; k++ {
			for q := 0; q < n; q++ {
				var sum T
				for l := 0; l < n; l++ {
					sum += av[base+k*n+l] * bv[l*n+q]
					sum -= av[base+l*n+q] * bv[k*n+l]
					sum += av[i*n3+l*n2+k*n+q] * bv[l*n+j]
					sum -= av[l*n3+j*n2+k*n+q] * bv[i*n+l]
				}
				cv[base+k*n+q] = sum
			}
		}
	}, e.par)

	return out
}

// negate flips the sign of every element in place. Only applied to
// freshly allocated results, never to caller-owned operands.
func negate[T tensor.Scalar](t *tensor.RawTensor) {
	v := tensor.As[T](t)
	for i := range v {
		v[i] = -v[i]
	}
}
