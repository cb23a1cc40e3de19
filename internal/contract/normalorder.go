package contract

import (
	"github.com/floweq-dev/floweq/internal/parallel"
	"github.com/floweq-dev/floweq/internal/tensor"
)

// normalOrder42 computes the two-body reduction of an interaction
// tensor A against a matrix B with respect to a reference state:
//
//	C[i,j] = Σ_{k,q} (n_k - n_q) · B[q,k] ·
//	         ( A[i,j,k,q] + A[k,q,i,j] - A[k,j,i,q] + A[i,q,k,j] )
//
// restricted to pairs with n_k ≠ n_q. Equal occupations are Pauli
// blocked: those Wick contractions vanish identically and are skipped,
// not computed. flip negates the result for the mirrored operand order.
func (e *Engine) normalOrder42(a, b *tensor.RawTensor, state ReferenceState, flip bool) *tensor.RawTensor {
	switch a.DType() {
	case tensor.Complex128:
		out := normalOrder42Kernel[complex128](e, a, b, state)
		if flip {
			negate[complex128](out)
		}
		return out
	default:
		out := normalOrder42Kernel[float64](e, a, b, state)
		if flip {
			negate[float64](out)
		}
		return out
	}
}

func normalOrder42Kernel[T tensor.Scalar](e *Engine, a, b *tensor.RawTensor, state ReferenceState) *tensor.RawTensor {
	n := b.Shape()[0]
	n2 := n * n
	n3 := n2 * n
	out := tensor.Zeros[T](tensor.Matrix(n))

	av := tensor.As[T](a)
	bv := tensor.As[T](b)
	cv := tensor.As[T](out)

	parallel.ForSquare(n, func(i, j int) {
		var sum T
		for k := 0; k < n; k++ {
			for q := 0; q < n; q++ {
				if state[k] == state[q] {
					continue // Pauli blocked
				}
				w := tensor.FromFloat[T](float64(state[k] - state[q]))
				sum += (av[i*n3+j*n2+k*n+q] +
					av[k*n3+q*n2+i*n+j] -
					av[k*n3+j*n2+i*n+q] +
					av[i*n3+q*n2+k*n+j]) * bv[q*n+k] * w
			}
		}
		cv[i*n+j] = sum
	}, e.par)

	return out
}

// normalOrder44 computes the four-body reduction of two interaction
// tensors over a shared internal index pair (l,m). Two channels
// accumulate into the same output:
//
// Density channel, active only for n_l ≠ n_m and weighted by
// (n_l - n_m): four antisymmetrized particle-hole double contractions
// pairing legs of A with permuted legs of B.
//
// Pairing channel, active for every (l,m) and weighted by (n_l + n_m):
// two pair creation/annihilation contractions, which carry no
// occupation-difference exclusion.
//
// Six nested index dimensions make this the dominant cost of the
// engine.
func (e *Engine) normalOrder44(a, b *tensor.RawTensor, state ReferenceState) *tensor.RawTensor {
	switch a.DType() {
	case tensor.Complex128:
		return normalOrder44Kernel[complex128](e, a, b, state)
	default:
		return normalOrder44Kernel[float64](e, a, b, state)
	}
}

func normalOrder44Kernel[T tensor.Scalar](e *Engine, a, b *tensor.RawTensor, state ReferenceState) *tensor.RawTensor {
	n := len(state)
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
					for m := 0; m < n; m++ {
						if state[l] != state[m] {
							d := tensor.FromFloat[T](float64(state[l] - state[m]))
							ph := bv[m*n3+l*n2+k*n+q] +
								bv[k*n3+q*n2+m*n+l] -
								bv[m*n3+q*n2+k*n+l] +
								bv[k*n3+l*n2+m*n+q]
							sum += av[base+l*n+m] * ph * d
							sum += av[l*n3+m*n2+i*n+j] * ph * d
							sum -= av[l*n3+j*n2+i*n+m] * ph * d
							sum += av[i*n3+l*n2+m*n+j] * (bv[k*n3+m*n2+l*n+q] +
								bv[k*n3+q*n2+l*n+m] +
								bv[l*n3+m*n2+k*n+q] -
								bv[l*n3+q*n2+k*n+m]) * d
						}
						p := tensor.FromFloat[T](float64(state[l] + state[m]))
						sum += av[l*n3+j*n2+m*n+q] * (bv[i*n3+m*n2+k*n+l] + bv[i*n3+l*n2+k*n+m]) * p
						sum += av[i*n3+l*n2+k*n+m] * (bv[m*n3+j*n2+l*n+q] + bv[l*n3+j*n2+m*n+q]) * p
					}
				}
				cv[base+k*n+q] = sum
			}
		}
	}, e.par)

	return out
}
