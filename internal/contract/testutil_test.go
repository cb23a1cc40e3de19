package contract

import (
	"math/rand"

	"github.com/floweq-dev/floweq/internal/tensor"
)

// Deterministic operand builders for the kernel tests.

func randMatrix(rng *rand.Rand, n int) *tensor.RawTensor {
	out := tensor.Zeros[float64](tensor.Matrix(n))
	v := out.AsFloat64()
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}
	return out
}

func randSymmetricMatrix(rng *rand.Rand, n int) *tensor.RawTensor {
	out := tensor.Zeros[float64](tensor.Matrix(n))
	v := out.AsFloat64()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			x := rng.Float64()*2 - 1
			v[i*n+j] = x
			v[j*n+i] = x
		}
	}
	return out
}

func randHermitianMatrix(rng *rand.Rand, n int) *tensor.RawTensor {
	out := tensor.Zeros[complex128](tensor.Matrix(n))
	v := out.AsComplex128()
	for i := 0; i < n; i++ {
		v[i*n+i] = complex(rng.Float64()*2-1, 0)
		for j := i + 1; j < n; j++ {
			x := complex(rng.Float64()*2-1, rng.Float64()*2-1)
			v[i*n+j] = x
			v[j*n+i] = complex(real(x), -imag(x))
		}
	}
	return out
}

func randRank4(rng *rand.Rand, n int) *tensor.RawTensor {
	out := tensor.Zeros[float64](tensor.Rank4(n))
	v := out.AsFloat64()
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}
	return out
}

// at4 reads element (i,j,k,q) of a flat rank-4 buffer with edge n.
// The naive re-computations in the tests use explicit coordinates
// instead of the kernels' precomputed strides.
func at4(v []float64, n, i, j, k, q int) float64 {
	return v[((i*n+j)*n+k)*n+q]
}
