package contract

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floweq-dev/floweq/internal/tensor"
)

func TestTensorCommutatorAgainstNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	n := 3
	a := randRank4(rng, n)
	b := randMatrix(rng, n)

	eng := New()
	got, err := eng.Contract(a, b, Options{})
	require.NoError(t, err)
	require.Equal(t, tensor.Rank4(n), got.Shape())

	av, bv, gv := a.AsFloat64(), b.AsFloat64(), got.AsFloat64()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				for q := 0; q < n; q++ {
					var want float64
					for l := 0; l < n; l++ {
						want += at4(av, n, i, j, k, l)*bv[l*n+q] -
							at4(av, n, i, j, l, q)*bv[k*n+l] +
							at4(av, n, i, l, k, q)*bv[l*n+j] -
							at4(av, n, l, j, k, q)*bv[i*n+l]
					}
					assert.InDelta(t, want, at4(gv, n, i, j, k, q), 1e-12,
						"element (%d,%d,%d,%d)", i, j, k, q)
				}
			}
		}
	}
}

func TestTensorCommutatorMirrorIdentity(t *testing.T) {
	// Matrix-first operand order reuses the tensor-first kernel with a
	// global sign flip, so the identity holds exactly.
	rng := rand.New(rand.NewSource(13))
	n := 4
	a := randRank4(rng, n)
	b := randMatrix(rng, n)

	eng := New()
	c42, err := eng.Contract(a, b, Options{})
	require.NoError(t, err)
	c24, err := eng.Contract(b, a, Options{})
	require.NoError(t, err)

	v42, v24 := c42.AsFloat64(), c24.AsFloat64()
	for i := range v42 {
		assert.Equal(t, -v42[i], v24[i], "element %d", i)
	}
}

func TestTensorCommutatorComplexPromotion(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	n := 3
	a := randRank4(rng, n)
	b := randHermitianMatrix(rng, n)

	eng := New()
	got, err := eng.Contract(a, b, Options{})
	require.NoError(t, err)
	require.Equal(t, tensor.Complex128, got.DType())

	// The real parts must match the all-real computation against the
	// real part of B.
	breal := tensor.Zeros[float64](tensor.Matrix(n))
	brv := breal.AsFloat64()
	for i, v := range b.AsComplex128() {
		brv[i] = real(v)
	}
	realOnly, err := eng.Contract(a, breal, Options{})
	require.NoError(t, err)

	rv, cv := realOnly.AsFloat64(), got.AsComplex128()
	for i := range rv {
		assert.InDelta(t, rv[i], real(cv[i]), 1e-12, "re element %d", i)
	}
}
