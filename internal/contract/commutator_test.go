package contract

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floweq-dev/floweq/internal/tensor"
)

func TestMatrixCommutatorPauli(t *testing.T) {
	// [σz, σx] is exactly integer valued, so both variants must match
	// it exactly.
	sz, err := tensor.FromSlice([]float64{1, 0, 0, -1}, tensor.Matrix(2))
	require.NoError(t, err)
	sx, err := tensor.FromSlice([]float64{0, 1, 1, 0}, tensor.Matrix(2))
	require.NoError(t, err)

	want := []float64{0, 2, -2, 0}

	eng := New()
	for _, variant := range []Variant{SymmetryOptimized, Reference} {
		t.Run(variant.String(), func(t *testing.T) {
			c, err := eng.Contract(sz, sx, Options{Variant: variant, Symmetry: Antisymmetric})
			require.NoError(t, err)
			assert.Equal(t, want, c.AsFloat64())
		})
	}
}

func TestMatrixCommutatorAntisymmetryIdentity(t *testing.T) {
	// [A,B] = -[B,A] is definitional and holds exactly: both calls form
	// the same products and only flip the subtraction order.
	rng := rand.New(rand.NewSource(7))
	n := 8
	a := randSymmetricMatrix(rng, n)
	b := randSymmetricMatrix(rng, n)

	eng := New()
	for _, variant := range []Variant{SymmetryOptimized, Reference} {
		t.Run(variant.String(), func(t *testing.T) {
			opts := Options{Variant: variant, Symmetry: Antisymmetric}
			ab, err := eng.Contract(a, b, opts)
			require.NoError(t, err)
			ba, err := eng.Contract(b, a, opts)
			require.NoError(t, err)

			abv, bav := ab.AsFloat64(), ba.AsFloat64()
			for i := range abv {
				assert.Equal(t, abv[i], -bav[i], "element %d", i)
			}
		})
	}
}

func TestMatrixCommutatorReferenceAgreement(t *testing.T) {
	// The commutator of two symmetric matrices is antisymmetric, so the
	// halved kernel with antisymmetric mirroring must reproduce the
	// full double-sided computation.
	rng := rand.New(rand.NewSource(21))
	n := 10
	a := randSymmetricMatrix(rng, n)
	b := randSymmetricMatrix(rng, n)

	eng := New()
	opt, err := eng.Contract(a, b, Options{Symmetry: Antisymmetric})
	require.NoError(t, err)
	ref, err := eng.Contract(a, b, Options{Variant: Reference, Symmetry: Antisymmetric})
	require.NoError(t, err)

	optv, refv := opt.AsFloat64(), ref.AsFloat64()
	for i := range optv {
		assert.InDelta(t, refv[i], optv[i], 1e-10, "element %d", i)
	}
}

func TestMatrixCommutatorHermitianMirror(t *testing.T) {
	// The commutator of Hermitian operators is anti-Hermitian, so the
	// conjugate-aware mirror C[j,i] = -conj(C[i,j]) must agree with the
	// full computation.
	rng := rand.New(rand.NewSource(33))
	n := 6
	a := randHermitianMatrix(rng, n)
	b := randHermitianMatrix(rng, n)

	eng := New()
	opt, err := eng.Contract(a, b, Options{Symmetry: Antisymmetric, Hermitian: true})
	require.NoError(t, err)
	ref, err := eng.Contract(a, b, Options{Variant: Reference})
	require.NoError(t, err)

	optv, refv := opt.AsComplex128(), ref.AsComplex128()
	for i := range optv {
		assert.InDelta(t, real(refv[i]), real(optv[i]), 1e-10, "re element %d", i)
		assert.InDelta(t, imag(refv[i]), imag(optv[i]), 1e-10, "im element %d", i)
	}
}

func TestMatrixCommutatorPromotion(t *testing.T) {
	// Mixed real/complex operands promote to the complex field, and the
	// promoted result matches the all-complex computation.
	rng := rand.New(rand.NewSource(5))
	n := 4
	a := randMatrix(rng, n)
	b := randHermitianMatrix(rng, n)

	eng := New()
	mixed, err := eng.Contract(a, b, Options{Variant: Reference})
	require.NoError(t, err)
	require.Equal(t, tensor.Complex128, mixed.DType())

	pure, err := eng.Contract(tensor.Promote(a), b, Options{Variant: Reference})
	require.NoError(t, err)
	assert.Equal(t, pure.AsComplex128(), mixed.AsComplex128())
}
