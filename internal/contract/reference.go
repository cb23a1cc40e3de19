package contract

import (
	"gonum.org/v1/gonum/mat"

	"github.com/floweq-dev/floweq/internal/parallel"
	"github.com/floweq-dev/floweq/internal/tensor"
)

// referenceCommutator computes [A,B] without any symmetry halving,
// filling both triangles directly. It exists to validate the optimized
// kernel and must agree with it within floating tolerance.
func (e *Engine) referenceCommutator(a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() == tensor.Complex128 {
		return e.referenceCommutatorComplex(a, b)
	}
	return referenceCommutatorReal(a, b)
}

// referenceCommutatorReal delegates AB and BA to gonum's general
// matrix product and subtracts, writing straight into the result
// tensor's backing storage.
func referenceCommutatorReal(a, b *tensor.RawTensor) *tensor.RawTensor {
	n := a.Shape()[0]
	am := mat.NewDense(n, n, a.AsFloat64())
	bm := mat.NewDense(n, n, b.AsFloat64())

	var ab, ba mat.Dense
	ab.Mul(am, bm)
	ba.Mul(bm, am)

	out := tensor.Zeros[float64](tensor.Matrix(n))
	cm := mat.NewDense(n, n, out.AsFloat64())
	cm.Sub(&ab, &ba)
	return out
}

// referenceCommutatorComplex computes the full commutator elementwise.
func (e *Engine) referenceCommutatorComplex(a, b *tensor.RawTensor) *tensor.RawTensor {
	n := a.Shape()[0]
	out := tensor.Zeros[complex128](tensor.Matrix(n))

	av := a.AsComplex128()
	bv := b.AsComplex128()
	cv := out.AsComplex128()

	parallel.ForSquare(n, func(i, j int) {
		var sum complex128
		for k := 0; k < n; k++ {
			sum += av[i*n+k]*bv[k*n+j] - bv[i*n+k]*av[k*n+j]
		}
		cv[i*n+j] = sum
	}, e.par)

	return out
}
