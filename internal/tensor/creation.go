package tensor

import "fmt"

// Zeros creates a tensor filled with zeros.
func Zeros[T Scalar](shape Shape) *RawTensor {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	// Data is already zero-initialized by make()
	return raw
}

// Eye creates an N×N identity matrix.
func Eye[T Scalar](n int) *RawTensor {
	raw := Zeros[T](Matrix(n))
	data := As[T](raw)
	for i := 0; i < n; i++ {
		data[i*n+i] = FromFloat[T](1)
	}
	return raw
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Scalar](data []T, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}

	copy(As[T](raw), data)
	return raw, nil
}

// Promote returns a Complex128 copy of a Float64 tensor. Complex
// tensors are returned unchanged. This implements the promotion rule:
// when either operand of a contraction is complex, the other is lifted
// to the complex field before the kernel runs.
func Promote(r *RawTensor) *RawTensor {
	if r.dtype == Complex128 {
		return r
	}

	out, err := NewRaw(r.shape, Complex128)
	if err != nil {
		panic(err) // Source shape is already validated
	}

	src := r.AsFloat64()
	dst := out.AsComplex128()
	for i, v := range src {
		dst[i] = complex(v, 0)
	}
	return out
}
