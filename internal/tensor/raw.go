package tensor

import (
	"fmt"
	"unsafe"
)

// RawTensor is the low-level dense tensor representation. Data lives in
// a flat row-major byte buffer reinterpreted through typed views.
//
// Contraction routines treat RawTensor values as immutable inputs and
// freshly allocate every result, so buffers are never shared between
// operands and outputs.
type RawTensor struct {
	data   []byte
	shape  Shape
	stride []int
	dtype  DataType
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated zero-initialized.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	byteSize := shape.NumElements() * dtype.Size()

	return &RawTensor{
		data:   make([]byte, byteSize),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.data
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy views, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsComplex128 interprets the data as []complex128.
// Panics if the tensor's dtype is not Complex128.
func (r *RawTensor) AsComplex128() []complex128 {
	if r.dtype != Complex128 {
		panic(fmt.Sprintf("tensor dtype is %s, not complex128", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy views, bounds checked by NumElements()
	return unsafe.Slice((*complex128)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// As interprets the data as []T. The generic counterpart of AsFloat64
// and AsComplex128, used by kernels written once over the scalar field.
// Panics if T does not match the tensor's dtype.
func As[T Scalar](r *RawTensor) []T {
	var dummy T
	if want := inferDataType(dummy); want != r.dtype {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", r.dtype, want))
	}
	//nolint:gosec // unsafe.Slice for zero-copy views, bounds checked by NumElements()
	return unsafe.Slice((*T)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// Clone returns a deep copy of the tensor. Inputs are immutable during
// a contraction, so cloning is only needed when a caller wants to keep
// a snapshot across its own mutations.
func (r *RawTensor) Clone() *RawTensor {
	data := make([]byte, len(r.data))
	copy(data, r.data)
	return &RawTensor{
		data:   data,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
	}
}
