// Copyright 2026 The floweq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the dense tensors used by
// the floweq contraction engine.
//
// The package defines the core types:
//   - RawTensor: flat row-major dense storage with typed views
//   - Shape, DataType: dimension and element-type descriptors
//   - Scalar: the generic constraint over float64 and complex128
//
// Example:
//
//	a := tensor.Eye[float64](4)
//	b, err := tensor.FromSlice([]float64{0, 1, 1, 0}, tensor.Matrix(2))
package tensor

import (
	"github.com/floweq-dev/floweq/internal/tensor"
)

// Type aliases for public API

// Scalar is a constraint for tensor element types.
// Supported types: float64, complex128.
type Scalar = tensor.Scalar

// DataType represents the underlying element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float64    DataType = tensor.Float64
	Complex128 DataType = tensor.Complex128
)

// Shape represents the dimensions of a tensor.
// Example: Shape{4, 4, 4, 4} is an N=4 interaction tensor.
type Shape = tensor.Shape

// RawTensor is the dense tensor representation shared by all engine
// routines. Results of contractions are always freshly allocated
// RawTensors owned by the caller.
type RawTensor = tensor.RawTensor

// Creation functions

// NewRaw creates a zero-initialized tensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T Scalar](shape Shape) *RawTensor {
	return tensor.Zeros[T](shape)
}

// Eye creates an N×N identity matrix.
func Eye[T Scalar](n int) *RawTensor {
	return tensor.Eye[T](n)
}

// FromSlice creates a tensor from a Go slice, copying the data.
func FromSlice[T Scalar](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice[T](data, shape)
}

// Promote returns a Complex128 copy of a Float64 tensor; complex
// tensors pass through unchanged.
func Promote(r *RawTensor) *RawTensor {
	return tensor.Promote(r)
}

// As interprets the tensor's storage as []T.
// Panics if T does not match the tensor's dtype.
func As[T Scalar](r *RawTensor) []T {
	return tensor.As[T](r)
}

// Shape helpers

// Matrix returns the shape of an N×N matrix.
func Matrix(n int) Shape {
	return tensor.Matrix(n)
}

// Rank4 returns the shape of an N⁴ interaction tensor.
func Rank4(n int) Shape {
	return tensor.Rank4(n)
}
