package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Hypercubic reports whether all dimensions share a common edge length
// and returns that length. Operators are N×N matrices or N⁴ interaction
// tensors, so every shape the engine accepts must be hypercubic.
func (s Shape) Hypercubic() (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	n := s[0]
	for _, dim := range s[1:] {
		if dim != n {
			return 0, false
		}
	}
	return n, true
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Matrix returns the shape of an N×N matrix.
func Matrix(n int) Shape {
	return Shape{n, n}
}

// Rank4 returns the shape of an N⁴ interaction tensor.
func Rank4(n int) Shape {
	return Shape{n, n, n, n}
}
