// Package tensor provides the dense tensor core used by the floweq
// contraction engine: shapes, element types and raw storage.
package tensor

// Scalar is a constraint for supported element types.
// Flow-equation operators are real or complex double precision.
type Scalar interface {
	~float64 | ~complex128
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float64 DataType = iota
	Complex128
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float64:
		return 8
	case Complex128:
		return 16
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float64:
		return "float64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T Scalar](dummy T) DataType {
	switch any(dummy).(type) {
	case float64:
		return Float64
	case complex128:
		return Complex128
	default:
		panic("unsupported type")
	}
}

// FromFloat converts a real weight into the scalar field T.
// Occupation weights are small integers but must participate in
// complex arithmetic when the operands are complex.
func FromFloat[T Scalar](v float64) T {
	var dummy T
	switch any(dummy).(type) {
	case float64:
		return any(v).(T)
	case complex128:
		return any(complex(v, 0)).(T)
	default:
		panic("unsupported type")
	}
}

// Conj returns the complex conjugate of v. For real scalars it is the
// identity.
func Conj[T Scalar](v T) T {
	switch x := any(v).(type) {
	case complex128:
		return any(complex(real(x), -imag(x))).(T)
	default:
		return v
	}
}
