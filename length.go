package euclid

import "fmt"

// Length is a one-dimensional distance: a scalar value tagged with
// the unit U. The tag is not stored, so a Length is exactly as cheap
// as its raw scalar, but lengths in different units cannot be
// combined.
type Length[T Scalar, U any] struct {
	value T
}

// NewLength returns a Length wrapping v.
func NewLength[T Scalar, U any](v T) Length[T, U] {
	return Length[T, U]{value: v}
}

// Get returns the raw scalar value.
func (l Length[T, U]) Get() T { return l.value }

// Add returns the sum of l and o.
func (l Length[T, U]) Add(o Length[T, U]) Length[T, U] {
	return NewLength[T, U](l.value + o.value)
}

// Sub returns the difference of l and o.
func (l Length[T, U]) Sub(o Length[T, U]) Length[T, U] {
	return NewLength[T, U](l.value - o.value)
}

func (l Length[T, U]) String() string { return fmt.Sprint(l.value) }
