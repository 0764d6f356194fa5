package euclid

import (
	"fmt"
	"iter"
)

// SideOffsets is a group of side offsets, which correspond to
// top/right/bottom/left for borders, padding, and margins in CSS,
// tagged with the unit U.
//
// The four sides are independent and may be read directly. There is
// no mutation API: combining operations return a new value.
type SideOffsets[T Scalar, U any] struct {
	Top, Right, Bottom, Left T
}

// SideOffsets2D is a SideOffsets with no particular unit.
type SideOffsets2D[T Scalar] = SideOffsets[T, UnknownUnit]

// NewSideOffsets returns a SideOffsets with the given offset for each
// side. To construct from typed lengths instead, use
// [SideOffsetsFromLengths].
func NewSideOffsets[T Scalar, U any](top, right, bottom, left T) SideOffsets[T, U] {
	return SideOffsets[T, U]{
		Top:    top,
		Right:  right,
		Bottom: bottom,
		Left:   left,
	}
}

// SideOffsetsFromLengths is like [NewSideOffsets] but takes each side
// as a typed [Length].
func SideOffsetsFromLengths[T Scalar, U any](top, right, bottom, left Length[T, U]) SideOffsets[T, U] {
	return NewSideOffsets[T, U](top.Get(), right.Get(), bottom.Get(), left.Get())
}

// SideOffsetsAllSame returns a SideOffsets with all four sides set to
// all.
func SideOffsetsAllSame[T Scalar, U any](all T) SideOffsets[T, U] {
	return NewSideOffsets[T, U](all, all, all, all)
}

// SideOffsetsAllSameLength is like [SideOffsetsAllSame] but takes the
// offset as a typed [Length].
func SideOffsetsAllSameLength[T Scalar, U any](all Length[T, U]) SideOffsets[T, U] {
	return SideOffsetsAllSame[T, U](all.Get())
}

// ZeroSideOffsets returns a SideOffsets with all four sides set to
// zero. It is identical to the zero value of the type.
func ZeroSideOffsets[T Scalar, U any]() SideOffsets[T, U] {
	return SideOffsets[T, U]{}
}

// TopLength returns s.Top as a typed [Length] instead of a raw scalar.
func (s SideOffsets[T, U]) TopLength() Length[T, U] { return NewLength[T, U](s.Top) }

// RightLength returns s.Right as a typed [Length] instead of a raw scalar.
func (s SideOffsets[T, U]) RightLength() Length[T, U] { return NewLength[T, U](s.Right) }

// BottomLength returns s.Bottom as a typed [Length] instead of a raw scalar.
func (s SideOffsets[T, U]) BottomLength() Length[T, U] { return NewLength[T, U](s.Bottom) }

// LeftLength returns s.Left as a typed [Length] instead of a raw scalar.
func (s SideOffsets[T, U]) LeftLength() Length[T, U] { return NewLength[T, U](s.Left) }

// Horizontal returns the sum of the left and right offsets.
func (s SideOffsets[T, U]) Horizontal() T { return s.Left + s.Right }

// Vertical returns the sum of the top and bottom offsets.
func (s SideOffsets[T, U]) Vertical() T { return s.Top + s.Bottom }

// HorizontalLength returns [SideOffsets.Horizontal] as a typed
// [Length].
func (s SideOffsets[T, U]) HorizontalLength() Length[T, U] {
	return NewLength[T, U](s.Horizontal())
}

// VerticalLength returns [SideOffsets.Vertical] as a typed [Length].
func (s SideOffsets[T, U]) VerticalLength() Length[T, U] {
	return NewLength[T, U](s.Vertical())
}

// Add returns the elementwise sum of s and o. Overflow behaves
// however addition of T behaves.
func (s SideOffsets[T, U]) Add(o SideOffsets[T, U]) SideOffsets[T, U] {
	return NewSideOffsets[T, U](
		s.Top+o.Top,
		s.Right+o.Right,
		s.Bottom+o.Bottom,
		s.Left+o.Left,
	)
}

// Sides yields the four offsets in top, right, bottom, left order.
func (s SideOffsets[T, U]) Sides() iter.Seq[T] {
	return func(yield func(T) bool) {
		_ = yield(s.Top) && yield(s.Right) && yield(s.Bottom) && yield(s.Left)
	}
}

func (s SideOffsets[T, U]) String() string {
	return fmt.Sprintf("(%v,%v,%v,%v)", s.Top, s.Right, s.Bottom, s.Left)
}
