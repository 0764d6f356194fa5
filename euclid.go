// Package euclid provides small generic geometric value types tagged
// with compile-time units.
//
// Every type is parameterized over a numeric scalar type and a unit
// tag. The tag is an arbitrary type used only as a type argument: it
// is never stored, so it has no runtime cost, but two values with
// different tags are different types and cannot be mixed in
// arithmetic. [UnknownUnit] is the tag for values with no particular
// unit.
package euclid

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that euclid types and
// functions can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Integer is a constraint for any integer type.
type Integer interface {
	constraints.Integer
}
