package euclid_test

import (
	"unsafe"

	"github.com/pizzaiter/euclid"
)

// The unit tag must not add any runtime payload.
const sizeDelta = unsafe.Sizeof(euclid.SideOffsets[int32, px]{}) - 4*unsafe.Sizeof(int32(0))

var ( // compile-time checks
	_ [sizeDelta][-sizeDelta]struct{} // => sizeDelta == 0

	// SideOffsets2D is an alias, not a distinct type.
	_ euclid.SideOffsets[int, euclid.UnknownUnit] = euclid.SideOffsets2D[int]{}
	// Typed accessors carry the aggregate's unit tag.
	_ euclid.Length[int, px] = euclid.SideOffsets[int, px]{}.TopLength()
)
