package euclid

// UnknownUnit is the unit tag for values with no particular unit.
// Callers that do care about units declare their own empty tag types
// and use those as the type argument instead.
type UnknownUnit struct{}
