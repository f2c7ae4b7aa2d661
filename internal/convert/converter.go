// Package convert turns user-supplied tokens into typed values and typed
// values back into user-facing text.
//
// Each Converter is stateless and safe for concurrent use. Parsing may be
// relative to a previous value (for example "toggle" for booleans); the
// previous value is only read, never retained.
package convert

// Converter parses and renders values of one type.
type Converter[T any] interface {
	// Parse converts text into a T. previous is the current value, if any,
	// and is consulted only by relative syntaxes such as "toggle".
	Parse(text string, previous *T) (T, error)
	// Text returns the canonical user-facing rendering of value.
	Text(value T) string
}

// Preconfigured converters for the types used by commands and attributes.
var (
	Int       = SignedInt[int]{}
	Int32     = SignedInt[int32]{}
	Int64     = SignedInt[int64]{}
	Uint      = UnsignedInt[uint]{}
	Ulong     = UnsignedInt[uint64]{}
	Boolean   = Bool{}
	Text      = String{}
	Direction = DirectionConverter{}
)

// Parse is shorthand for c.Parse(text, nil).
func Parse[T any](c Converter[T], text string) (T, error) {
	return c.Parse(text, nil)
}
