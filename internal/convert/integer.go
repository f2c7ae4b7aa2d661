package convert

import (
	"errors"
	"fmt"
	"strconv"
	"unsafe"

	"treectl/pkg/treetypes"
)

// Signed is the set of signed integer kinds SignedInt can target.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer kinds UnsignedInt can target.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// SignedInt converts base-10 text to a signed integer of type T. The whole
// token must be a number; whitespace is not trimmed.
type SignedInt[T Signed] struct{}

// Parse implements Converter.
func (SignedInt[T]) Parse(text string, _ *T) (T, error) {
	v, err := strconv.ParseInt(text, 10, bitSize[T]())
	if err != nil {
		return 0, integerError(text, err)
	}
	return T(v), nil
}

// Text implements Converter.
func (SignedInt[T]) Text(value T) string {
	return strconv.FormatInt(int64(value), 10)
}

// UnsignedInt converts base-10 text to an unsigned integer of type T.
// A leading sign is rejected.
type UnsignedInt[T Unsigned] struct{}

// Parse implements Converter.
func (UnsignedInt[T]) Parse(text string, _ *T) (T, error) {
	v, err := strconv.ParseUint(text, 10, bitSize[T]())
	if err != nil {
		return 0, integerError(text, err)
	}
	return T(v), nil
}

// Text implements Converter.
func (UnsignedInt[T]) Text(value T) string {
	return strconv.FormatUint(uint64(value), 10)
}

func bitSize[T Signed | Unsigned]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

func integerError(text string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return treetypes.NewParseError(treetypes.ErrOutOfRange, text,
			fmt.Sprintf("integer \"%s\" is out of range", text))
	}
	return treetypes.NewParseError(treetypes.ErrInvalidArgument, text,
		fmt.Sprintf("invalid integer \"%s\"", text))
}
