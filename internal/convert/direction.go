package convert

import (
	"fmt"

	"treectl/pkg/treetypes"
)

var directionInitials = map[byte]treetypes.Direction{
	'u': treetypes.Up,
	'r': treetypes.Right,
	'd': treetypes.Down,
	'l': treetypes.Left,
}

// DirectionConverter reads a direction from the first character of the
// token only, so "r", "right" and "rxyz" all mean Right.
type DirectionConverter struct{}

// Parse implements Converter.
func (DirectionConverter) Parse(text string, _ *treetypes.Direction) (treetypes.Direction, error) {
	if text == "" {
		return 0, treetypes.NewParseError(treetypes.ErrInvalidArgument, text,
			"direction must not be empty")
	}
	dir, ok := directionInitials[text[0]]
	if !ok {
		return 0, treetypes.NewParseError(treetypes.ErrInvalidArgument, text,
			fmt.Sprintf("invalid direction \"%s\"", text))
	}
	return dir, nil
}

// Text implements Converter. The result parses back to the same direction.
func (DirectionConverter) Text(value treetypes.Direction) string {
	return value.String()
}
