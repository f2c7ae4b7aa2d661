package convert

import (
	"fmt"

	"treectl/pkg/treetypes"
)

// ToggleKeyword negates the previous value when parsed as a boolean.
const ToggleKeyword = "toggle"

var (
	truthy = map[string]bool{"true": true, "on": true, "1": true}
	falsy  = map[string]bool{"false": true, "off": true, "0": true}
)

// Bool accepts true/on/1 and false/off/0 (case-sensitive) and, when a
// previous value is given, "toggle". It always renders "true" or "false".
type Bool struct{}

// Parse implements Converter.
func (Bool) Parse(text string, previous *bool) (bool, error) {
	switch {
	case falsy[text]:
		return false, nil
	case truthy[text]:
		return true, nil
	case text == ToggleKeyword && previous != nil:
		return !*previous, nil
	case text == ToggleKeyword:
		return false, treetypes.NewParseError(treetypes.ErrInvalidArgument, text,
			"toggle not allowed without context: only on/off/true/false are valid booleans")
	case previous != nil:
		return false, treetypes.NewParseError(treetypes.ErrInvalidArgument, text,
			fmt.Sprintf("invalid boolean \"%s\": only on/off/true/false/toggle are valid booleans", text))
	default:
		return false, treetypes.NewParseError(treetypes.ErrInvalidArgument, text,
			fmt.Sprintf("invalid boolean \"%s\": only on/off/true/false are valid booleans", text))
	}
}

// Text implements Converter.
func (Bool) Text(value bool) string {
	if value {
		return "true"
	}
	return "false"
}
