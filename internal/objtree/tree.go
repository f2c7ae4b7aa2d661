package objtree

import (
	"fmt"
	"slices"

	"treectl/internal/convert"
	"treectl/pkg/treetypes"
)

// FrameLayouts lists the accepted values of settings.default_frame_layout.
var FrameLayouts = []string{"vertical", "horizontal", "max", "grid"}

// NewDefaultTree builds the root object with the settings and monitors
// objects every session starts with.
func NewDefaultTree() *Object {
	root := NewObject("")

	settings := NewObject("settings")
	mustAdd(settings.AddAttribute(Bool("focus_follows_mouse", false)))
	mustAdd(settings.AddAttribute(Bool("raise_on_focus", false)))
	mustAdd(settings.AddAttribute(Int("frame_gap", 5)))
	mustAdd(settings.AddAttribute(Uint("window_gap", 0)))
	mustAdd(settings.AddAttribute(Int("snap_distance", 10).WithValidator(nonNegative)))
	mustAdd(settings.AddAttribute(String("default_frame_layout", "vertical").WithValidator(frameLayout)))
	mustAdd(settings.AddAttribute(
		NewValue[treetypes.Direction]("default_direction", "direction", convert.Direction, treetypes.Right)))
	mustAdd(root.AddChild(settings))

	monitors := NewObject("monitors")
	mustAdd(monitors.AddAttribute(Uint("count", 1).ReadOnly()))
	mustAdd(root.AddChild(monitors))

	return root
}

func nonNegative(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %d must not be negative", treetypes.ErrOutOfRange, v)
	}
	return nil
}

func frameLayout(v string) error {
	if !slices.Contains(FrameLayouts, v) {
		return treetypes.NewParseError(treetypes.ErrInvalidArgument, v,
			fmt.Sprintf("invalid frame layout \"%s\"", v))
	}
	return nil
}

func mustAdd(err error) {
	if err != nil {
		panic(fmt.Sprintf("failed to build default tree: %v", err))
	}
}
