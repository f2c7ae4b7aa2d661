package treetypes

import "fmt"

// Direction is one of the four screen directions used by frame and
// floating commands. Only identity is defined; there is no ordering.
type Direction int

const (
	// Right points towards increasing x.
	Right Direction = iota
	// Left points towards decreasing x.
	Left
	// Up points towards decreasing y.
	Up
	// Down points towards increasing y.
	Down
)

var directionNames = map[Direction]string{
	Right: "right",
	Left:  "left",
	Up:    "up",
	Down:  "down",
}

// String returns the lowercase name of the direction. Values outside the
// enum render as "Direction(N)", which does not parse back.
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Directions returns all directions in declaration order.
func Directions() []Direction {
	return []Direction{Right, Left, Up, Down}
}
