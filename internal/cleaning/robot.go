package cleaning

import (
	"fmt"
	"math"
)

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Robot is the single movable agent: a position plus a heading in degrees.
// 0 is east, 90 south, 180 west and 270 north.
type Robot struct {
	X, Y  int
	Angle int
}

// Position returns the robot coordinates.
func (r Robot) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

func (r Robot) String() string {
	return fmt.Sprintf("(%d,%d)@%d", r.X, r.Y, r.Angle)
}

// headingVector converts an angle into a step vector by truncating cos/sin
// toward zero. Cardinal angles yield unit vectors.
func headingVector(angle int) (int, int) {
	radians := float64(angle) * math.Pi / 180
	return int(math.Trunc(math.Cos(radians))), int(math.Trunc(math.Sin(radians)))
}

// Direction names an absolute direction for MoveDirection, or a relative one
// for HasObstacleAtDirection.
type Direction string

const (
	Left    Direction = "LEFT"
	Right   Direction = "RIGHT"
	Up      Direction = "UP"
	Down    Direction = "DOWN"
	Forward Direction = "FORWARD"
)

// absoluteAngles maps the named directions onto headings.
var absoluteAngles = map[Direction]int{
	Left:  180,
	Right: 0,
	Up:    270,
	Down:  90,
}

// relativeDelta is the heading offset used when looking sideways.
func relativeDelta(dir string) int {
	switch Direction(dir) {
	case Left:
		return -90
	case Right:
		return 90
	}
	return 0
}
