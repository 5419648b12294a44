// Package cleaning implements the cleaning-robot simulation: a fixed 10x8 tile
// map, one robot with a position and a heading, an optional goal cell, and
// change notifications for cell mutations.
//
// A Model is single-threaded. Callers embedding it in a concurrent host must
// serialize access themselves.
package cleaning

import (
	"errors"
	"fmt"
	"strings"
)

// Map dimensions are fixed by the domain.
const (
	Width  = 10
	Height = 8
)

// Cell is a map symbol.
type Cell byte

const (
	Floor    Cell = '.'
	Obstacle Cell = 'x'
	Dirt     Cell = 'd'

	// spawn markers, only valid in construction input
	RobotStart Cell = 'r'
	GoalMarker Cell = '!'
)

func (c Cell) String() string { return string(rune(c)) }

// valid reports whether c may live in the grid after construction.
func (c Cell) valid() bool {
	return c == Floor || c == Obstacle || c == Dirt
}

var (
	ErrNoMap         = errors.New("no map provided")
	ErrBadDimensions = errors.New("map must be 10 columns by 8 rows")
	ErrBadSymbol     = errors.New("unknown map symbol")
	ErrOutOfBounds   = errors.New("coordinates outside the map")
)

// MapWarning flags a spawn marker that was overridden by a later one.
type MapWarning struct {
	Marker Cell
	At     Point // the position that lost
	Winner Point
}

func (w MapWarning) String() string {
	return fmt.Sprintf("duplicate %q marker at %v ignored, using %v", rune(w.Marker), w.At, w.Winner)
}

// Model owns the grid, the robot, the goal and the listener registry.
type Model struct {
	grid      [Height][Width]Cell
	robot     Robot
	goal      *Point
	listeners []registration
	warnings  []MapWarning
}

// New builds a model from Height rows of Width symbols each. The rows are
// scanned in row-major order; 'r' places the robot and '!' the goal, and both
// are replaced with floor. When a marker repeats, the last one scanned wins and
// a MapWarning is recorded.
func New(rows []string) (*Model, error) {
	if len(rows) == 0 {
		return nil, ErrNoMap
	}
	if len(rows) != Height {
		return nil, fmt.Errorf("%w: got %d rows", ErrBadDimensions, len(rows))
	}

	m := &Model{}
	var robotSeen bool
	for y, row := range rows {
		if len(row) != Width {
			return nil, fmt.Errorf("%w: row %d has %d columns", ErrBadDimensions, y, len(row))
		}
		for x := 0; x < Width; x++ {
			c := Cell(row[x])
			here := Point{X: x, Y: y}
			switch c {
			case RobotStart:
				if robotSeen {
					m.warnings = append(m.warnings, MapWarning{Marker: RobotStart, At: m.robot.Position(), Winner: here})
				}
				robotSeen = true
				m.robot.X, m.robot.Y = x, y
				c = Floor
			case GoalMarker:
				if m.goal != nil {
					m.warnings = append(m.warnings, MapWarning{Marker: GoalMarker, At: *m.goal, Winner: here})
				}
				m.goal = &here
				c = Floor
			default:
				if !c.valid() {
					return nil, fmt.Errorf("%w %q at %v", ErrBadSymbol, rune(c), here)
				}
			}
			m.grid[y][x] = c
		}
	}
	return m, nil
}

// InBounds reports whether (x, y) lies on the map.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Warnings lists duplicate spawn markers found during construction.
func (m *Model) Warnings() []MapWarning {
	return append([]MapWarning(nil), m.warnings...)
}

// Cell returns the symbol at (x, y).
func (m *Model) Cell(x, y int) (Cell, error) {
	if !InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return m.grid[y][x], nil
}

// Robot returns a copy of the robot state.
func (m *Model) Robot() Robot { return m.robot }

// Goal returns the goal position, if the map had one.
func (m *Model) Goal() (Point, bool) {
	if m.goal == nil {
		return Point{}, false
	}
	return *m.goal, true
}

// Rows renders the current grid, one string per row.
func (m *Model) Rows() []string {
	rows := make([]string, Height)
	var sb strings.Builder
	for y := range m.grid {
		sb.Reset()
		for _, c := range m.grid[y] {
			sb.WriteByte(byte(c))
		}
		rows[y] = sb.String()
	}
	return rows
}

// ChangeCell sets (x, y) to v and notifies listeners in registration order.
// Writing the value already present is a no-op.
func (m *Model) ChangeCell(x, y int, v Cell) error {
	if !InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if !v.valid() {
		return fmt.Errorf("%w %q", ErrBadSymbol, rune(v))
	}
	old := m.grid[y][x]
	if old == v {
		return nil
	}
	m.grid[y][x] = v
	m.notify(CellChange{X: x, Y: y, Old: old, New: v})
	return nil
}
