package cleaning

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------- helpers

func newModel(t *testing.T, rows ...string) *Model {
	t.Helper()
	m, err := New(rows)
	require.NoError(t, err)
	return m
}

func emptyRows() []string {
	rows := make([]string, Height)
	for i := range rows {
		rows[i] = strings.Repeat(".", Width)
	}
	return rows
}

// withCell returns a copy of rows with (x, y) set to c.
func withCell(rows []string, x, y int, c Cell) []string {
	out := append([]string(nil), rows...)
	b := []byte(out[y])
	b[x] = byte(c)
	out[y] = string(b)
	return out
}

// wallMap has a wall along column 5, the robot at (0,1) and the goal at (2,1).
func wallMap() []string {
	rows := emptyRows()
	for y := 0; y < Height; y++ {
		rows = withCell(rows, 5, y, Obstacle)
	}
	rows = withCell(rows, 0, 1, RobotStart)
	return withCell(rows, 2, 1, GoalMarker)
}

// ------------------------------------------------------------------- construction

func TestNewConsumesMarkers(t *testing.T) {
	rows := withCell(withCell(emptyRows(), 3, 4, RobotStart), 7, 2, GoalMarker)
	rows = withCell(rows, 1, 1, Dirt)
	m := newModel(t, rows...)

	assert.Equal(t, Robot{X: 3, Y: 4, Angle: 0}, m.Robot())
	goal, ok := m.Goal()
	require.True(t, ok)
	assert.Equal(t, Point{X: 7, Y: 2}, goal)

	for _, row := range m.Rows() {
		assert.NotContains(t, row, "r")
		assert.NotContains(t, row, "!")
	}
	c, err := m.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, Dirt, c)
	assert.Empty(t, m.Warnings())
}

func TestNewWithoutGoal(t *testing.T) {
	m := newModel(t, withCell(emptyRows(), 0, 0, RobotStart)...)
	assert.False(t, m.HasGoalPosition())
	assert.False(t, m.HasRobotReachedGoalPosition())
}

func TestNewDuplicateMarkersLastWins(t *testing.T) {
	rows := withCell(emptyRows(), 8, 0, RobotStart)
	rows = withCell(rows, 1, 3, RobotStart)
	rows = withCell(rows, 0, 2, GoalMarker)
	rows = withCell(rows, 9, 6, GoalMarker)
	m := newModel(t, rows...)

	assert.Equal(t, Point{X: 1, Y: 3}, m.Robot().Position())
	goal, _ := m.Goal()
	assert.Equal(t, Point{X: 9, Y: 6}, goal)

	warnings := m.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, MapWarning{Marker: GoalMarker, At: Point{0, 2}, Winner: Point{9, 6}}, warnings[1])
	assert.Equal(t, MapWarning{Marker: RobotStart, At: Point{8, 0}, Winner: Point{1, 3}}, warnings[0])
}

func TestNewRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"nil", nil, ErrNoMap},
		{"empty", []string{}, ErrNoMap},
		{"short", emptyRows()[:7], ErrBadDimensions},
		{"narrow row", append(emptyRows()[:7], "........."), ErrBadDimensions},
		{"bad symbol", withCell(emptyRows(), 4, 4, Cell('#')), ErrBadSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rows)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

// ------------------------------------------------------------------- cells & listeners

func TestChangeCellNotifiesOnce(t *testing.T) {
	m := newModel(t, emptyRows()...)
	var got []CellChange
	m.AddChangeListener(ChangeListenerFunc(func(c CellChange) { got = append(got, c) }))

	require.NoError(t, m.ChangeCell(2, 3, Dirt))
	require.NoError(t, m.ChangeCell(2, 3, Dirt))

	assert.Equal(t, []CellChange{{X: 2, Y: 3, Old: Floor, New: Dirt}}, got)
}

func TestChangeCellErrors(t *testing.T) {
	m := newModel(t, emptyRows()...)
	assert.ErrorIs(t, m.ChangeCell(-1, 0, Dirt), ErrOutOfBounds)
	assert.ErrorIs(t, m.ChangeCell(0, Height, Dirt), ErrOutOfBounds)
	assert.ErrorIs(t, m.ChangeCell(0, 0, RobotStart), ErrBadSymbol)
}

func TestListenersRunInRegistrationOrder(t *testing.T) {
	m := newModel(t, emptyRows()...)
	var order []string
	m.AddChangeListener(ChangeListenerFunc(func(CellChange) { order = append(order, "a") }))
	sub := m.AddChangeListener(ChangeListenerFunc(func(CellChange) { order = append(order, "b") }))
	m.AddChangeListener(ChangeListenerFunc(func(CellChange) { order = append(order, "c") }))

	require.NoError(t, m.ChangeCell(0, 0, Obstacle))
	assert.Equal(t, []string{"a", "b", "c"}, order)

	assert.True(t, m.RemoveChangeListener(sub))
	assert.False(t, m.RemoveChangeListener(sub))
	assert.False(t, m.RemoveChangeListener(Subscription{}))

	order = nil
	require.NoError(t, m.ChangeCell(0, 0, Floor))
	assert.Equal(t, []string{"a", "c"}, order)
}

func TestSameListenerRegisteredTwice(t *testing.T) {
	m := newModel(t, emptyRows()...)
	calls := 0
	l := ChangeListenerFunc(func(CellChange) { calls++ })
	first := m.AddChangeListener(l)
	m.AddChangeListener(l)
	assert.NotEqual(t, first, Subscription{})

	require.NoError(t, m.ChangeCell(1, 1, Dirt))
	assert.Equal(t, 2, calls)

	m.RemoveChangeListener(first)
	require.NoError(t, m.ChangeCell(1, 1, Floor))
	assert.Equal(t, 3, calls)
}

func TestRowsSnapshotIsDetached(t *testing.T) {
	m := newModel(t, wallMap()...)
	rows := m.Rows()
	require.NoError(t, m.ChangeCell(0, 0, Dirt))
	assert.Equal(t, ".....x....", rows[0])
	assert.Equal(t, "d....x....", m.Rows()[0])
}

func TestIndependentModels(t *testing.T) {
	a := newModel(t, wallMap()...)
	b := newModel(t, wallMap()...)
	a.MoveDirection(Right)
	assert.Equal(t, Point{X: 1, Y: 1}, a.Robot().Position())
	assert.Equal(t, Point{X: 0, Y: 1}, b.Robot().Position())
}
