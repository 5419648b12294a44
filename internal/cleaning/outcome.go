package cleaning

// MessageID identifies an outcome message. Rendering it into text is up to
// the caller, see package messages.
type MessageID string

const (
	MessageDirtRemains MessageID = "dirt_remains"
	MessageNotAtGoal   MessageID = "not_at_goal"
	MessageSuccess     MessageID = "success"
)

// Outcome is the verdict for the current state.
type Outcome struct {
	Successful bool      `json:"successful"`
	Message    MessageID `json:"message"`
}

// IsFloorClean reports whether no dirt is left.
func (m *Model) IsFloorClean() bool {
	return m.DirtCount() == 0
}

// DirtCount returns the number of dirt cells.
func (m *Model) DirtCount() int {
	n := 0
	for y := range m.grid {
		for _, c := range m.grid[y] {
			if c == Dirt {
				n++
			}
		}
	}
	return n
}

// HasGoalPosition reports whether the map had a goal marker.
func (m *Model) HasGoalPosition() bool {
	return m.goal != nil
}

// HasRobotReachedGoalPosition reports whether the robot stands on the goal.
// It is false when there is no goal.
func (m *Model) HasRobotReachedGoalPosition() bool {
	if m.goal == nil {
		return false
	}
	return m.robot.X == m.goal.X && m.robot.Y == m.goal.Y
}

// HasObstacleAtDirection looks one cell away relative to the heading: "LEFT"
// and "RIGHT" look sideways, anything else looks ahead. Off-map cells count as
// obstacles.
func (m *Model) HasObstacleAtDirection(dir string) bool {
	dx, dy := headingVector(m.robot.Angle + relativeDelta(dir))
	tx, ty := m.robot.X+dx, m.robot.Y+dy
	if !InBounds(tx, ty) {
		return true
	}
	return m.grid[ty][tx] == Obstacle
}

// Outcome evaluates the objective. Remaining dirt is reported before a missed
// goal.
func (m *Model) Outcome() Outcome {
	switch {
	case !m.IsFloorClean():
		return Outcome{Successful: false, Message: MessageDirtRemains}
	case m.HasGoalPosition() && !m.HasRobotReachedGoalPosition():
		return Outcome{Successful: false, Message: MessageNotAtGoal}
	default:
		return Outcome{Successful: true, Message: MessageSuccess}
	}
}
