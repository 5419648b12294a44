package cleaning

// MoveRobotAngle turns the robot to angle and tries one step that way. The
// step fails, leaving the position unchanged, when the target is off the map
// or an obstacle. Stepping onto dirt cleans it.
func (m *Model) MoveRobotAngle(angle int) bool {
	m.robot.Angle = angle
	dx, dy := headingVector(m.robot.Angle)
	tx, ty := m.robot.X+dx, m.robot.Y+dy

	if !InBounds(tx, ty) || m.grid[ty][tx] == Obstacle {
		return false
	}
	m.robot.X, m.robot.Y = tx, ty

	if m.grid[ty][tx] == Dirt {
		// in bounds and Floor is valid, so this cannot fail
		_ = m.ChangeCell(tx, ty, Floor)
	}
	return true
}

// TurnRobot adds delta to the heading and reduces it modulo 360. The result
// keeps the sign of the sum, so negative turns can give negative headings.
func (m *Model) TurnRobot(delta int) {
	m.robot.Angle = (m.robot.Angle + delta) % 360
}

// MoveRobotForward attempts steps moves along the current heading. A blocked
// attempt does not end the loop; the same move is retried for every remaining
// step. It returns how many attempts succeeded.
func (m *Model) MoveRobotForward(steps int) int {
	moved := 0
	for i := 0; i < steps; i++ {
		if m.MoveRobotAngle(m.robot.Angle) {
			moved++
		}
	}
	return moved
}

// MoveDirection steps toward an absolute direction (LEFT, RIGHT, UP or DOWN).
// Unknown directions do nothing and report false.
func (m *Model) MoveDirection(d Direction) bool {
	angle, ok := absoluteAngles[d]
	if !ok {
		return false
	}
	return m.MoveRobotAngle(angle)
}

// MoveForward is an alias of MoveRobotForward.
func (m *Model) MoveForward(steps int) int {
	return m.MoveRobotForward(steps)
}

// Turn is an alias of TurnRobot.
func (m *Model) Turn(angle int) {
	m.TurnRobot(angle)
}
