// Package render draws a cleaning model on a terminal.
package render

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"cleaningrobot/internal/cleaning"
)

// Terminal prints frames of the map with the robot and the goal overlaid.
type Terminal struct {
	Out   io.Writer
	Delay time.Duration // pause after each frame
	ANSI  bool          // clear the screen before each frame

	frames int
}

// NewTerminal returns a renderer writing to out.
func NewTerminal(out io.Writer, delay time.Duration, ansi bool) *Terminal {
	return &Terminal{Out: out, Delay: delay, ANSI: ansi}
}

// Frames reports how many frames have been drawn.
func (t *Terminal) Frames() int { return t.frames }

// Draw writes the current state of m.
func (t *Terminal) Draw(m *cleaning.Model) {
	w := bufio.NewWriter(t.Out)
	if t.ANSI {
		fmt.Fprint(w, "\033[H\033[2J")
	}
	r := m.Robot()
	goal, hasGoal := m.Goal()
	fmt.Fprintf(w, "Robot %v heading=%d dirt=%d\n", r.Position(), r.Angle, m.DirtCount())
	for y, row := range m.Rows() {
		for x := 0; x < len(row); x++ {
			switch {
			case r.X == x && r.Y == y:
				fmt.Fprint(w, "R ")
			case hasGoal && goal.X == x && goal.Y == y:
				fmt.Fprint(w, "! ")
			default:
				fmt.Fprintf(w, "%c ", row[x])
			}
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	t.frames++
	if t.Delay > 0 {
		time.Sleep(t.Delay)
	}
}

// Step matches interpreter.Context.OnStep.
func (t *Terminal) Step(m *cleaning.Model) { t.Draw(m) }

// Attach redraws m whenever one of its cells changes. The returned func
// detaches the renderer.
func (t *Terminal) Attach(m *cleaning.Model) (detach func()) {
	sub := m.AddChangeListener(cleaning.ChangeListenerFunc(func(cleaning.CellChange) {
		t.Draw(m)
	}))
	return func() { m.RemoveChangeListener(sub) }
}
