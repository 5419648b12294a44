package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleaningrobot/internal/cleaning"
	"cleaningrobot/internal/interpreter"
)

var room = []string{
	"r.d..x....",
	".....x....",
	".....x....",
	".....x....",
	".....x....",
	".....x....",
	".....x....",
	".....x...!",
}

func TestDrawFrame(t *testing.T) {
	m, err := cleaning.New(room)
	require.NoError(t, err)

	var buf bytes.Buffer
	term := NewTerminal(&buf, 0, false)
	term.Draw(m)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, cleaning.Height+1)
	assert.Equal(t, "Robot (0,0) heading=0 dirt=1", lines[0])
	assert.Equal(t, "R . d . . x . . . . ", lines[1])
	assert.Equal(t, ". . . . . x . . . ! ", lines[8])
	assert.Equal(t, 1, term.Frames())
}

func TestDrawANSI(t *testing.T) {
	m, err := cleaning.New(room)
	require.NoError(t, err)
	var buf bytes.Buffer
	NewTerminal(&buf, 0, true).Draw(m)
	assert.True(t, strings.HasPrefix(buf.String(), "\033[H\033[2J"))
}

func TestAttachRedrawsOnCellChange(t *testing.T) {
	m, err := cleaning.New(room)
	require.NoError(t, err)

	var buf bytes.Buffer
	term := NewTerminal(&buf, 0, false)
	detach := term.Attach(m)

	m.MoveDirection(cleaning.Right) // floor, no change
	assert.Equal(t, 0, term.Frames())
	m.MoveDirection(cleaning.Right) // cleans (2,0)
	assert.Equal(t, 1, term.Frames())
	assert.Contains(t, buf.String(), "Robot (2,0) heading=0 dirt=0")

	detach()
	require.NoError(t, m.ChangeCell(4, 4, cleaning.Dirt))
	assert.Equal(t, 1, term.Frames())
}

func TestStepHookDrawsOneFramePerMove(t *testing.T) {
	m, err := cleaning.New(room)
	require.NoError(t, err)
	prog, err := interpreter.Parse(`move RIGHT; move RIGHT; turn 90;`)
	require.NoError(t, err)

	var buf bytes.Buffer
	term := NewTerminal(&buf, 0, false)
	ctx := interpreter.NewContext(m, nil)
	ctx.OnStep = term.Step
	require.NoError(t, prog.Exec(ctx))

	// the second move cleans (2,0) and still yields a single frame
	assert.Equal(t, 3, term.Frames())
	assert.Equal(t, 3, strings.Count(buf.String(), "Robot "))
	assert.True(t, m.IsFloorClean())
}
