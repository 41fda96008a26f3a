package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/sweepfive/game"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line     string
		expected Command
	}{
		{"5 5", Command{Type: ClickCommand, Row: 5, Col: 5}},
		{" 0,9 ", Command{Type: ClickCommand, Row: 0, Col: 9}},
		{"3\t7", Command{Type: ClickCommand, Row: 3, Col: 7}},
		{"r", Command{Type: RestartCommand}},
		{"Restart", Command{Type: RestartCommand}},
		{"q", Command{Type: QuitCommand}},
		{"quit", Command{Type: QuitCommand}},
	}

	for _, test := range tests {
		command, err := ParseCommand(test.line)
		require.NoError(t, err, test.line)
		assert.Equal(t, test.expected, command, test.line)
	}

	for _, line := range []string{"", "5", "1 2 3", "a 1", "1 b", "10 0", "0 -1"} {
		_, err := ParseCommand(line)
		assert.Error(t, err, line)
	}
}

const midGameBoard = `o.x.#*#*##
...o*##*##
x..##*##*#
##*###*###
*##*##*##*
#*##*##*##
##*##*##*#
*##*##*###
#*##*##*##
##*#######`

func TestFormatGrid(t *testing.T) {
	snapshot := &game.BoardSnapshot{Player: "x", SerializedBoard: midGameBoard}
	gs, err := snapshot.CreateGameState(false, nil)
	require.NoError(t, err)

	lines := strings.Split(FormatGrid(gs), "\n")

	assert.Equal(t, "   0  1  2  3  4  5  6  7  8  9 ", lines[0])
	assert.Equal(t, "0   ○     × 1  -- -- -- -- -- --", lines[1])
	assert.Equal(t, "1           1○ -- -- -- -- -- --", lines[2])
	assert.Equal(t, "9  -- -- -- -- -- -- -- -- -- --", lines[10])
}

func TestRendererShowsStatusAndRestart(t *testing.T) {
	var out bytes.Buffer
	renderer := NewRenderer(&out)
	gs := game.NewGameState(1, nil)

	renderer.Render(gs)
	assert.Contains(t, out.String(), "○ to move")
	assert.NotContains(t, out.String(), "restart")

	out.Reset()
	renderer.SetStatus("○の負け！")
	renderer.SetRestartVisible(true)
	renderer.Render(gs)
	assert.Contains(t, out.String(), "○の負け！")
	assert.Contains(t, out.String(), "[r] restart")
}

// losingInput plays the first click, then clicks every cell until one is a mine
func losingInput() string {
	var input strings.Builder
	input.WriteString("5 5\n")
	for row := 0; row < game.GridSize; row++ {
		for col := 0; col < game.GridSize; col++ {
			input.WriteString(strings.Join([]string{string(rune('0' + row)), string(rune('0' + col))}, " "))
			input.WriteString("\n")
		}
	}
	return input.String()
}

func TestRunPlaysUntilQuit(t *testing.T) {
	config := game.NewGameConfig()
	config.Seed = 10

	var out bytes.Buffer
	err := Run(config, strings.NewReader("r\nnonsense\n5 5\nq\n0 0\n"), &out)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "the game is still running")
	assert.Contains(t, output, `expected "row col"`)
	assert.Contains(t, output, "× to move")
	assert.Equal(t, 2, strings.Count(output, "   0  1  2"))
}

func TestRunRestartsAfterGameOver(t *testing.T) {
	config := game.NewGameConfig()
	config.Seed = 10

	var out bytes.Buffer
	err := Run(config, strings.NewReader(losingInput()+"r\n"), &out)
	require.NoError(t, err)

	output := out.String()
	assert.Regexp(t, "(○|×)の(負け|勝ち)！", output)
	assert.Contains(t, output, "the game is over")
	assert.True(t, strings.HasSuffix(output, "○ to move\n"))
}
