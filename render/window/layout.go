package window

import (
	"math"
	"time"

	"github.com/faiface/pixel"
	"github.com/they4kman/sweepfive/game"
)

const (
	cellWidth    = 40
	headerHeight = 50

	boardSize = game.GridSize * cellWidth
)

var windowBounds = pixel.R(0, 0, boardSize, boardSize+headerHeight)

// screenToGridCoords maps a window position to a cell, ok is false outside the grid
func screenToGridCoords(pos pixel.Vec) (row, col int, ok bool) {
	if pos.X < 0 || pos.Y < 0 || pos.X >= boardSize || pos.Y >= boardSize {
		return 0, 0, false
	}
	col = int(math.Floor(pos.X / cellWidth))
	row = game.GridSize - 1 - int(math.Floor(pos.Y/cellWidth))
	return row, col, true
}

// cellRect is the on-screen area of the cell at (row, col)
func cellRect(row, col int) pixel.Rect {
	x, y := float64(col*cellWidth), float64((game.GridSize-1-row)*cellWidth)
	return pixel.R(x, y, x+cellWidth, y+cellWidth)
}

// headerText is the ASCII status line drawn above the grid
func headerText(gs *game.GameState) string {
	player := playerLabel(gs.CurrentPlayer())
	switch gs.State() {
	case game.Won:
		return player + " WINS!   [Enter] restart"
	case game.Lost:
		return player + " LOSES :(   [Enter] restart"
	default:
		return player + " to move"
	}
}

func playerLabel(player game.Mark) string {
	if player == game.Cross {
		return "X"
	}
	return "O"
}

// annotationAlpha fades a move highlight out over duration
func annotationAlpha(baseAlpha float64, shown, duration time.Duration) float64 {
	if shown >= duration {
		return 0
	}
	progress := 1 - float64(shown)/float64(duration)
	return baseAlpha * inOutCubic(progress)
}

func inOutCubic(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t + 2)
}
