package game

const (
	GridSize = 10
	NumMines = 25
	NumCells = GridSize * GridSize

	// Number of consecutive marks needed to win
	RunLength = 5
)

type Mark int

const (
	NoMark Mark = iota
	Circle
	Cross
)

var Players = []Mark{Circle, Cross}

func (mark Mark) String() string {
	switch mark {
	case Circle:
		return "○"
	case Cross:
		return "×"
	default:
		return ""
	}
}

// Other returns the opposing player's mark
func (mark Mark) Other() Mark {
	if mark == Circle {
		return Cross
	}
	return Circle
}

type BoardState int

const (
	Ongoing BoardState = iota
	Lost
	Won
)

func (state BoardState) String() string {
	switch state {
	case Lost:
		return "loss"
	case Won:
		return "win"
	default:
		return "ongoing"
	}
}

// Message is the status line shown for a finished game
func (state BoardState) Message(player Mark) string {
	switch state {
	case Lost:
		return player.String() + "の負け！"
	case Won:
		return player.String() + "の勝ち！"
	default:
		return ""
	}
}

// 8-neighborhood offsets, as (Δrow, Δcol)
var neighborOffsets = [8][2]int{
	{-1, -1},
	{-1, 0},
	{-1, 1},
	{0, 1},
	{1, 1},
	{1, 0},
	{1, -1},
	{0, -1},
}

// Rays scanned for five-in-a-row; only the positive direction is walked
var winDirections = [4][2]int{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, -1},
}
