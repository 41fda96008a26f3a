package game

import (
	"math/rand"

	log "github.com/sirupsen/logrus"
	"github.com/they4kman/sweepfive/util/collections"
)

// Upper bound on random draws while placing mines, before falling back to
// filling the remaining allowed cells in order.
const maxPlacementTries = 100 * NumCells

// GameState is a single game: the grid, whose turn it is, and how it ended.
// It is not safe for concurrent use.
type GameState struct {
	cells [GridSize][GridSize]Cell

	player      Mark
	state       BoardState
	minesPlaced bool

	seed   int64
	rand   *rand.Rand
	logger log.FieldLogger
}

func NewGameState(seed int64, logger log.FieldLogger) *GameState {
	if logger == nil {
		logger = log.StandardLogger()
	}

	gameState := &GameState{
		seed:   seed,
		logger: logger,
	}
	gameState.Initialize()
	return gameState
}

// Initialize resets the game to an empty grid with ○ to move and no mines.
// The random source is reseeded, so a reset game replays identically.
func (gs *GameState) Initialize() {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			gs.cells[row][col] = Cell{row: row, col: col}
		}
	}

	gs.player = Circle
	gs.state = Ongoing
	gs.minesPlaced = false
	gs.rand = rand.New(rand.NewSource(gs.seed))
}

func (gs *GameState) Seed() int64 {
	return gs.seed
}

// CurrentPlayer is the player to move, or the player who won or lost once the
// game is over.
func (gs *GameState) CurrentPlayer() Mark {
	return gs.player
}

func (gs *GameState) State() BoardState {
	return gs.state
}

func (gs *GameState) IsOver() bool {
	return gs.state != Ongoing
}

func (gs *GameState) MinesPlaced() bool {
	return gs.minesPlaced
}

func (gs *GameState) IsValid(row, col int) bool {
	return row >= 0 && row < GridSize && col >= 0 && col < GridSize
}

func (gs *GameState) CellAt(row, col int) *Cell {
	if gs.IsValid(row, col) {
		return &gs.cells[row][col]
	}
	return nil
}

// Cells returns every cell in row-major order
func (gs *GameState) Cells() []*Cell {
	cells := make([]*Cell, 0, NumCells)
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			cells = append(cells, &gs.cells[row][col])
		}
	}
	return cells
}

func (gs *GameState) NumMines() int {
	count := 0
	for _, cell := range gs.Cells() {
		if cell.isMine {
			count++
		}
	}
	return count
}

// Neighbors returns the in-bounds cells of the 8-neighborhood
func (gs *GameState) Neighbors(cell *Cell) []*Cell {
	neighbors := make([]*Cell, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		if neighbor := gs.CellAt(cell.row+offset[0], cell.col+offset[1]); neighbor != nil {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

func (gs *GameState) selfNeighbors(cell *Cell) []*Cell {
	return append([]*Cell{cell}, gs.Neighbors(cell)...)
}

// placeMines scatters NumMines mines, keeping the excluded cell and its
// neighbors clear, then computes neighbor counts.
func (gs *GameState) placeMines(excludeRow, excludeCol int) {
	excluded := collections.Set[*Cell]{}
	if origin := gs.CellAt(excludeRow, excludeCol); origin != nil {
		excluded = collections.SetOf(gs.selfNeighbors(origin)...)
	}

	placed := 0
	tries := 0
	for ; placed < NumMines && tries < maxPlacementTries; tries++ {
		cell := &gs.cells[gs.rand.Intn(GridSize)][gs.rand.Intn(GridSize)]
		if cell.isMine || excluded.Contains(cell) {
			continue
		}
		cell.isMine = true
		placed++
	}

	if placed < NumMines {
		gs.logger.WithField("placed", placed).Warn("mine placement hit its try limit; filling remaining mines in order")

		for _, cell := range gs.Cells() {
			if placed == NumMines {
				break
			}
			if !cell.isMine && !excluded.Contains(cell) {
				cell.isMine = true
				placed++
			}
		}
	}

	gs.fillNumbers()

	gs.logger.WithFields(log.Fields{
		"row":      excludeRow,
		"col":      excludeCol,
		"tries":    tries,
		"excluded": excluded.Len(),
		"mines":    placed,
	}).Debug("placed mines")
}

func (gs *GameState) fillNumbers() {
	for _, cell := range gs.Cells() {
		cell.numMines = 0
		if cell.isMine {
			continue
		}
		for _, neighbor := range gs.Neighbors(cell) {
			if neighbor.isMine {
				cell.numMines++
			}
		}
	}
}

func (gs *GameState) revealMines() {
	for _, cell := range gs.Cells() {
		if cell.isMine {
			cell.isRevealed = true
		}
	}
}
