package game

import (
	"math/rand"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGame builds a game with mines exactly at the given cells
func newTestGame(mines ...[2]int) *GameState {
	gs := NewGameState(1, nil)
	for _, mine := range mines {
		gs.cells[mine[0]][mine[1]].isMine = true
	}
	gs.minesPlaced = true
	gs.fillNumbers()
	return gs
}

func countNeighborMines(gs *GameState, row, col int) int {
	count := 0
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue
			}
			if cell := gs.CellAt(row+dRow, col+dCol); cell != nil && cell.isMine {
				count++
			}
		}
	}
	return count
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestPlaceMinesKeepsExclusionZoneClear(t *testing.T) {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			gs := NewGameState(int64(row*GridSize+col), nil)
			gs.placeMines(row, col)

			require.Equal(t, NumMines, gs.NumMines(), "excluding (%d, %d)", row, col)
			for _, cell := range gs.Cells() {
				if abs(cell.row-row) <= 1 && abs(cell.col-col) <= 1 {
					assert.False(t, cell.isMine, "mine at %v, excluding (%d, %d)", cell, row, col)
				}
			}
		}
	}
}

func TestPlaceMinesCountsNeighbors(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		gs := NewGameState(seed, nil)
		gs.placeMines(int(seed)%GridSize, 3)

		for _, cell := range gs.Cells() {
			if cell.isMine {
				assert.Zero(t, cell.numMines)
				continue
			}
			assert.Equal(t, countNeighborMines(gs, cell.row, cell.col), cell.numMines, "seed %d, %v", seed, cell)
		}
	}
}

func TestNeighborCountsAtEdges(t *testing.T) {
	gs := newTestGame([2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1}, [2]int{9, 9})

	assert.Equal(t, 3, gs.CellAt(0, 0).NumMines())
	assert.Equal(t, 1, gs.CellAt(9, 8).NumMines())
	assert.Equal(t, 1, gs.CellAt(8, 8).NumMines())
	assert.Equal(t, 1, gs.CellAt(8, 9).NumMines())
	// No wrapping around the edges
	assert.Equal(t, 0, gs.CellAt(0, 9).NumMines())
	assert.Equal(t, 0, gs.CellAt(9, 0).NumMines())
	assert.Len(t, gs.Neighbors(gs.CellAt(0, 0)), 3)
	assert.Len(t, gs.Neighbors(gs.CellAt(0, 5)), 5)
	assert.Len(t, gs.Neighbors(gs.CellAt(5, 5)), 8)
}

type stuckSource struct{}

func (stuckSource) Int63() int64 { return 0 }
func (stuckSource) Seed(int64)   {}

func TestPlaceMinesFallsBackAfterTryLimit(t *testing.T) {
	gs := NewGameState(1, nil)
	// Every draw lands on (0, 0), so sampling stalls after the first mine
	gs.rand = rand.New(stuckSource{})

	gs.placeMines(5, 5)

	assert.Equal(t, NumMines, gs.NumMines())
	assert.True(t, gs.CellAt(0, 0).isMine)
	for _, cell := range gs.Neighbors(gs.CellAt(5, 5)) {
		assert.False(t, cell.isMine)
	}
	assert.False(t, gs.CellAt(5, 5).isMine)
}

func TestPlaceMinesLogsPlacement(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	gs := NewGameState(1, logger)
	gs.placeMines(0, 0)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "placed mines", entry.Message)
	assert.Equal(t, 4, entry.Data["excluded"])
	assert.Equal(t, NumMines, entry.Data["mines"])

	gs = NewGameState(1, logger)
	gs.placeMines(5, 5)
	assert.Equal(t, 9, hook.LastEntry().Data["excluded"])
}

func TestInitializeResetsEverything(t *testing.T) {
	gs := NewGameState(5, nil)
	gs.HandleClick(3, 3)
	gs.HandleClick(0, 9)

	gs.Initialize()
	first := gs.cells
	gs.Initialize()

	assert.Equal(t, first, gs.cells)
	assert.Equal(t, NewGameState(9, nil).cells, gs.cells)
	assert.Equal(t, Circle, gs.CurrentPlayer())
	assert.Equal(t, Ongoing, gs.State())
	assert.False(t, gs.MinesPlaced())
	for _, cell := range gs.Cells() {
		assert.False(t, cell.isMine)
		assert.False(t, cell.isRevealed)
		assert.Equal(t, NoMark, cell.mark)
	}
}

func TestInitializeReplaysSameMines(t *testing.T) {
	gs := NewGameState(77, nil)
	gs.HandleClick(2, 2)
	first := gs.Snapshot().SerializedBoard

	gs.Initialize()
	gs.HandleClick(2, 2)

	assert.Equal(t, first, gs.Snapshot().SerializedBoard)
}

func TestCellAtOutOfBounds(t *testing.T) {
	gs := NewGameState(1, nil)

	assert.Nil(t, gs.CellAt(-1, 0))
	assert.Nil(t, gs.CellAt(0, GridSize))
	assert.NotNil(t, gs.CellAt(GridSize-1, GridSize-1))
	assert.Len(t, gs.Cells(), NumCells)
}
