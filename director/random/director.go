package random

import (
	"math/rand"

	"github.com/they4kman/sweepfive/game"
)

// Director clicks a random unrevealed cell on its turn
type Director struct {
	player game.Mark
	rand   *rand.Rand
}

func NewDirector(player game.Mark, seed int64) *Director {
	return &Director{
		player: player,
		rand:   rand.New(rand.NewSource(seed)),
	}
}

func (director *Director) Player() game.Mark {
	return director.player
}

func (director *Director) Next(gs *game.GameState) (row, col int, ok bool) {
	unrevealedCells := make([]*game.Cell, 0, game.NumCells)
	for _, cell := range gs.Cells() {
		if !cell.IsRevealed() {
			unrevealedCells = append(unrevealedCells, cell)
		}
	}
	if len(unrevealedCells) == 0 {
		return 0, 0, false
	}

	director.rand.Shuffle(len(unrevealedCells), func(i, j int) {
		unrevealedCells[i], unrevealedCells[j] = unrevealedCells[j], unrevealedCells[i]
	})

	cell := unrevealedCells[0]
	return cell.Row(), cell.Col(), true
}
