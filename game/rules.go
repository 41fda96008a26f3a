package game

import (
	log "github.com/sirupsen/logrus"
)

// ClickResult describes what a single click did
type ClickResult struct {
	Row, Col int
	Player   Mark
	State    BoardState

	// False when the click was ignored: the game was over or the cell off-grid
	Changed bool
}

// HandleClick plays the current player's turn at (row, col). Mines are placed
// on the first click of a game, away from the clicked cell.
func (gs *GameState) HandleClick(row, col int) ClickResult {
	result := ClickResult{Row: row, Col: col, Player: gs.player, State: gs.state}

	if gs.IsOver() {
		return result
	}
	cell := gs.CellAt(row, col)
	if cell == nil {
		return result
	}

	if !gs.minesPlaced {
		gs.placeMines(row, col)
		gs.minesPlaced = true
	}
	result.Changed = true

	if cell.isMine && !cell.isRevealed {
		cell.isRevealed = true
		gs.state = Lost
		gs.revealMines()
		result.State = gs.state
		gs.logOutcome(result)
		return result
	}

	if !cell.isRevealed {
		gs.revealSafeArea(row, col)
	}
	// An already revealed cell is restamped, replacing any previous mark
	cell.isRevealed = true
	cell.mark = gs.player

	if gs.CheckWin(gs.player) {
		gs.state = Won
		result.State = gs.state
		gs.logOutcome(result)
		return result
	}

	gs.player = gs.player.Other()
	return result
}

// CheckWin reports whether player has RunLength consecutive marks along a row,
// column or diagonal.
func (gs *GameState) CheckWin(player Mark) bool {
	if player == NoMark {
		return false
	}

	for _, cell := range gs.Cells() {
		if cell.mark != player {
			continue
		}
		for _, direction := range winDirections {
			if gs.checkLine(cell.row, cell.col, direction[0], direction[1], player) {
				return true
			}
		}
	}
	return false
}

// checkLine counts marks from (row, col) in the (dRow, dCol) direction only.
// Every run contains a start cell whose forward run is long enough.
func (gs *GameState) checkLine(row, col, dRow, dCol int, player Mark) bool {
	count := 0
	for cell := gs.CellAt(row, col); cell != nil && cell.mark == player; cell = gs.CellAt(row, col) {
		count++
		if count == RunLength {
			return true
		}
		row += dRow
		col += dCol
	}
	return false
}

func (gs *GameState) logOutcome(result ClickResult) {
	gs.logger.WithFields(log.Fields{
		"row":    result.Row,
		"col":    result.Col,
		"player": result.Player.String(),
		"state":  result.State.String(),
	}).Debug("game over")
}
