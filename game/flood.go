package game

import "github.com/gammazero/deque"

type NeighborGetter func(*Cell) []*Cell

// Visitor handles a single cell, returning whether its neighbors should be visited
type Visitor func(*Cell) bool

// flood visits cells breadth-first from the starting cell. The visitor is
// responsible for refusing cells it has already handled.
func flood(cell *Cell, visit Visitor, getNeighbors NeighborGetter) {
	var visitQueue deque.Deque
	visitQueue.PushBack(cell)

	for visitQueue.Len() > 0 {
		cell := visitQueue.PopFront().(*Cell)
		if !visit(cell) {
			continue
		}

		for _, neighbor := range getNeighbors(cell) {
			visitQueue.PushBack(neighbor)
		}
	}
}

// revealSafeArea reveals the clicked cell and, while it has no neighboring
// mines, everything connected to it. Mines are never revealed here, and
// flooded cells receive no mark.
func (gs *GameState) revealSafeArea(row, col int) {
	start := gs.CellAt(row, col)
	if start == nil {
		return
	}

	flood(
		start,
		func(cell *Cell) bool {
			if cell.isRevealed || cell.isMine {
				return false
			}
			cell.isRevealed = true
			return cell.numMines == 0
		},
		func(cell *Cell) []*Cell {
			unrevealed := make([]*Cell, 0, len(neighborOffsets))
			for _, neighbor := range gs.Neighbors(cell) {
				if !neighbor.isRevealed && !neighbor.isMine {
					unrevealed = append(unrevealed, neighbor)
				}
			}
			return unrevealed
		},
	)
}
