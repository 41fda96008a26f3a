package game

import (
	"fmt"
)

type Cell struct {
	row, col int

	isMine, isRevealed bool
	mark               Mark
	numMines           int
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.row, cell.col)
}

func (cell *Cell) Row() int {
	return cell.row
}

func (cell *Cell) Col() int {
	return cell.col
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) Mark() Mark {
	return cell.mark
}

// NumMines is the count of mines among the cell's neighbors. Always 0 for mines.
func (cell *Cell) NumMines() int {
	return cell.numMines
}

func (cell *Cell) serialize() string {
	switch {
	case cell.isMine && cell.isRevealed:
		return "@"
	case cell.isMine:
		return "*"
	case !cell.isRevealed:
		return "#"
	case cell.mark == Circle:
		return "o"
	case cell.mark == Cross:
		return "x"
	default:
		return "."
	}
}

func (cell *Cell) deserialize(c rune, fresh bool) bool {
	cell.isMine, cell.isRevealed, cell.mark = false, false, NoMark

	switch c {
	case '@':
		cell.isMine = true
		cell.isRevealed = !fresh
	case '*':
		cell.isMine = true
	case '#':
	case '.':
		cell.isRevealed = !fresh
	case 'o', 'x':
		if !fresh {
			cell.isRevealed = true
			cell.mark = Circle
			if c == 'x' {
				cell.mark = Cross
			}
		}
	default:
		return false
	}

	return true
}
