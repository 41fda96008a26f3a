package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/they4kman/sweepfive/game"
)

const (
	hiddenGlyph = "--"
	mineGlyph   = "**"
)

// Renderer draws the grid as text
type Renderer struct {
	out io.Writer

	status         string
	restartVisible bool
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (renderer *Renderer) SetStatus(status string) {
	renderer.status = status
}

func (renderer *Renderer) SetRestartVisible(visible bool) {
	renderer.restartVisible = visible
}

func (renderer *Renderer) Status() string {
	return renderer.status
}

func (renderer *Renderer) RestartVisible() bool {
	return renderer.restartVisible
}

func (renderer *Renderer) Render(gs *game.GameState) {
	fmt.Fprint(renderer.out, FormatGrid(gs))

	if renderer.status != "" {
		fmt.Fprintln(renderer.out, renderer.status)
	} else {
		fmt.Fprintf(renderer.out, "%s to move\n", gs.CurrentPlayer())
	}
	if renderer.restartVisible {
		fmt.Fprintln(renderer.out, "[r] restart  [q] quit")
	}
}

// FormatGrid lays the grid out with row and column numbers. Each cell takes
// two characters: the neighbor count, then the player mark.
func FormatGrid(gs *game.GameState) string {
	var out strings.Builder

	out.WriteString("  ")
	for col := 0; col < game.GridSize; col++ {
		fmt.Fprintf(&out, " %d ", col)
	}
	out.WriteString("\n")

	for row := 0; row < game.GridSize; row++ {
		fmt.Fprintf(&out, "%d ", row)
		for col := 0; col < game.GridSize; col++ {
			out.WriteString(" ")
			out.WriteString(cellGlyph(gs.CellAt(row, col)))
		}
		out.WriteString("\n")
	}

	return out.String()
}

func cellGlyph(cell *game.Cell) string {
	switch {
	case !cell.IsRevealed():
		return hiddenGlyph
	case cell.IsMine():
		return mineGlyph
	}

	count := " "
	if cell.NumMines() > 0 {
		count = fmt.Sprint(cell.NumMines())
	}
	mark := " "
	if cell.Mark() != game.NoMark {
		mark = cell.Mark().String()
	}
	return count + mark
}
