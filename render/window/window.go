package window

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/pkg/errors"
	"github.com/they4kman/sweepfive/game"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const title = "sweepfive"

// Renderer keeps the latest state handed over by the session; the frame loop
// draws from it.
type Renderer struct {
	state          *game.GameState
	status         string
	restartVisible bool
}

func (renderer *Renderer) Render(gs *game.GameState) {
	renderer.state = gs
}

func (renderer *Renderer) SetStatus(status string) {
	renderer.status = status
}

func (renderer *Renderer) SetRestartVisible(visible bool) {
	renderer.restartVisible = visible
}

// Run opens the game window and plays until it is closed. It must be called
// from within pixelgl.Run.
func Run(config game.GameConfig) error {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: windowBounds,
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return errors.Wrap(err, "creating window")
	}
	defer win.Destroy()

	renderer := &Renderer{}
	session := game.NewSession(config, renderer)
	if err := session.Start(); err != nil {
		return err
	}

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	headerTopLeft := pixel.V(10, boardSize+headerHeight)
	statusText := text.New(headerTopLeft.Add(pixel.V(0, -30)), basicAtlas)
	numberText := text.New(pixel.ZV, basicAtlas)

	lastTitle := ""
	bgColor := colornames.Gainsboro
	for !win.Closed() {
		win.Update()
		win.Clear(bgColor)

		gs := renderer.state

		windowTitle := title
		if renderer.status != "" {
			windowTitle = fmt.Sprintf("%s | %s", title, renderer.status)
		}
		if windowTitle != lastTitle {
			win.SetTitle(windowTitle)
			lastTitle = windowTitle
		}

		statusText.Clear()
		statusText.Color = colornames.Black
		switch gs.State() {
		case game.Won:
			statusText.Color = colornames.Green
		case game.Lost:
			statusText.Color = colornames.Red
		}
		fmt.Fprint(statusText, headerText(gs))
		statusText.Draw(win, pixel.IM)

		imd := imdraw.New(nil)
		numberText.Clear()
		drawCells(imd, numberText, gs)
		drawAnnotations(imd, session.History(), config)
		imd.Draw(win)
		numberText.Draw(win, pixel.IM)

		if renderer.restartVisible {
			// Start a new game with Enter
			if win.JustPressed(pixelgl.KeyEnter) {
				if err := session.Start(); err != nil {
					return err
				}
			}
			continue
		}

		if win.JustPressed(pixelgl.MouseButtonLeft) {
			if row, col, ok := screenToGridCoords(win.MousePosition()); ok {
				session.Click(row, col)
			}
		}
	}

	return nil
}

func drawCells(imd *imdraw.IMDraw, numberText *text.Text, gs *game.GameState) {
	for _, cell := range gs.Cells() {
		rect := cellRect(cell.Row(), cell.Col())
		inner := pixel.R(rect.Min.X+1, rect.Min.Y+1, rect.Max.X-1, rect.Max.Y-1)

		imd.Color = colornames.Darkgray
		if cell.IsRevealed() {
			imd.Color = colornames.White
		}
		imd.Push(inner.Min, inner.Max)
		imd.Rectangle(0) // 0 = filled

		if !cell.IsRevealed() {
			continue
		}

		center := rect.Center()
		if cell.IsMine() {
			imd.Color = colornames.Black
			imd.Push(center)
			imd.Circle(cellWidth/4, 0)
			continue
		}

		if cell.NumMines() > 0 {
			numberText.Dot = rect.Min.Add(pixel.V(4, 4))
			fmt.Fprint(numberText, cell.NumMines())
		}

		switch cell.Mark() {
		case game.Circle:
			imd.Color = colornames.Royalblue
			imd.Push(center)
			imd.Circle(cellWidth/3, 3)
		case game.Cross:
			arm := float64(cellWidth) / 3
			imd.Color = colornames.Crimson
			imd.Push(center.Add(pixel.V(-arm, -arm)), center.Add(pixel.V(arm, arm)))
			imd.Line(3)
			imd.Push(center.Add(pixel.V(-arm, arm)), center.Add(pixel.V(arm, -arm)))
			imd.Line(3)
		}
	}
}

// drawAnnotations highlights the most recent moves, fading them out
func drawAnnotations(imd *imdraw.IMDraw, history *game.History, config game.GameConfig) {
	now := time.Now()
	baseColor := pixel.ToRGBA(colornames.Gold)

	for _, move := range history.Moves() {
		alpha := annotationAlpha(config.AnnotationBaseAlpha, now.Sub(move.Time), config.AnnotationDuration)
		if alpha <= 0 {
			continue
		}

		rect := cellRect(move.Row, move.Col)
		imd.Color = baseColor.Mul(pixel.Alpha(alpha))
		imd.Push(rect.Min, rect.Max)
		imd.Rectangle(0)
	}
}
