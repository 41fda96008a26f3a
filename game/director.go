package game

// Director plays one side of the game in place of a human
type Director interface {
	/**
	 * The player this director moves for
	 */
	Player() Mark

	/**
	 * Choose the next cell to click; ok is false when there is nothing to play
	 */
	Next(gs *GameState) (row, col int, ok bool)
}

// Renderer draws a game and its status surface. Sessions call into it after
// every change.
type Renderer interface {
	Render(gs *GameState)

	// Status is empty while the game runs, else the outcome message
	SetStatus(status string)

	// Restart control is visible only once the game is over
	SetRestartVisible(visible bool)
}
