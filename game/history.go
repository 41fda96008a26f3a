package game

import (
	"time"

	"github.com/gammazero/deque"
)

const DefaultHistoryLength = 16

type Move struct {
	Row, Col int
	Player   Mark
	State    BoardState
	Time     time.Time
}

// History keeps the most recent moves of a game, oldest first
type History struct {
	moves deque.Deque
	limit int
	now   func() time.Time
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLength
	}
	return &History{limit: limit, now: time.Now}
}

// Record appends the click, dropping the oldest move once the limit is reached
func (history *History) Record(result ClickResult) {
	history.moves.PushBack(Move{
		Row:    result.Row,
		Col:    result.Col,
		Player: result.Player,
		State:  result.State,
		Time:   history.now(),
	})

	for history.moves.Len() > history.limit {
		history.moves.PopFront()
	}
}

func (history *History) Len() int {
	return history.moves.Len()
}

func (history *History) At(i int) Move {
	return history.moves.At(i).(Move)
}

func (history *History) Last() (Move, bool) {
	if history.moves.Len() == 0 {
		return Move{}, false
	}
	return history.At(history.moves.Len() - 1), true
}

func (history *History) Moves() []Move {
	moves := make([]Move, history.moves.Len())
	for i := range moves {
		moves[i] = history.At(i)
	}
	return moves
}
