package game

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a YAML-friendly copy of a game. Board holds one line per
// row, one glyph per cell:
//
//	#  hidden cell       *  hidden mine
//	.  revealed cell     @  revealed mine
//	o  marked by ○       x  marked by ×
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	Player          string `yaml:"player"`
	SerializedBoard string `yaml:"board"`
}

var playerGlyphs = map[Mark]string{
	Circle: "o",
	Cross:  "x",
}

func (gs *GameState) Snapshot() *BoardSnapshot {
	var board strings.Builder
	for row := 0; row < GridSize; row++ {
		if row > 0 {
			board.WriteString("\n")
		}
		for col := 0; col < GridSize; col++ {
			board.WriteString(gs.cells[row][col].serialize())
		}
	}

	return &BoardSnapshot{
		Seed:            gs.seed,
		Player:          playerGlyphs[gs.player],
		SerializedBoard: board.String(),
	}
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// CreateGameState rebuilds a game from the snapshot. With fresh set, revealed
// cells and marks are dropped, so the same mine layout can be replayed from
// the first move.
func (snapshot *BoardSnapshot) CreateGameState(fresh bool, logger log.FieldLogger) (*GameState, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
	if len(rows) != GridSize {
		return nil, errors.Errorf("snapshot has %d rows, expected %d", len(rows), GridSize)
	}

	gs := NewGameState(snapshot.Seed, logger)

	for row, line := range rows {
		glyphs := []rune(strings.TrimSpace(line))
		if len(glyphs) != GridSize {
			return nil, errors.Errorf("snapshot row %d has %d cells, expected %d", row, len(glyphs), GridSize)
		}

		for col, c := range glyphs {
			if !gs.cells[row][col].deserialize(c, fresh) {
				return nil, errors.Errorf("invalid cell %q at (%d, %d)", c, row, col)
			}
		}
	}

	switch numMines := gs.NumMines(); numMines {
	case 0:
		// Mines go down on the first click, which must come before any reveal
		for _, cell := range gs.Cells() {
			if cell.isRevealed {
				return nil, errors.Errorf("snapshot reveals %v before any mines were placed", cell)
			}
		}
	case NumMines:
		gs.minesPlaced = true
		gs.fillNumbers()
	default:
		return nil, errors.Errorf("snapshot has %d mines, expected 0 or %d", numMines, NumMines)
	}

	if fresh {
		return gs, nil
	}

	switch snapshot.Player {
	case playerGlyphs[Circle], "":
		gs.player = Circle
	case playerGlyphs[Cross]:
		gs.player = Cross
	default:
		return nil, errors.Errorf("invalid player %q", snapshot.Player)
	}

	for _, cell := range gs.Cells() {
		if cell.isMine && cell.isRevealed {
			gs.state = Lost
			return gs, nil
		}
	}
	for _, player := range Players {
		if gs.CheckWin(player) {
			gs.player = player
			gs.state = Won
			break
		}
	}

	return gs, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "decoding snapshot")
	}
	return &snapshot, nil
}

func LoadSnapshotFile(path string) (*BoardSnapshot, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading snapshot %s", path)
	}

	snapshot, err := LoadSnapshot(string(in))
	if err != nil {
		return nil, errors.Wrapf(err, "loading snapshot %s", path)
	}
	return snapshot, nil
}
