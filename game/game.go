package game

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type GameConfig struct {
	Seed int64

	// Snapshot to load board configuration from
	Snapshot *BoardSnapshot
	// Whether to set all cells as unrevealed when loading the Snapshot
	LoadSnapshotFresh bool

	Director Director

	// Number of recent moves kept for display
	HistoryLength int

	// Transparency of annotations when first displayed
	AnnotationBaseAlpha float64
	// Total time an annotation will be displayed
	AnnotationDuration time.Duration

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string

	Logger log.FieldLogger
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Seed:                time.Now().UnixNano(),
		Director:            nil,
		Snapshot:            nil,
		LoadSnapshotFresh:   true,
		HistoryLength:       DefaultHistoryLength,
		AnnotationBaseAlpha: 0.5,
		AnnotationDuration:  1500 * time.Millisecond,
		Logger:              log.StandardLogger(),
	}
}

func (config GameConfig) logger() log.FieldLogger {
	if config.Logger == nil {
		return log.StandardLogger()
	}
	return config.Logger
}

func (config GameConfig) createGameState(seed int64, fresh bool) (*GameState, error) {
	if config.Snapshot == nil {
		return NewGameState(seed, config.logger()), nil
	}
	return config.Snapshot.CreateGameState(fresh, config.logger())
}

func (config GameConfig) saveSnapshot(gs *GameState) error {
	if config.SavedSnapshotsDir == "" {
		return nil
	}

	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrap(err, "checking snapshot dir")
		}
		if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
			return errors.Wrap(err, "creating snapshot dir")
		}
	} else if !stat.Mode().IsDir() {
		return errors.Errorf("%s is not a directory; cannot save snapshots to it", config.SavedSnapshotsDir)
	}

	filename := config.generateReplayFilename(gs, time.Now())
	path := filepath.Join(config.SavedSnapshotsDir, filename)

	// TODO: prevent duplicate filenames when two games end within a second
	if err := os.WriteFile(path, []byte(gs.Snapshot().Serialize()), 0666); err != nil {
		return errors.Wrapf(err, "writing snapshot %s", path)
	}
	return nil
}

func (config GameConfig) generateReplayFilename(gs *GameState, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch gs.state {
	case Won:
		stateStr = "win"
	case Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}

// Session runs consecutive games against a single Renderer
type Session struct {
	config   GameConfig
	renderer Renderer
	logger   log.FieldLogger

	state   *GameState
	history *History
	seeds   *rand.Rand
	games   int
}

func NewSession(config GameConfig, renderer Renderer) *Session {
	return &Session{
		config:   config,
		renderer: renderer,
		logger:   config.logger(),
		seeds:    rand.New(rand.NewSource(config.Seed)),
	}
}

func (session *Session) State() *GameState {
	return session.state
}

func (session *Session) History() *History {
	return session.history
}

func (session *Session) Config() GameConfig {
	return session.config
}

// Start begins a new game, discarding the current one. The first game uses
// the configured seed; each restart draws a new one. A snapshot is shown as
// saved only on the first start, restarts replay its board from scratch.
func (session *Session) Start() error {
	seed := session.config.Seed
	fresh := session.config.LoadSnapshotFresh
	if session.games > 0 {
		seed = session.seeds.Int63()
		fresh = true
	}

	state, err := session.config.createGameState(seed, fresh)
	if err != nil {
		return errors.Wrap(err, "creating game")
	}

	session.state = state
	session.history = NewHistory(session.config.HistoryLength)
	session.games++

	session.logger.WithFields(log.Fields{
		"game": session.games,
		"seed": state.Seed(),
	}).Info("new game")

	session.render()
	session.playDirector()
	return nil
}

// Click plays the current player's move, then lets the director reply
func (session *Session) Click(row, col int) ClickResult {
	result := session.click(row, col)
	session.playDirector()
	return result
}

func (session *Session) click(row, col int) ClickResult {
	result := session.state.HandleClick(row, col)
	if !result.Changed {
		return result
	}

	session.history.Record(result)
	if session.state.IsOver() {
		session.endGame()
	}
	session.render()
	return result
}

func (session *Session) playDirector() {
	director := session.config.Director
	if director == nil {
		return
	}

	for !session.state.IsOver() && session.state.CurrentPlayer() == director.Player() {
		row, col, ok := director.Next(session.state)
		if !ok {
			return
		}
		if result := session.click(row, col); !result.Changed {
			session.logger.WithFields(log.Fields{"row": row, "col": col}).Warn("director chose an unplayable cell")
			return
		}
	}
}

func (session *Session) endGame() {
	session.logger.WithFields(log.Fields{
		"player": session.state.CurrentPlayer().String(),
		"result": session.state.State().String(),
		"moves":  session.history.Len(),
	}).Info("game over")

	if err := session.config.saveSnapshot(session.state); err != nil {
		session.logger.WithError(err).Error("could not save snapshot")
	}
}

func (session *Session) render() {
	if session.renderer == nil {
		return
	}
	state := session.state
	session.renderer.SetStatus(state.State().Message(state.CurrentPlayer()))
	session.renderer.SetRestartVisible(state.IsOver())
	session.renderer.Render(state)
}
