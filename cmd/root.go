package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/sweepfive/director/random"
	"github.com/they4kman/sweepfive/game"
	"github.com/they4kman/sweepfive/render/term"
	"github.com/they4kman/sweepfive/render/window"
)

var (
	gameConfig   = game.NewGameConfig()
	seed         int64
	frontend     = frontendWindow
	directorSide = game.NoMark
	snapshotPath string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "sweepfive",
	Short: "Two-player Minesweeper where five in a row wins",
	Long: `sweepfive is a two-player game on a 10x10 Minesweeper grid.
Players take turns revealing cells; revealing a mine loses, and
marking five cells in a row (any direction) wins.

Run with no arguments to play in a window
	sweepfive

Play in the terminal against the computer
	sweepfive --frontend term --director x
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		log.SetOutput(os.Stderr)

		if seed != 0 {
			gameConfig.Seed = seed
		}

		if snapshotPath != "" {
			snapshot, err := game.LoadSnapshotFile(snapshotPath)
			if err != nil {
				return err
			}
			gameConfig.Snapshot = snapshot
		}

		if directorSide != game.NoMark {
			gameConfig.Director = random.NewDirector(directorSide, time.Now().UnixNano())
		}

		switch frontend {
		case frontendTerm:
			return term.Run(gameConfig, os.Stdin, os.Stdout)
		default:
			var runErr error
			pixelgl.Run(func() {
				runErr = window.Run(gameConfig)
			})
			return runErr
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Int64VarP(&seed, "seed", "s", 0, "Seed for mine placement (0 picks one from the clock)")
	rootCmd.Flags().VarP(&frontend, "frontend", "f", `Where to play:
window: desktop window, click cells with the mouse
term: text grid on stdout, moves read from stdin as "row col"`)
	rootCmd.Flags().VarP(newDirectorValue(&directorSide), "director", "d", "Let the computer play one side: none, o or x")
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Load the board from a saved YAML snapshot")
	rootCmd.Flags().BoolVar(&gameConfig.LoadSnapshotFresh, "snapshot-fresh", true, "Hide revealed cells and marks when loading the snapshot (--snapshot-fresh=false resumes it as saved)")
	rootCmd.Flags().StringVar(&gameConfig.SavedSnapshotsDir, "save-snapshots", "", "Directory to save a snapshot of every finished game to")
	rootCmd.Flags().IntVar(&gameConfig.HistoryLength, "history", game.DefaultHistoryLength, "Number of recent moves to keep")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
