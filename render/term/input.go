package term

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/they4kman/sweepfive/game"
)

type CommandType int

const (
	ClickCommand CommandType = iota
	RestartCommand
	QuitCommand
)

type Command struct {
	Type     CommandType
	Row, Col int
}

// ParseCommand reads one input line: "row col" (or "row,col"), "r"/"restart",
// or "q"/"quit".
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)

	switch strings.ToLower(line) {
	case "r", "restart":
		return Command{Type: RestartCommand}, nil
	case "q", "quit":
		return Command{Type: QuitCommand}, nil
	}

	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return Command{}, errors.Errorf("expected \"row col\", got %q", line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Command{}, errors.Wrap(err, "parsing row")
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, errors.Wrap(err, "parsing column")
	}
	if row < 0 || row >= game.GridSize || col < 0 || col >= game.GridSize {
		return Command{}, errors.Errorf("(%d, %d) is outside the %dx%d grid", row, col, game.GridSize, game.GridSize)
	}

	return Command{Type: ClickCommand, Row: row, Col: col}, nil
}

// Run starts a session and feeds it commands from in until quit or EOF
func Run(config game.GameConfig, in io.Reader, out io.Writer) error {
	renderer := NewRenderer(out)
	session := game.NewSession(config, renderer)
	if err := session.Start(); err != nil {
		return err
	}

	logger := config.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}

		command, err := ParseCommand(scanner.Text())
		if err != nil {
			logger.WithError(err).Debug("rejected input")
			fmt.Fprintln(out, err)
			continue
		}

		switch command.Type {
		case QuitCommand:
			return nil
		case RestartCommand:
			if !renderer.RestartVisible() {
				fmt.Fprintln(out, "the game is still running")
				continue
			}
			if err := session.Start(); err != nil {
				return err
			}
		case ClickCommand:
			if result := session.Click(command.Row, command.Col); !result.Changed {
				fmt.Fprintln(out, "the game is over")
			}
		}
	}

	return errors.Wrap(scanner.Err(), "reading input")
}
