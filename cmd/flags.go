package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/they4kman/sweepfive/game"
)

var (
	_ pflag.Value = (*frontendValue)(nil)
	_ pflag.Value = (*directorValue)(nil)
)

type frontendValue string

const (
	frontendWindow frontendValue = "window"
	frontendTerm   frontendValue = "term"
)

func (value *frontendValue) String() string {
	return string(*value)
}

func (value *frontendValue) Set(s string) error {
	switch frontendValue(s) {
	case frontendWindow, frontendTerm:
		*value = frontendValue(s)
		return nil
	default:
		return fmt.Errorf("invalid frontend %q", s)
	}
}

func (value *frontendValue) Type() string {
	return "frontend"
}

type directorValue game.Mark

func newDirectorValue(p *game.Mark) *directorValue {
	return (*directorValue)(p)
}

var directorSides = map[string]game.Mark{
	"none": game.NoMark,
	"o":    game.Circle,
	"x":    game.Cross,
}

func (value *directorValue) String() string {
	for name, side := range directorSides {
		if side == game.Mark(*value) {
			return name
		}
	}
	return fmt.Sprint(int(*value))
}

func (value *directorValue) Set(s string) error {
	if side, isValid := directorSides[s]; isValid {
		*value = directorValue(side)
		return nil
	}
	return fmt.Errorf("invalid director side %q", s)
}

func (value *directorValue) Type() string {
	return "side"
}
