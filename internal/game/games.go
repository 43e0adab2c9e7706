package game

import (
	"errors"

	"github.com/shopspring/decimal"
)

type Game string

const (
	Coin  Game = "coin"
	Dice  Game = "dice"
	Wheel Game = "wheel"
	Lucky Game = "lucky"
	Mines Game = "mines"
)

var ErrInvalidChoice = errors.New("invalid choice")

func Parse(s string) (Game, error) {
	switch s {
	case string(Coin), string(Dice), string(Wheel), string(Lucky), string(Mines):
		return Game(s), nil
	default:
		return "", errors.New("unknown game")
	}
}

// Outcome is the result of one resolved play. Payout is already floored to
// the smallest currency unit and is zero on a loss.
type Outcome struct {
	Game       Game
	Win        bool
	Multiplier decimal.Decimal
	Payout     decimal.Decimal
	Result     map[string]any
}

func lose(g Game, result map[string]any) Outcome {
	return Outcome{Game: g, Multiplier: decimal.Zero, Payout: decimal.Zero, Result: result}
}
