package game

import "github.com/shopspring/decimal"

const (
	Heads = "heads"
	Tails = "tails"
)

// PlayCoin resolves a coin toss. The draw is fair; the house edge is taken
// out of the winning payout: floor(stake * 2 * (1 - edge)).
func PlayCoin(stake decimal.Decimal, choice string, houseEdge float64, rng Rand) (Outcome, error) {
	if choice != Heads && choice != Tails {
		return Outcome{}, ErrInvalidChoice
	}

	face := Heads
	if rng.Intn(2) == 1 {
		face = Tails
	}
	result := map[string]any{"face": face}

	if face != choice {
		return lose(Coin, result), nil
	}

	payout := stake.Mul(decimal.NewFromInt(2)).
		Mul(decimal.NewFromFloat(1 - houseEdge)).
		Floor()
	return Outcome{
		Game:       Coin,
		Win:        true,
		Multiplier: decimal.NewFromInt(2),
		Payout:     payout,
		Result:     result,
	}, nil
}
