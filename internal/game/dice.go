package game

import (
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	DiceEven = "even"
	DiceOdd  = "odd"
)

// DicePrediction is either a parity bet or a specific sum in [2,12].
type DicePrediction struct {
	Parity string
	Sum    int
}

func ParseDicePrediction(s string) (DicePrediction, error) {
	switch s {
	case DiceEven, DiceOdd:
		return DicePrediction{Parity: s}, nil
	}
	sum, err := strconv.Atoi(s)
	if err != nil || sum < 2 || sum > 12 {
		return DicePrediction{}, ErrInvalidChoice
	}
	return DicePrediction{Sum: sum}, nil
}

// PlayDice rolls two fair dice. There is no probability adjustment: the
// house edge is structural, baked into the sub-fair 2x/6x multipliers.
func PlayDice(stake decimal.Decimal, pred DicePrediction, rng Rand) Outcome {
	d1 := rng.Intn(6) + 1
	d2 := rng.Intn(6) + 1
	sum := d1 + d2
	result := map[string]any{"dice": []int{d1, d2}, "sum": sum}

	var win bool
	var multiplier int64
	switch pred.Parity {
	case DiceEven:
		win = sum%2 == 0
		multiplier = 2
	case DiceOdd:
		win = sum%2 == 1
		multiplier = 2
	default:
		win = sum == pred.Sum
		multiplier = 6
	}

	if !win {
		return lose(Dice, result)
	}

	mult := decimal.NewFromInt(multiplier)
	return Outcome{
		Game:       Dice,
		Win:        true,
		Multiplier: mult,
		Payout:     stake.Mul(mult).Floor(),
		Result:     result,
	}
}
