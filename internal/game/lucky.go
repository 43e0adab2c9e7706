package game

import "github.com/shopspring/decimal"

// PlayLucky draws a number in [1,10]; the player wins only on an exact
// match. Winning pays floor(stake * 10 * (1 - edge)).
func PlayLucky(stake decimal.Decimal, pick int, houseEdge float64, rng Rand) (Outcome, error) {
	if pick < 1 || pick > 10 {
		return Outcome{}, ErrInvalidChoice
	}

	drawn := rng.Intn(10) + 1
	result := map[string]any{"number": drawn}

	if drawn != pick {
		return lose(Lucky, result), nil
	}

	payout := stake.Mul(decimal.NewFromInt(10)).
		Mul(decimal.NewFromFloat(1 - houseEdge)).
		Floor()
	return Outcome{
		Game:       Lucky,
		Win:        true,
		Multiplier: decimal.NewFromInt(10),
		Payout:     payout,
		Result:     result,
	}, nil
}
