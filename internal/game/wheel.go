package game

import "github.com/shopspring/decimal"

const (
	WheelRed    = "red"
	WheelYellow = "yellow"
	WheelBlue   = "blue"
)

var wheelMultipliers = map[string]int64{
	WheelRed:    2,
	WheelYellow: 5,
	WheelBlue:   10,
}

// PlayWheel spins a three-segment wheel with base probabilities
// red 0.4, yellow 0.3, blue 0.3. The house edge shifts the cumulative
// thresholds upward, so it shrinks the blue (x10) segment rather than
// taxing the payout; a winning spin pays the full table multiplier.
func PlayWheel(stake decimal.Decimal, choice string, houseEdge float64, rng Rand) (Outcome, error) {
	if _, ok := wheelMultipliers[choice]; !ok {
		return Outcome{}, ErrInvalidChoice
	}

	r := rng.Float64()
	var color string
	switch {
	case r < 0.4+houseEdge:
		color = WheelRed
	case r < 0.7+houseEdge:
		color = WheelYellow
	default:
		color = WheelBlue
	}
	result := map[string]any{"color": color}

	if color != choice {
		return lose(Wheel, result), nil
	}

	mult := decimal.NewFromInt(wheelMultipliers[color])
	return Outcome{
		Game:       Wheel,
		Win:        true,
		Multiplier: mult,
		Payout:     stake.Mul(mult).Floor(),
		Result:     result,
	}, nil
}
