package game

import "github.com/shopspring/decimal"

// PlaceMines samples mineCount distinct cell indices out of a
// gridSize x gridSize board. A partial Fisher-Yates shuffle keeps the
// draw uniform over all C(gridSize^2, mineCount) combinations.
func PlaceMines(gridSize, mineCount int, rng Rand) []int {
	total := gridSize * gridSize
	cells := make([]int, total)
	for i := range cells {
		cells[i] = i
	}
	for i := 0; i < mineCount; i++ {
		j := i + rng.Intn(total-i)
		cells[i], cells[j] = cells[j], cells[i]
	}
	mines := make([]int, mineCount)
	copy(mines, cells[:mineCount])
	return mines
}

// MinesMultiplier grows linearly with each safe reveal, scaled by mine
// density: 1 + safeReveals * 0.2 * (mineCount / 3). The curve deliberately
// does not track the true combinatorial odds as cells deplete.
func MinesMultiplier(safeReveals, mineCount int) decimal.Decimal {
	return decimal.NewFromInt(1).Add(
		decimal.NewFromInt(int64(safeReveals)).
			Mul(decimal.NewFromFloat(0.2)).
			Mul(decimal.NewFromInt(int64(mineCount))).
			Div(decimal.NewFromInt(3)))
}

// MinesPayout is the cashout credit for a session: floor(stake * multiplier).
func MinesPayout(stake, multiplier decimal.Decimal) decimal.Decimal {
	return stake.Mul(multiplier).Floor()
}
