// internal/economy/economy.go
package economy

import "math"

const (
	CostGrowth = 1.2

	DamageUpgradeFactor      = 1.3
	AttackSpeedUpgradeFactor = 1.2
	RangeUpgradeFactor       = 1.15
)

// Cost — цена покупки при owned уже построенных башнях этого типа.
func Cost(base, owned int) int {
	if owned < 0 {
		owned = 0
	}
	return int(math.Round(float64(base) * math.Pow(CostGrowth, float64(owned))))
}

// UpgradeCost returns the price of taking a track from level to level+1.
// The second result is false when the track is maxed or the type cannot be upgraded.
func UpgradeCost(base, level int, upgradable bool, maxLevel int) (int, bool) {
	if !upgradable || level >= maxLevel || level < 0 {
		return -1, false
	}
	return base * (level + 1) / 2, true
}

// UpgradeSpent sums what has already been paid to reach the given levels.
func UpgradeSpent(base int, levels ...int) int {
	total := 0
	for _, lvl := range levels {
		for l := 0; l < lvl; l++ {
			total += base * (l + 1) / 2
		}
	}
	return total
}

// SellValue is half of what the tower is worth, truncated.
func SellValue(replacementCost, upgradesSpent int) int {
	return (replacementCost + upgradesSpent) / 2
}
