// internal/defs/waves.go
package defs

import "math"

// RoundSize returns how many enemies round r spawns, including the boss.
func RoundSize(round int) int {
	n := 5 + (round-1)*2
	if IsBossRound(round) {
		n++
	}
	return n
}

// IsBossRound — каждый десятый раунд.
func IsBossRound(round int) bool {
	return round > 0 && round%10 == 0
}

// SpawnBands are the cumulative probability caps for round r, evaluated in order
// skeleton, tank, ghost; anything above their sum is a zombie.
type SpawnBands struct {
	Skeleton float64
	Tank     float64
	Ghost    float64
}

// BandsFor returns the spawn chances for round r.
func BandsFor(round int) SpawnBands {
	r := float64(round - 1)
	return SpawnBands{
		Skeleton: math.Min(0.1*r, 0.7),
		Tank:     math.Min(0.05*r, 0.3),
		Ghost:    math.Min(0.07*r, 0.25),
	}
}

// Pick maps one draw in [0,1) onto an enemy type.
func (b SpawnBands) Pick(draw float64) EnemyType {
	switch {
	case draw < b.Skeleton:
		return EnemySkeleton
	case draw < b.Skeleton+b.Tank:
		return EnemyTank
	case draw < b.Skeleton+b.Tank+b.Ghost:
		return EnemyGhost
	}
	return EnemyZombie
}
