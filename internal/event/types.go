// internal/event/types.go
package event

import (
	"bean-defense/internal/defs"
	"bean-defense/internal/types"
	"bean-defense/pkg/geom"
	"bean-defense/pkg/pathmap"
)

const (
	EnemySpawned    EventType = "EnemySpawned"
	EnemyEscaped    EventType = "EnemyEscaped" // враг дошёл до выхода
	EnemyKilled     EventType = "EnemyKilled"
	TrapTriggered   EventType = "TrapTriggered"
	ProjectileFired EventType = "ProjectileFired"
	RoundStarted    EventType = "RoundStarted"
	RoundCompleted  EventType = "RoundCompleted"
	GameOver        EventType = "GameOver"
	GameWon         EventType = "GameWon"
	TowerPlaced     EventType = "TowerPlaced"
	TowerUpgraded   EventType = "TowerUpgraded"
	TowerSold       EventType = "TowerSold"
	GameReset       EventType = "GameReset"
)

// EnemyData is carried by EnemySpawned, EnemyEscaped and EnemyKilled.
type EnemyData struct {
	ID     types.EntityID
	Type   defs.EnemyType
	Pos    geom.Point
	Reward int // только для EnemyKilled
	ByTrap bool
	Lives  int // только для EnemyEscaped
}

// TrapData — сработавшая ловушка.
type TrapData struct {
	TowerID types.EntityID
	Type    defs.TowerType
	EnemyID types.EntityID
}

// ProjectileData — выстрел башни.
type ProjectileData struct {
	TowerID types.EntityID
	Source  defs.TowerType
	Count   int
}

// RoundData is carried by RoundStarted and RoundCompleted.
type RoundData struct {
	Round   int
	Enemies int
	Bonus   int
}

// OutcomeData is carried by GameOver and GameWon.
type OutcomeData struct {
	Map   pathmap.MapID
	Round int
}

// TowerData is carried by TowerPlaced, TowerUpgraded and TowerSold.
type TowerData struct {
	ID      types.EntityID
	Type    defs.TowerType
	Pos     geom.Point
	Beans   int // потрачено или возвращено
	Upgrade defs.UpgradeKind
	Level   int
}
