// internal/defs/enemies.go
package defs

import (
	"fmt"
	"strings"
)

// EnemyType — вид врага.
type EnemyType int

const (
	EnemySkeleton EnemyType = iota
	EnemyZombie
	EnemyBoss
	EnemyTank
	EnemyGhost
)

var enemyTypeNames = []string{"SKELETON", "ZOMBIE", "BOSS", "TANK", "GHOST"}

func (t EnemyType) String() string {
	if t < 0 || int(t) >= len(enemyTypeNames) {
		return fmt.Sprintf("EnemyType(%d)", int(t))
	}
	return enemyTypeNames[t]
}

func (t EnemyType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *EnemyType) UnmarshalText(b []byte) error {
	for i, name := range enemyTypeNames {
		if strings.EqualFold(name, string(b)) {
			*t = EnemyType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown enemy type %q", string(b))
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Type       EnemyType `json:"type"`
	Name       string    `json:"name"`
	Health     float64   `json:"health"`
	Speed      float64   `json:"speed"`
	Reward     int       `json:"reward"`
	Size       float64   `json:"size"`     // рисуемый диаметр
	HitSize    float64   `json:"hit_size"` // диаметр для попаданий снарядов
	TrapImmune bool      `json:"trap_immune"`
	Visuals    Visuals   `json:"visuals"`
}

// EnemyLibrary is the enemy table keyed by type.
var EnemyLibrary map[EnemyType]EnemyDefinition

func defaultEnemies() map[EnemyType]EnemyDefinition {
	return map[EnemyType]EnemyDefinition{
		EnemyZombie:   {Type: EnemyZombie, Name: "Zombie", Health: 40, Speed: 50, Reward: 1, Size: 30, HitSize: 30},
		EnemySkeleton: {Type: EnemySkeleton, Name: "Skeleton", Health: 20, Speed: 80, Reward: 2, Size: 30, HitSize: 30},
		EnemyBoss:     {Type: EnemyBoss, Name: "Boss", Health: 400, Speed: 25, Reward: 30, Size: 60, HitSize: 60},
		EnemyTank:     {Type: EnemyTank, Name: "Tank", Health: 100, Speed: 35, Reward: 5, Size: 40, HitSize: 30},
		EnemyGhost:    {Type: EnemyGhost, Name: "Ghost", Health: 10, Speed: 120, Reward: 3, Size: 28, HitSize: 30, TrapImmune: true},
	}
}

// Enemy returns the definition for t, falling back to the zombie row.
func Enemy(t EnemyType) EnemyDefinition {
	if def, ok := EnemyLibrary[t]; ok {
		return def
	}
	return EnemyLibrary[EnemyZombie]
}
