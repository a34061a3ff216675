// internal/app/snapshot.go
package app

import (
	"bean-defense/internal/component"
	"bean-defense/internal/defs"
	"bean-defense/internal/types"
	"bean-defense/pkg/geom"
	"bean-defense/pkg/pathmap"
)

// TowerView — копия башни для отрисовки.
type TowerView struct {
	ID           types.EntityID
	Type         defs.TowerType
	Pos          geom.Point
	Range        float64
	Damage       float64
	AttackSpeed  float64
	Footprint    float64
	Levels       [3]int
	UpgradeCosts [3]int // -1 — недоступно
	SellValue    int
	Trap         bool
}

// EnemyView — копия активного врага с выведенной позицией.
type EnemyView struct {
	ID        types.EntityID
	Type      defs.EnemyType
	Pos       geom.Point
	Health    float64
	MaxHealth float64
	Size      float64
}

// ProjectileView — копия летящего снаряда.
type ProjectileView struct {
	Pos    geom.Point
	Dir    geom.Point
	Source defs.TowerType
}

// PreviewView describes the tower in hand.
type PreviewView struct {
	Type      defs.TowerType
	Pos       geom.Point
	Footprint float64
	Range     float64
	Cost      int
	Valid     bool
	Reason    Reason
}

// TowerButton is one entry of the purchase panel.
type TowerButton struct {
	Type     defs.TowerType
	Name     string
	Cost     int
	Unlocked bool
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Map              pathmap.MapID
	Difficulty       string
	Beans            int
	Lives            int
	Round            int
	RoundActive      bool
	Countdown        float64
	RemainingToSpawn int
	Banner           float64
	GameOver         bool
	GameWon          bool

	Towers      []TowerView
	Enemies     []EnemyView
	Projectiles []ProjectileView
	Selected    *TowerView
	Preview     *PreviewView
	Buttons     []TowerButton
}

// Snapshot copies the current world state.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	s := Snapshot{
		Map:              g.Map.ID,
		Difficulty:       w.Difficulty.Name,
		Beans:            w.Beans,
		Lives:            w.Lives,
		Round:            w.Round,
		RoundActive:      w.RoundActive,
		Countdown:        w.Countdown,
		RemainingToSpawn: w.RemainingToSpawn,
		Banner:           w.BannerTimer,
		GameOver:         w.GameOver,
		GameWon:          w.GameWon,
		Towers:           make([]TowerView, 0, len(w.Towers)),
		Enemies:          []EnemyView{},
		Projectiles:      []ProjectileView{},
	}

	for _, t := range w.Towers {
		if t.Removed {
			continue
		}
		v := g.towerView(t)
		s.Towers = append(s.Towers, v)
		if t.ID == g.selected {
			sel := v
			s.Selected = &sel
		}
	}
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Active {
			continue
		}
		s.Enemies = append(s.Enemies, EnemyView{
			ID:        e.ID,
			Type:      e.Type,
			Pos:       e.Position(g.Map.Path),
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Size:      e.Size(),
		})
	}
	for i := range w.Projectiles {
		p := &w.Projectiles[i]
		if !p.Active {
			continue
		}
		s.Projectiles = append(s.Projectiles, ProjectileView{Pos: p.Pos, Dir: p.Dir, Source: p.Source})
	}

	if def, ok := defs.Tower(g.previewType); ok {
		r := g.CheckPlacement(g.previewPos)
		s.Preview = &PreviewView{
			Type:      g.previewType,
			Pos:       g.previewPos,
			Footprint: component.FootprintFor(0),
			Range:     def.Range,
			Cost:      g.Cost(g.previewType),
			Valid:     r == ReasonOK,
			Reason:    r,
		}
	}

	for _, t := range defs.PlaceableTowers {
		def, _ := defs.Tower(t)
		s.Buttons = append(s.Buttons, TowerButton{
			Type:     t,
			Name:     def.Name,
			Cost:     g.Cost(t),
			Unlocked: g.IsUnlocked(t),
		})
	}
	return s
}

func (g *Game) towerView(t *component.Tower) TowerView {
	v := TowerView{
		ID:          t.ID,
		Type:        t.Type,
		Pos:         t.Pos,
		Range:       t.Range,
		Damage:      t.Damage,
		AttackSpeed: t.AttackSpeed,
		Footprint:   t.Footprint(),
		Levels:      t.Levels,
		SellValue:   g.SellValue(t),
		Trap:        t.Def().IsTrap(),
	}
	for k := range v.UpgradeCosts {
		v.UpgradeCosts[k] = UpgradeCost(t, defs.UpgradeKind(k))
	}
	return v
}
