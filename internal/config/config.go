// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 840
	ScreenHeight = 640
	GameWidth    = 640 // игровое поле без панели
	PanelWidth   = 200
	TowerSize    = 40.0

	StartingLives     = 3
	RoundCountdown    = 5.0 // секунд между раундами
	SpawnInterval     = 1.0
	BaseEnemiesPerRnd = 5
	EnemiesIncrement  = 2
	BossRoundEvery    = 10
	RoundBonusPerRnd  = 5
	GameStartBanner   = 2.0

	EnemyPoolSize      = 64
	ProjectilePoolSize = 100

	ProjectileRangeFactor = 1.2
	ProjectileBoundMargin = 50.0
	AreaBurstDirections   = 8

	MaxUpgradeLevel = 3

	MaxDeltaTime      = 0.06
	ClickDebounceTime = 100

	ProjectileRadius = 4.0
	TrapHitRadius    = 15.0 // половина обычного диаметра врага, одинакова для всех типов
	TextCharWidth    = 7
	TextOffsetY      = 4

	SpeedButtonOffsetX = 80
	SpeedButtonY       = 30
	SpeedButtonSize    = 18.0
)

var (
	BackgroundColor = color.RGBA{70, 120, 60, 255}
	PathColor       = color.RGBA{150, 120, 80, 255}
	WaterColor      = color.RGBA{60, 110, 190, 255}
	PanelColor      = color.RGBA{35, 35, 45, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	PreviewOKColor  = color.RGBA{0, 255, 0, 110}
	PreviewBadColor = color.RGBA{255, 0, 0, 110}
	RangeRingColor  = color.RGBA{255, 255, 255, 90}
	HealthBarBack   = color.RGBA{80, 0, 0, 255}
	HealthBarFront  = color.RGBA{0, 220, 0, 255}
	ProjectileColor = color.RGBA{255, 240, 120, 255}
	StrokeWidth     = 2.0

	// по порядку defs.TowerType
	TowerColors = []color.RGBA{
		{128, 128, 128, 255}, // none
		{220, 40, 40, 255},   // apple
		{255, 140, 0, 255},   // carrot
		{160, 120, 70, 255},  // potato
		{250, 210, 40, 255},  // pineapple
		{255, 235, 90, 255},  // banana peel
		{40, 160, 60, 255},   // cactus
	}
	// по порядку defs.EnemyType
	EnemyColors = []color.RGBA{
		{230, 230, 230, 255}, // skeleton
		{90, 160, 90, 255},   // zombie
		{140, 20, 20, 255},   // boss
		{90, 90, 110, 255},   // tank
		{200, 200, 255, 160}, // ghost
	}
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
)
