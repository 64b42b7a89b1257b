// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1024
	ScreenHeight = 576
	MaxDeltaTime = 0.06
	TargetFPS    = 60

	TileSize    = 32.0
	EnemySize   = 32.0
	TurretSize  = 32.0
	BulletSize  = 16.0
	ExplodeSize = 32.0
	ImpactSize  = 16.0

	HUDHeight         = 40.0
	HUDPadding        = 12.0
	SpeedButtonSize   = 18.0
	PauseButtonSize   = 18.0
	NextWaveButtonW   = 110.0
	NextWaveButtonH   = 26.0
	ShopSlotSize      = 40.0
	ClickDebounceTime = 100 // мс

	DamageTextSpeed    = 15.0
	KillEffectDuration = 0.33
	BlendInDuration    = 1.0
	OverlayDuration    = 2.5
	OverlayDelay       = 1.0
	PathTraceLoopTime  = 4.0
	PathTraceLength    = 0.25 // доля от размеров карты
)

var (
	BackgroundColor    = color.RGBA{36, 34, 52, 255}
	PathColor          = color.RGBA{54, 44, 74, 255}
	ZoneColor          = color.RGBA{60, 90, 70, 120}
	OverlayCollide     = color.RGBA{255, 0, 0, 50}
	OverlayValid       = color.RGBA{0, 255, 0, 50}
	OverlayInfo        = color.RGBA{0, 0, 255, 35}
	SelectedColor      = color.RGBA{255, 255, 64, 255}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	TextWarnColor      = color.RGBA{200, 100, 0, 255}
	HUDColor           = color.RGBA{20, 20, 30, 220}
	LifeColor          = color.RGBA{255, 0, 0, 255}
	CoinColor          = color.RGBA{255, 215, 0, 255}
	TurretBaseColor    = color.RGBA{7, 0, 21, 255}
	TurretBarrelColor  = color.RGBA{54, 44, 74, 255}
	SpeedButtonColors  = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4, песочно-жёлтый
	}
	TierColors = []color.RGBA{
		{90, 200, 90, 255},
		{70, 130, 220, 255},
		{200, 80, 200, 255},
		{230, 60, 40, 255},
	}
)
