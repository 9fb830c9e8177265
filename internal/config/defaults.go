package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			Title:  "Space Shooter",
		},
		TickRate: 60,
		Player: PlayerConfig{
			Speed:        15,
			BottomOffset: 50,
		},
		Enemies: EnemyConfig{
			Speed:           5,
			SpawnIntervalMS: 1500,
			SpawnMargin:     50,
			Scale:           3,
		},
		Projectiles: ProjectileConfig{
			Speed:  10,
			Points: 10,
		},
		Background: BackgroundConfig{
			ScrollSpeed: 1,
		},
		Animation: AnimationConfig{
			FrameIntervalMS: 80,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Input: InputConfig{
			HoldMS: 150,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Colors: map[string]string{
			"background": "dark_gray",
			"player":     "bright_cyan",
			"enemy":      "orange",
			"projectile": "bright_yellow",
			"hud":        "bright_white",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
