// Package config provides YAML-based game configuration loading and
// difficulty presets for the shooter.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned when a loaded configuration cannot drive a session.
var ErrInvalid = errors.New("config: invalid configuration")

// MaxLives is the upper bound for the starting life count.
const MaxLives = 3

// ShooterConfig contains all configuration for the game.
type ShooterConfig struct {
	Screen      ScreenConfig      `yaml:"screen"`
	TickRate    int               `yaml:"tick_rate"`
	Player      PlayerConfig      `yaml:"player"`
	Enemies     EnemyConfig       `yaml:"enemies"`
	Projectiles ProjectileConfig  `yaml:"projectiles"`
	Background  BackgroundConfig  `yaml:"background"`
	Animation   AnimationConfig   `yaml:"animation"`
	Gameplay    GameplayConfig    `yaml:"gameplay"`
	Input       InputConfig       `yaml:"input"`
	Audio       AudioConfig       `yaml:"audio"`
	Colors      map[string]string `yaml:"colors"`
}

// ScreenConfig defines the logical playfield.
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Speed        int `yaml:"speed"`
	BottomOffset int `yaml:"bottom_offset"` // Distance from the bottom edge to the ship's center
}

// EnemyConfig defines enemy spawning and movement.
type EnemyConfig struct {
	Speed           int `yaml:"speed"`
	SpawnIntervalMS int `yaml:"spawn_interval_ms"`
	SpawnMargin     int `yaml:"spawn_margin"`
	Scale           int `yaml:"scale"`
}

// ProjectileConfig defines player projectiles.
type ProjectileConfig struct {
	Speed  int `yaml:"speed"`
	Points int `yaml:"points"`
}

// BackgroundConfig defines background scrolling.
type BackgroundConfig struct {
	ScrollSpeed int `yaml:"scroll_speed"`
}

// AnimationConfig defines the shared animation clock.
type AnimationConfig struct {
	FrameIntervalMS int `yaml:"frame_interval_ms"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// InputConfig defines keyboard handling.
type InputConfig struct {
	// HoldMS is how long a movement key counts as held after its last
	// key event. Terminals report repeats, never releases.
	HoldMS int `yaml:"hold_ms"`
}

// AudioConfig defines music and sound effects.
// Empty file paths select the built-in synthesized sounds.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Gain in halvings, 0 = unchanged, -1 = half
	Music   string  `yaml:"music"`
	Fire    string  `yaml:"fire"`
}

// SpawnInterval returns the enemy spawn period.
func (c ShooterConfig) SpawnInterval() time.Duration {
	return time.Duration(c.Enemies.SpawnIntervalMS) * time.Millisecond
}

// AnimationInterval returns the animation frame period.
func (c ShooterConfig) AnimationInterval() time.Duration {
	return time.Duration(c.Animation.FrameIntervalMS) * time.Millisecond
}

// HoldDuration returns the held-key window.
func (c ShooterConfig) HoldDuration() time.Duration {
	return time.Duration(c.Input.HoldMS) * time.Millisecond
}

// Validate checks that the configuration can drive a session.
func (c ShooterConfig) Validate() error {
	positive := []struct {
		name string
		val  int
	}{
		{"screen.width", c.Screen.Width},
		{"screen.height", c.Screen.Height},
		{"tick_rate", c.TickRate},
		{"player.speed", c.Player.Speed},
		{"enemies.speed", c.Enemies.Speed},
		{"enemies.spawn_interval_ms", c.Enemies.SpawnIntervalMS},
		{"enemies.scale", c.Enemies.Scale},
		{"projectiles.speed", c.Projectiles.Speed},
		{"projectiles.points", c.Projectiles.Points},
		{"background.scroll_speed", c.Background.ScrollSpeed},
		{"animation.frame_interval_ms", c.Animation.FrameIntervalMS},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, p.name, p.val)
		}
	}

	if c.Gameplay.Lives < 1 || c.Gameplay.Lives > MaxLives {
		return fmt.Errorf("%w: gameplay.lives must be in [1, %d], got %d", ErrInvalid, MaxLives, c.Gameplay.Lives)
	}
	if c.Enemies.SpawnMargin < 0 || 2*c.Enemies.SpawnMargin > c.Screen.Width {
		return fmt.Errorf("%w: enemies.spawn_margin %d does not fit screen width %d", ErrInvalid, c.Enemies.SpawnMargin, c.Screen.Width)
	}
	if c.Input.HoldMS < 0 {
		return fmt.Errorf("%w: input.hold_ms must not be negative", ErrInvalid)
	}
	return nil
}
