package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Speed = max(1, cfg.Enemies.Speed*3/5)
		cfg.Enemies.SpawnIntervalMS = cfg.Enemies.SpawnIntervalMS * 3 / 2
	case DifficultyHard:
		cfg.Enemies.Speed = cfg.Enemies.Speed * 8 / 5
		cfg.Enemies.SpawnIntervalMS = max(1, cfg.Enemies.SpawnIntervalMS*2/3)
	}
}
