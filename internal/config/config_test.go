package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	def := DefaultShooterConfig()
	if cfg.Screen != def.Screen {
		t.Errorf("screen = %+v, expected %+v", cfg.Screen, def.Screen)
	}
	if cfg.Player != def.Player || cfg.Enemies != def.Enemies || cfg.Projectiles != def.Projectiles {
		t.Error("embedded entity settings differ from DefaultShooterConfig")
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("lives = %d, expected 3", cfg.Gameplay.Lives)
	}
	if cfg.SpawnInterval() != 1500*time.Millisecond {
		t.Errorf("SpawnInterval() = %v, expected 1.5s", cfg.SpawnInterval())
	}
	if cfg.AnimationInterval() != 80*time.Millisecond {
		t.Errorf("AnimationInterval() = %v, expected 80ms", cfg.AnimationInterval())
	}
}

func TestParseLayersOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte("enemies:\n  speed: 9\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Enemies.Speed != 9 {
		t.Errorf("enemies.speed = %d, expected 9", cfg.Enemies.Speed)
	}
	if cfg.Enemies.SpawnIntervalMS != 1500 {
		t.Errorf("unset keys should keep defaults, spawn_interval_ms = %d", cfg.Enemies.SpawnIntervalMS)
	}
	if cfg.Player.Speed != 15 {
		t.Errorf("player.speed = %d, expected default 15", cfg.Player.Speed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
	}{
		{"zero width", func(c *ShooterConfig) { c.Screen.Width = 0 }},
		{"negative enemy speed", func(c *ShooterConfig) { c.Enemies.Speed = -1 }},
		{"too many lives", func(c *ShooterConfig) { c.Gameplay.Lives = 4 }},
		{"no lives", func(c *ShooterConfig) { c.Gameplay.Lives = 0 }},
		{"margin wider than screen", func(c *ShooterConfig) { c.Enemies.SpawnMargin = 401 }},
		{"negative hold", func(c *ShooterConfig) { c.Input.HoldMS = -5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}

	if err := DefaultShooterConfig().Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Player.Speed != 20 {
		t.Errorf("player.speed = %d, expected 20", cfg.Player.Speed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("gameplay:\n  lives: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load of invalid config = %v, expected ErrInvalid", err)
	}
}

func TestLoadInvalidUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".shooter")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "shooter.yaml"), []byte("gameplay: {lives: 9}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(""); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load with invalid user config = %v, expected ErrInvalid", err)
	}
}

func TestLoadInvalidLocalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd := t.TempDir()
	t.Chdir(wd)

	if err := os.MkdirAll(filepath.Join(wd, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(wd, "configs", "shooter.yaml"), []byte("screen: [\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(""); err == nil {
		t.Error("Load with malformed ./configs/shooter.yaml should fail")
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no files: %v", err)
	}
	if cfg.Gameplay.Lives != DefaultShooterConfig().Gameplay.Lives {
		t.Errorf("Lives = %d, expected default", cfg.Gameplay.Lives)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "normal", "easy", "hard"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParsePreset(insane) = %v, expected ErrInvalid", err)
	}
}

func TestApplyPreset(t *testing.T) {
	normal := DefaultShooterConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal.Enemies != DefaultShooterConfig().Enemies {
		t.Error("normal preset should not change enemies")
	}

	easy := DefaultShooterConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Enemies.Speed >= 5 || easy.Enemies.SpawnIntervalMS <= 1500 {
		t.Errorf("easy preset should slow enemies, got %+v", easy.Enemies)
	}

	hard := DefaultShooterConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Enemies.Speed <= 5 || hard.Enemies.SpawnIntervalMS >= 1500 {
		t.Errorf("hard preset should speed enemies up, got %+v", hard.Enemies)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset produced invalid config: %v", err)
	}
}
