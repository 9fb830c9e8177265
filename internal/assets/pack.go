package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed sprites
var embedded embed.FS

// Sprite file names inside an asset directory.
var (
	PlayerFrames = []string{
		"player/player_0.txt",
		"player/player_1.txt",
	}
	EnemyFrames = []string{
		"meteor/meteor_1.txt",
		"meteor/meteor_2.txt",
		"meteor/meteor_3.txt",
		"meteor/meteor_4.txt",
		"meteor/meteor_5.txt",
	}
	ProjectileFile = "projectile.txt"
	SkyFile        = "sky.txt"
)

// Pack holds every sprite the game needs, loaded once at startup.
type Pack struct {
	Player     []Sprite
	Enemy      []Sprite
	Projectile Sprite
	Sky        Sprite
}

// FS returns the asset filesystem: dir when set, otherwise the built-in sprites.
func FS(dir string) (fs.FS, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("assets: cannot open %s: %w", dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("assets: %s is not a directory", dir)
		}
		return os.DirFS(dir), nil
	}
	sub, err := fs.Sub(embedded, "sprites")
	if err != nil {
		return nil, fmt.Errorf("assets: built-in sprites: %w", err)
	}
	return sub, nil
}

// LoadPack loads all sprites from fsys. Enemy frames are scaled by enemyScale.
// Any missing or empty file fails the whole pack.
func LoadPack(fsys fs.FS, enemyScale int) (*Pack, error) {
	player, err := LoadFrames(fsys, PlayerFrames, 1)
	if err != nil {
		return nil, err
	}
	enemy, err := LoadFrames(fsys, EnemyFrames, enemyScale)
	if err != nil {
		return nil, err
	}
	projectile, err := LoadSprite(fsys, ProjectileFile)
	if err != nil {
		return nil, err
	}
	sky, err := LoadSprite(fsys, SkyFile)
	if err != nil {
		return nil, err
	}

	return &Pack{
		Player:     player,
		Enemy:      enemy,
		Projectile: projectile,
		Sky:        sky,
	}, nil
}

// Load opens the asset directory (or the built-in sprites) and loads the pack.
func Load(dir string, enemyScale int) (*Pack, error) {
	fsys, err := FS(dir)
	if err != nil {
		return nil, err
	}
	return LoadPack(fsys, enemyScale)
}
