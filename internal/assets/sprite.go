// Package assets loads the sprite frames the game draws.
//
// Sprites are plain-text glyph grids. Each glyph covers one texel of
// TexelW x TexelH logical pixels, so a sprite's collision size follows from
// its text size. Spaces are transparent.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Texel size in logical pixels. 8x16 keeps the usual terminal cell aspect.
const (
	TexelW = 8
	TexelH = 16
)

// ErrEmptySprite is returned for sprite files without a visible glyph.
var ErrEmptySprite = errors.New("assets: sprite has no visible glyphs")

// Sprite is one animation frame.
type Sprite struct {
	Name   string
	Glyphs [][]rune // Rows of equal length; ' ' is transparent
}

// Cols returns the sprite width in texels.
func (s Sprite) Cols() int {
	if len(s.Glyphs) == 0 {
		return 0
	}
	return len(s.Glyphs[0])
}

// Rows returns the sprite height in texels.
func (s Sprite) Rows() int {
	return len(s.Glyphs)
}

// Width returns the sprite width in logical pixels.
func (s Sprite) Width() int {
	return s.Cols() * TexelW
}

// Height returns the sprite height in logical pixels.
func (s Sprite) Height() int {
	return s.Rows() * TexelH
}

// Scale returns a copy with every glyph repeated n times in both directions.
func (s Sprite) Scale(n int) Sprite {
	if n <= 1 {
		return s
	}
	out := Sprite{Name: s.Name, Glyphs: make([][]rune, 0, s.Rows()*n)}
	for _, row := range s.Glyphs {
		scaled := make([]rune, 0, len(row)*n)
		for _, g := range row {
			for i := 0; i < n; i++ {
				scaled = append(scaled, g)
			}
		}
		for i := 0; i < n; i++ {
			out.Glyphs = append(out.Glyphs, append([]rune(nil), scaled...))
		}
	}
	return out
}

// ParseSprite builds a sprite from text. Trailing blank lines are dropped
// and short rows are padded with transparent glyphs.
func ParseSprite(name, text string) (Sprite, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return Sprite{}, fmt.Errorf("%w: %s", ErrEmptySprite, name)
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	s := Sprite{Name: name, Glyphs: make([][]rune, len(lines))}
	for i, l := range lines {
		row := []rune(l)
		for len(row) < width {
			row = append(row, ' ')
		}
		s.Glyphs[i] = row
	}
	return s, nil
}

// LoadSprite reads and parses a sprite file from fsys.
func LoadSprite(fsys fs.FS, path string) (Sprite, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Sprite{}, fmt.Errorf("assets: cannot read %s: %w", path, err)
	}
	return ParseSprite(path, string(data))
}

// LoadFrames loads an ordered list of animation frames.
func LoadFrames(fsys fs.FS, paths []string, scale int) ([]Sprite, error) {
	frames := make([]Sprite, 0, len(paths))
	for _, p := range paths {
		s, err := LoadSprite(fsys, p)
		if err != nil {
			return nil, err
		}
		frames = append(frames, s.Scale(scale))
	}
	return frames, nil
}
