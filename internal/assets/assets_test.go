package assets

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func TestParseSprite(t *testing.T) {
	s, err := ParseSprite("ship", "  ^\n /#\\\n<_=_>\n\n")
	if err != nil {
		t.Fatalf("ParseSprite failed: %v", err)
	}
	if s.Cols() != 5 || s.Rows() != 3 {
		t.Errorf("size = %dx%d, expected 5x3", s.Cols(), s.Rows())
	}
	if s.Width() != 5*TexelW || s.Height() != 3*TexelH {
		t.Errorf("pixel size = %dx%d", s.Width(), s.Height())
	}
	if s.Glyphs[0][4] != ' ' {
		t.Error("short rows should be padded with spaces")
	}
}

func TestParseSpriteEmpty(t *testing.T) {
	for _, text := range []string{"", "\n\n", "   \n"} {
		if _, err := ParseSprite("empty", text); !errors.Is(err, ErrEmptySprite) {
			t.Errorf("ParseSprite(%q) = %v, expected ErrEmptySprite", text, err)
		}
	}
}

func TestSpriteScale(t *testing.T) {
	s, _ := ParseSprite("rock", "ab\n")
	scaled := s.Scale(3)

	if scaled.Cols() != 6 || scaled.Rows() != 3 {
		t.Fatalf("scaled size = %dx%d, expected 6x3", scaled.Cols(), scaled.Rows())
	}
	if string(scaled.Glyphs[2]) != "aaabbb" {
		t.Errorf("row 2 = %q, expected aaabbb", string(scaled.Glyphs[2]))
	}

	// Rows must not share backing arrays
	scaled.Glyphs[0][0] = 'x'
	if scaled.Glyphs[1][0] != 'a' {
		t.Error("scaled rows share storage")
	}

	if s.Scale(1).Cols() != 2 {
		t.Error("Scale(1) should be identity")
	}
}

func TestLoadBuiltinPack(t *testing.T) {
	pack, err := Load("", 3)
	if err != nil {
		t.Fatalf("Load built-in pack failed: %v", err)
	}

	if len(pack.Player) != 2 {
		t.Errorf("player frames = %d, expected 2", len(pack.Player))
	}
	if len(pack.Enemy) != 5 {
		t.Errorf("enemy frames = %d, expected 5", len(pack.Enemy))
	}
	if pack.Enemy[0].Width() != 3*2*TexelW {
		t.Errorf("enemy width = %d, expected scaled 48", pack.Enemy[0].Width())
	}
	if pack.Sky.Height() < 600 {
		t.Errorf("sky tile height %d must cover the 600px field", pack.Sky.Height())
	}
	if pack.Sky.Width() < 800 {
		t.Errorf("sky tile width %d must cover the 800px field", pack.Sky.Width())
	}
}

func TestLoadPackMissingFile(t *testing.T) {
	fsys := fstest.MapFS{
		"player/player_0.txt": {Data: []byte("A\n")},
		"player/player_1.txt": {Data: []byte("B\n")},
	}

	_, err := LoadPack(fsys, 3)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadPack with missing meteors = %v, expected fs.ErrNotExist", err)
	}
}

func TestFSRejectsMissingDir(t *testing.T) {
	if _, err := FS(t.TempDir() + "/nope"); err == nil {
		t.Error("FS should fail for a missing directory")
	}
}
