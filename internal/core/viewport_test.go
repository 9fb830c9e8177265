package core

import "testing"

func TestViewportToCell(t *testing.T) {
	v := NewViewport(800, 600, 100, 30)

	tests := []struct {
		name         string
		x, y         int
		wantC, wantR int
	}{
		{"origin", 0, 0, 0, 0},
		{"inside first cell", 7, 19, 0, 0},
		{"second cell", 8, 20, 1, 1},
		{"bottom-right", 799, 599, 99, 29},
		{"off-screen left", -1, 0, -1, 0},
		{"off-screen top", 0, -40, 0, -2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, r := v.ToCell(tc.x, tc.y)
			if c != tc.wantC || r != tc.wantR {
				t.Errorf("ToCell(%d, %d) = (%d, %d), expected (%d, %d)", tc.x, tc.y, c, r, tc.wantC, tc.wantR)
			}
		})
	}
}

func TestViewportVisible(t *testing.T) {
	v := NewViewport(800, 600, 80, 24)
	if !v.Visible(0, 0) || !v.Visible(799, 599) {
		t.Error("corners of the playfield should be visible")
	}
	if v.Visible(800, 0) || v.Visible(0, -1) {
		t.Error("points outside the playfield should not be visible")
	}
}
