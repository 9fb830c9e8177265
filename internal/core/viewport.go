package core

// Viewport projects the logical playfield onto a terminal cell grid.
// A logical pixel (x, y) lands in cell (x*Cols/Width, y*Rows/Height).
type Viewport struct {
	Width, Height int // Logical playfield size in pixels
	Cols, Rows    int // Terminal size in cells
}

// NewViewport creates a viewport for a logical field rendered into cols x rows cells.
func NewViewport(width, height, cols, rows int) Viewport {
	return Viewport{Width: width, Height: height, Cols: cols, Rows: rows}
}

// ToCell converts a logical point to a cell position.
// Points outside the playfield map to cells outside the grid.
func (v Viewport) ToCell(x, y int) (int, int) {
	if v.Width <= 0 || v.Height <= 0 {
		return 0, 0
	}
	return FloorDiv(x*v.Cols, v.Width), FloorDiv(y*v.Rows, v.Height)
}

// Visible reports whether the logical point falls inside the playfield.
func (v Viewport) Visible(x, y int) bool {
	return x >= 0 && x < v.Width && y >= 0 && y < v.Height
}
