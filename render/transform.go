package render

// Transform maps world coordinates onto terminal cells. Terminal cells
// are roughly twice as tall as wide, so the two axes scale independently.
type Transform struct {
	worldW, worldH float64
	cols, rows     int
}

// NewTransform fits the play field into a cols x rows cell grid
func NewTransform(worldW, worldH float64, cols, rows int) Transform {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return Transform{worldW: worldW, worldH: worldH, cols: cols, rows: rows}
}

// Cell converts a world position to a cell coordinate
func (t Transform) Cell(x, y float64) (int, int) {
	cx := int(x / t.worldW * float64(t.cols))
	cy := int(y / t.worldH * float64(t.rows))
	if cx < 0 {
		cx = 0
	}
	if cx >= t.cols {
		cx = t.cols - 1
	}
	if cy < 0 {
		cy = 0
	}
	if cy >= t.rows {
		cy = t.rows - 1
	}
	return cx, cy
}

// World converts a cell coordinate to the world position at its center
func (t Transform) World(cx, cy int) (float64, float64) {
	x := (float64(cx) + 0.5) / float64(t.cols) * t.worldW
	y := (float64(cy) + 0.5) / float64(t.rows) * t.worldH
	return x, y
}

// CellsPerWorldX returns the horizontal cell density
func (t Transform) CellsPerWorldX() float64 {
	return float64(t.cols) / t.worldW
}

// CellsPerWorldY returns the vertical cell density
func (t Transform) CellsPerWorldY() float64 {
	return float64(t.rows) / t.worldH
}
