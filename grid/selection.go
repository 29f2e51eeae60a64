package grid

// Select sets the logical selection
// A value above its bound resets that axis to 0; values below 1 are kept as-is
func (g *Grid) Select(column, row int) {
	if column > g.columns {
		g.selectedColumn = 0
	} else {
		g.selectedColumn = column
	}
	if row > g.rows {
		g.selectedRow = 0
	} else {
		g.selectedRow = row
	}
}

// LinearIndex maps a 1-indexed (row, column) to a row-major tile index
// Only meaningful for in-range arguments
func (g *Grid) LinearIndex(row, column int) int {
	return (row-1)*g.columns + (column - 1)
}

// SelectedIndex is the linear index of the current selection
func (g *Grid) SelectedIndex() int {
	return g.LinearIndex(g.selectedRow, g.selectedColumn)
}

// InBounds reports whether (row, column) addresses a tile
func (g *Grid) InBounds(row, column int) bool {
	return row >= 1 && row <= g.rows && column >= 1 && column <= g.columns
}
