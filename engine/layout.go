package engine

// tileSpacing is the margin, in tiles, kept on each side of the larger axis
const tileSpacing = 1

// FitTileSize picks a tile edge so a rows x columns grid fits a width x height surface
// The larger grid axis plus a one-tile margin each side spans the smaller surface axis
func FitTileSize(width, height float64, rows, columns int) float64 {
	if width <= 0 || height <= 0 || rows <= 0 || columns <= 0 {
		return 0
	}

	windowAspect := width / height
	if height < width {
		windowAspect = height / width
	}

	largeSize := min(width, height)
	largeAmount := float64(max(rows, columns))
	size := largeSize / (largeAmount + tileSpacing*2)

	aspect := 1.0
	if largeAmount*size > largeSize {
		aspect = largeSize / (largeAmount * size)
	}
	if aspect == 1 {
		return size
	}
	return size * aspect * windowAspect
}
