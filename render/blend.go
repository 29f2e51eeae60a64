package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// toColorful converts a tcell RGB color; non-RGB colors map to black
func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Blend mixes fg over bg at alpha in Lab space
// alpha is clamped to [0,1]; 1 yields fg, 0 yields bg
func Blend(fg, bg tcell.Color, alpha float64) tcell.Color {
	alpha = min(max(alpha, 0), 1)
	switch alpha {
	case 1:
		return fg
	case 0:
		return bg
	}
	return fromColorful(toColorful(bg).BlendLab(toColorful(fg), alpha))
}

// FadeColor is the tile color at the given opacity over the background
func FadeColor(opacity float64) tcell.Color {
	return Blend(RgbTile, RgbBackground, opacity)
}
