package gui

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	colorBackground = mustHex("#fafafa")
	colorTile       = mustHex("#3465a4")
	colorSelector   = mustHex("#ef2929")
	colorHUD        = mustHex("#2e3436")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// withOpacity returns c as a non-premultiplied color at alpha a
func withOpacity(c colorful.Color, a float64) color.NRGBA {
	r, g, b := c.RGB255()
	a = min(max(a, 0), 1)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}
