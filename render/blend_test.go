package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestFadeColorEndpoints(t *testing.T) {
	if got := FadeColor(1); got != RgbTile {
		t.Errorf("Expected tile color at full opacity, got %v", got)
	}
	if got := FadeColor(0); got != RgbBackground {
		t.Errorf("Expected background at zero opacity, got %v", got)
	}
	if got := FadeColor(3); got != RgbTile {
		t.Errorf("Expected clamp above 1, got %v", got)
	}
	if got := FadeColor(-0.5); got != RgbBackground {
		t.Errorf("Expected clamp below 0, got %v", got)
	}
}

func TestFadeColorApproachesBackground(t *testing.T) {
	bg := toColorful(RgbBackground)
	prev := bg.DistanceLab(toColorful(FadeColor(1)))

	for _, op := range []float64{0.8, 0.6, 0.4, 0.2, 0.05} {
		d := bg.DistanceLab(toColorful(FadeColor(op)))
		if d >= prev {
			t.Errorf("Expected opacity %v closer to background than previous step, got %v >= %v", op, d, prev)
		}
		prev = d
	}
}

func TestBlendMidpointBetweenChannels(t *testing.T) {
	black := tcell.NewRGBColor(0, 0, 0)
	white := tcell.NewRGBColor(255, 255, 255)

	r, g, b := Blend(white, black, 0.5).RGB()
	for _, ch := range []int32{r, g, b} {
		if ch <= 0 || ch >= 255 {
			t.Errorf("Expected midpoint channel strictly inside range, got %d", ch)
		}
	}
}
