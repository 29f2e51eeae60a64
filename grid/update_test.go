package grid

import "testing"

func TestUpdateRunsMovesAndFades(t *testing.T) {
	g, tiles := recordingGrid(t, 3, 3)
	g.EnqueueMove(Right, 10, 5)
	g.EnqueueDestroy(g.SelectedIndex(), 0.5, 1)

	g.Update(1)

	if x := g.Selector().Position().X; x != 5 {
		t.Errorf("Expected x=5, got %v", x)
	}
	if tiles[0].Opacity() != 0.5 {
		t.Errorf("Expected opacity 0.5, got %v", tiles[0].Opacity())
	}
}

func TestUpdateZeroDeltaHolds(t *testing.T) {
	g, tiles := recordingGrid(t, 3, 3)
	g.EnqueueMove(Down, 10, 5)
	g.EnqueueDestroy(3, 0.5, 1)

	for i := 0; i < 5; i++ {
		g.Update(0)
	}

	mv, ok := g.CurrentMove()
	if !ok || mv.Remaining != 10 {
		t.Errorf("Expected move held at 10, got %+v active=%v", mv, ok)
	}
	if tiles[3].Opacity() != 1 {
		t.Errorf("Expected opacity held at 1, got %v", tiles[3].Opacity())
	}
}

func TestUpdateLargeDeltaSingleJump(t *testing.T) {
	g := mustGrid(t, 7, 9, 50)
	g.EnqueueMove(Right, 400, 10)
	g.Update(1000)

	if x := g.Selector().Position().X; x != 400 {
		t.Errorf("Expected clamp to target 400, got %v", x)
	}
	if g.Animating() {
		t.Error("Expected move to finish in one frame")
	}
}
