package engine

import (
	"math"
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestMonotonicTimeProvider(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}

	p := NewMonotonicTimeProvider()
	a := p.Now()
	b := p.Now()
	if b.Before(a) {
		t.Errorf("Expected non-decreasing time, got %v then %v", a, b)
	}
}

func TestMockTimeProvider(t *testing.T) {
	m := NewMockTimeProvider(epoch)
	if !m.Now().Equal(epoch) {
		t.Errorf("Expected %v, got %v", epoch, m.Now())
	}

	m.Advance(5 * time.Second)
	if got := m.Now().Sub(epoch); got != 5*time.Second {
		t.Errorf("Expected 5s after advance, got %v", got)
	}

	m.Set(epoch)
	if !m.Now().Equal(epoch) {
		t.Errorf("Expected reset to epoch, got %v", m.Now())
	}
}

func TestPausableClockExcludesPausedSpans(t *testing.T) {
	m := NewMockTimeProvider(epoch)
	pc := NewPausableClock(m)

	m.Advance(2 * time.Second)
	if got := pc.Elapsed(); got != 2*time.Second {
		t.Fatalf("Expected 2s elapsed, got %v", got)
	}

	pc.Pause()
	m.Advance(10 * time.Second)
	if got := pc.Elapsed(); got != 2*time.Second {
		t.Errorf("Expected frozen 2s while paused, got %v", got)
	}
	if got := pc.TotalPauseDuration(); got != 10*time.Second {
		t.Errorf("Expected 10s pause in progress, got %v", got)
	}

	pc.Resume()
	m.Advance(time.Second)
	if got := pc.Elapsed(); got != 3*time.Second {
		t.Errorf("Expected 3s after resume, got %v", got)
	}
	if got := pc.Now().Sub(epoch); got != 3*time.Second {
		t.Errorf("Expected game time epoch+3s, got %v", got)
	}
	if got := pc.RealTime().Sub(epoch); got != 13*time.Second {
		t.Errorf("Expected real time epoch+13s, got %v", got)
	}
}

func TestPausableClockIdempotentTransitions(t *testing.T) {
	m := NewMockTimeProvider(epoch)
	pc := NewPausableClock(m)

	pc.Resume() // running already
	pc.Pause()
	m.Advance(time.Second)
	pc.Pause() // must not restart the pause span
	m.Advance(time.Second)
	pc.Resume()

	if got := pc.TotalPauseDuration(); got != 2*time.Second {
		t.Errorf("Expected 2s total pause, got %v", got)
	}
	if pc.IsPaused() {
		t.Error("Expected running clock")
	}
}

func TestPausableClockToggle(t *testing.T) {
	pc := NewPausableClock(NewMockTimeProvider(epoch))
	if !pc.Toggle() {
		t.Error("Expected first toggle to pause")
	}
	if pc.Toggle() {
		t.Error("Expected second toggle to resume")
	}
}

func TestFrameClockDelta(t *testing.T) {
	m := NewMockTimeProvider(epoch)
	fc := NewFrameClock(NewPausableClock(m), 60)

	if dt := fc.Tick(); dt != 1 {
		t.Errorf("Expected first tick 1, got %v", dt)
	}

	m.Advance(fc.Interval())
	if dt := fc.Tick(); dt != 1 {
		t.Errorf("Expected one frame, got %v", dt)
	}

	m.Advance(fc.Interval() * 3)
	if dt := fc.Tick(); math.Abs(dt-3) > 1e-9 {
		t.Errorf("Expected three frames, got %v", dt)
	}

	if dt := fc.Tick(); dt != 0 {
		t.Errorf("Expected 0 with no time passing, got %v", dt)
	}
}

func TestFrameClockPaused(t *testing.T) {
	m := NewMockTimeProvider(epoch)
	pc := NewPausableClock(m)
	fc := NewFrameClock(pc, 30)
	fc.Tick()

	pc.Pause()
	m.Advance(time.Second)
	if dt := fc.Tick(); dt != 0 {
		t.Errorf("Expected 0 while paused, got %v", dt)
	}

	pc.Resume()
	m.Advance(fc.Interval())
	if dt := fc.Tick(); dt != 1 {
		t.Errorf("Expected pause span excluded, got %v", dt)
	}
}

func TestFrameClockDefaultsFPS(t *testing.T) {
	fc := NewFrameClock(NewPausableClock(NewMockTimeProvider(epoch)), 0)
	if fc.Interval() != time.Second/60 {
		t.Errorf("Expected 60 FPS interval, got %v", fc.Interval())
	}
}

func TestFitTileSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		rows, columns int
		want          float64
	}{
		{"landscape", 900, 700, 7, 9, 700.0 / 11},
		{"portrait", 400, 800, 7, 9, 400.0 / 11},
		{"tall grid", 1000, 1000, 8, 3, 100},
		{"zero surface", 0, 700, 7, 9, 0},
		{"zero rows", 900, 700, 0, 9, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitTileSize(tt.width, tt.height, tt.rows, tt.columns)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFitTileSizeFitsSurface(t *testing.T) {
	size := FitTileSize(640, 480, 7, 9)
	if 9*size > 640 || 7*size > 480 {
		t.Errorf("Expected 7x9 grid of %v to fit 640x480", size)
	}
}
