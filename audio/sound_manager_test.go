package audio

import (
	"errors"
	"testing"
	"time"
)

func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Play(SoundMove)
	sm.Play(SoundTeleport)
	sm.Play(SoundDestroy)
	sm.Cleanup()

	if sm.Active() {
		t.Error("Expected inactive manager")
	}
}

func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); !errors.Is(err, ErrDisabled) {
		t.Errorf("Expected ErrDisabled, got %v", err)
	}
	if sm.Active() {
		t.Error("Expected inactive manager when disabled")
	}
}

func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// No audio device in CI is not a failure
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got %v", err)
	}
	sm.Play(SoundDestroy)
	sm.Cleanup()
}

func TestSoundManagerToggleMute(t *testing.T) {
	sm := NewSoundManager(nil)

	if sm.Muted() {
		t.Fatal("Expected unmuted by default")
	}
	if !sm.ToggleMute() || !sm.Muted() {
		t.Error("Expected muted after first toggle")
	}
	if sm.ToggleMute() || sm.Muted() {
		t.Error("Expected unmuted after second toggle")
	}
}

func TestSoundManagerRepeatGap(t *testing.T) {
	sm := NewSoundManager(nil)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	if !sm.shouldPlay(SoundMove, base) {
		t.Error("Expected first play allowed")
	}
	if sm.shouldPlay(SoundMove, base.Add(5*time.Millisecond)) {
		t.Error("Expected repeat inside gap dropped")
	}
	if !sm.shouldPlay(SoundDestroy, base.Add(5*time.Millisecond)) {
		t.Error("Expected a different cue to be independent")
	}
	if !sm.shouldPlay(SoundMove, base.Add(minSoundGap)) {
		t.Error("Expected play allowed after gap")
	}
	if sm.shouldPlay(SoundType(-1), base) {
		t.Error("Expected invalid cue rejected")
	}
}
