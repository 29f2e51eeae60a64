package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// minSoundGap drops repeats of the same cue closer than one 60Hz frame apart
const minSoundGap = 16 * time.Millisecond

// SoundManager mixes cue streamers into the speaker
// Every method is a safe no-op before Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	lastPlayed [soundTypeCount]time.Time
	now        func() time.Time
}

// NewSoundManager creates a manager for cfg, nil selects DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(sm.cfg.BufferSize)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
}

// Play mixes in the cue for soundType
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted.Load() {
		return
	}
	if !sm.shouldPlay(soundType, sm.now()) {
		return
	}

	s := GetSoundEffect(soundType, sm.cfg)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// shouldPlay applies the per-cue repeat gap and records the play time
// Caller holds mu
func (sm *SoundManager) shouldPlay(soundType SoundType, now time.Time) bool {
	if soundType < 0 || soundType >= soundTypeCount {
		return false
	}
	last := sm.lastPlayed[soundType]
	if !last.IsZero() && now.Sub(last) < minSoundGap {
		return false
	}
	sm.lastPlayed[soundType] = now
	return true
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Active reports whether the speaker is open
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
