package audio

import (
	"errors"
	"time"
)

// SoundType identifies a synthesized cue
type SoundType int

const (
	SoundMove     SoundType = iota // Neighbour step
	SoundTeleport                  // Edge wraparound
	SoundDestroy                   // Tile fade started
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundMove:
		return "move"
	case SoundTeleport:
		return "teleport"
	case SoundDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// ErrDisabled is returned by Initialize when the config turns audio off
var ErrDisabled = errors.New("audio disabled")

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	BufferSize    time.Duration
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		BufferSize:   100 * time.Millisecond,
		EffectVolumes: [soundTypeCount]float64{
			SoundMove:     0.3,
			SoundTeleport: 0.5,
			SoundDestroy:  0.6,
		},
	}
}

// Cue timing
const (
	moveSoundDuration = 40 * time.Millisecond
	moveSoundAttack   = 3 * time.Millisecond
	moveSoundRelease  = 25 * time.Millisecond

	teleportNote1Duration = 60 * time.Millisecond
	teleportNote2Duration = 140 * time.Millisecond
	teleportAttack        = 5 * time.Millisecond
	teleportNote1Release  = 30 * time.Millisecond
	teleportNote2Release  = 100 * time.Millisecond

	destroySoundDuration = 300 * time.Millisecond
	destroySoundAttack   = 20 * time.Millisecond
	destroySoundRelease  = 250 * time.Millisecond
)
