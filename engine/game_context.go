package engine

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/tilefade/audio"
	"github.com/lixenwraith/tilefade/config"
	"github.com/lixenwraith/tilefade/grid"
	"github.com/lixenwraith/tilefade/input"
	"github.com/lixenwraith/tilefade/status"
)

// SoundPlayer is the audio surface the context drives
type SoundPlayer interface {
	Play(audio.SoundType)
	ToggleMute() bool
}

// fpsWindow is the real-time span over which FPS is averaged
const fpsWindow = time.Second

// GameContext holds the grid, its navigator and the clocks that drive it
type GameContext struct {
	// ===== Immutable After Init =====

	Grid          *grid.Grid
	Navigator     *input.Navigator
	PausableClock *PausableClock
	FrameClock    *FrameClock
	Status        *status.Registry
	sound         SoundPlayer // nil when audio is off

	// ===== Atomic =====

	FrameNumber atomic.Int64
	IsPaused    atomic.Bool
	IsMuted     atomic.Bool

	// ===== Main-Loop Exclusive =====

	Width, Height int // surface size in the frontend's units

	fpsFrames int
	fpsStart  time.Time

	// Cached metric pointers
	statFrames         *atomic.Int64
	statFPS            *status.AtomicFloat
	statPaused         *atomic.Bool
	statMuted          *atomic.Bool
	statMovesQueued    *atomic.Int64
	statMovesActive    *atomic.Bool
	statDestroyPending *atomic.Int64
	statDestroyTotal   *atomic.Int64
	statLastAction     *status.AtomicString
}

// NewGameContext builds a grid from cfg and wires it to clocks on provider
// sound may be nil
func NewGameContext(cfg *config.Config, provider TimeProvider, sound SoundPlayer, opts ...grid.Option) (*GameContext, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g, err := grid.New(cfg.Rows, cfg.Columns, cfg.TileSize, opts...)
	if err != nil {
		return nil, fmt.Errorf("create grid: %w", err)
	}

	clock := NewPausableClock(provider)
	reg := status.NewRegistry()
	ctx := &GameContext{
		Grid:          g,
		Navigator:     input.NewNavigator(g, cfg.Speeds()),
		PausableClock: clock,
		FrameClock:    NewFrameClock(clock, cfg.FPS),
		Status:        reg,
		sound:         sound,
		fpsStart:      clock.RealTime(),

		statFrames:         reg.Ints.Get(status.KeyFrames),
		statFPS:            reg.Floats.Get(status.KeyFPS),
		statPaused:         reg.Bools.Get(status.KeyPaused),
		statMuted:          reg.Bools.Get(status.KeyMuted),
		statMovesQueued:    reg.Ints.Get(status.KeyMovesQueued),
		statMovesActive:    reg.Bools.Get(status.KeyMovesActive),
		statDestroyPending: reg.Ints.Get(status.KeyDestroyPending),
		statDestroyTotal:   reg.Ints.Get(status.KeyDestroyTotal),
		statLastAction:     reg.Strings.Get(status.KeyLastAction),
	}

	log.Printf("context: grid %dx%d tile %.1f fps %d", cfg.Rows, cfg.Columns, cfg.TileSize, cfg.FPS)
	return ctx, nil
}

// Apply handles one intent; returns false when the game should quit
// Grid intents are dropped while paused
func (ctx *GameContext) Apply(intent input.Intent) bool {
	switch intent {
	case input.IntentNone:
		return true
	case input.IntentQuit:
		log.Println("context: quit requested")
		return false
	case input.IntentPause:
		ctx.SetPaused(!ctx.IsPaused.Load())
		ctx.statLastAction.Store(intent.String())
		return true
	case input.IntentToggleMute:
		ctx.toggleMute()
		ctx.statLastAction.Store(intent.String())
		return true
	case input.IntentResize:
		return true
	}

	if ctx.IsPaused.Load() {
		return true
	}

	outcome := ctx.Navigator.Apply(intent)
	if outcome == input.OutcomeIgnored {
		return true
	}
	ctx.statLastAction.Store(intent.String())

	switch outcome {
	case input.OutcomeMoved:
		ctx.play(audio.SoundMove)
	case input.OutcomeTeleported:
		ctx.play(audio.SoundTeleport)
	case input.OutcomeDestroyed:
		ctx.play(audio.SoundDestroy)
	}
	return true
}

// SetPaused pauses or resumes game time
func (ctx *GameContext) SetPaused(paused bool) {
	if paused {
		ctx.PausableClock.Pause()
	} else {
		ctx.PausableClock.Resume()
	}
	ctx.IsPaused.Store(paused)
	ctx.statPaused.Store(paused)
}

func (ctx *GameContext) toggleMute() {
	if ctx.sound == nil {
		return
	}
	muted := ctx.sound.ToggleMute()
	ctx.IsMuted.Store(muted)
	ctx.statMuted.Store(muted)
}

func (ctx *GameContext) play(s audio.SoundType) {
	if ctx.sound != nil {
		ctx.sound.Play(s)
	}
}

// Resize records the frontend surface size
func (ctx *GameContext) Resize(width, height int) {
	ctx.Width, ctx.Height = width, height
}

// Tick advances the grid by one frame and publishes metrics
// Returns the delta time applied
func (ctx *GameContext) Tick() float64 {
	dt := ctx.FrameClock.Tick()
	if dt > 0 {
		ctx.Grid.Update(dt)
		if ctx.Grid.PendingDestroys() == 0 {
			ctx.Grid.Compact()
		}
	}

	frame := ctx.FrameNumber.Add(1)
	ctx.statFrames.Store(frame)
	ctx.updateFPS()

	_, active := ctx.Grid.CurrentMove()
	ctx.statMovesQueued.Store(int64(ctx.Grid.QueuedMoves()))
	ctx.statMovesActive.Store(active)
	ctx.statDestroyPending.Store(int64(ctx.Grid.PendingDestroys()))
	ctx.statDestroyTotal.Store(int64(ctx.Grid.DestroyedCount()))

	return dt
}

func (ctx *GameContext) updateFPS() {
	ctx.fpsFrames++
	now := ctx.PausableClock.RealTime()
	elapsed := now.Sub(ctx.fpsStart)
	if elapsed < fpsWindow {
		return
	}
	ctx.statFPS.Set(float64(ctx.fpsFrames) / elapsed.Seconds())
	ctx.fpsFrames = 0
	ctx.fpsStart = now
}
