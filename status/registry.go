package status

import "sync/atomic"

// Metric keys published by the engine
const (
	KeyFrames         = "engine.frames"
	KeyFPS            = "engine.fps"
	KeyPaused         = "engine.paused"
	KeyMuted          = "audio.muted"
	KeyMovesQueued    = "grid.moves.queued"
	KeyMovesActive    = "grid.moves.active"
	KeyDestroyPending = "grid.destroy.pending"
	KeyDestroyTotal   = "grid.destroy.total"
	KeyLastAction     = "input.last"
)

// Registry is the central metrics facade
// Owners cache pointers during init and write the atomics directly each frame
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
