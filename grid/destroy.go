package grid

// EnqueueDestroy queues a fade for tileIndex
// Each index is accepted at most once for the grid's lifetime; out-of-range indices are dropped
func (g *Grid) EnqueueDestroy(tileIndex int, fadeRate, initialOpacity float64) {
	if tileIndex < 0 || tileIndex >= len(g.tiles) {
		return
	}
	if _, seen := g.destroyed[tileIndex]; seen {
		return
	}
	g.destroyed[tileIndex] = struct{}{}

	g.destroyQueue = append(g.destroyQueue, DestroyEvent{
		TileIndex: tileIndex,
		Remaining: initialOpacity,
		FadeRate:  fadeRate,
	})
}

// IsDestroyed reports whether tileIndex was ever accepted by EnqueueDestroy
func (g *Grid) IsDestroyed(tileIndex int) bool {
	_, ok := g.destroyed[tileIndex]
	return ok
}

// DestroyedCount returns the size of the dedup set
func (g *Grid) DestroyedCount() int {
	return len(g.destroyed)
}

// DestroyEvents returns a copy of the destroy queue
func (g *Grid) DestroyEvents() []DestroyEvent {
	out := make([]DestroyEvent, len(g.destroyQueue))
	copy(out, g.destroyQueue)
	return out
}

// PendingDestroys counts fades still in progress
func (g *Grid) PendingDestroys() int {
	n := 0
	for i := range g.destroyQueue {
		if !g.destroyQueue[i].Done() {
			n++
		}
	}
	return n
}

// Compact drops finished fades from the queue
// The dedup set is untouched, so a compacted tile still cannot be queued again
func (g *Grid) Compact() int {
	kept := g.destroyQueue[:0]
	for _, ev := range g.destroyQueue {
		if !ev.Done() {
			kept = append(kept, ev)
		}
	}
	removed := len(g.destroyQueue) - len(kept)
	clear(g.destroyQueue[len(kept):])
	g.destroyQueue = kept
	return removed
}

// updateDestroys advances every unfinished fade
// Opacity is written only while the new value stays positive
func (g *Grid) updateDestroys(dt float64) {
	for i := range g.destroyQueue {
		ev := &g.destroyQueue[i]
		if ev.Remaining <= 0 {
			continue
		}
		ev.Remaining -= ev.FadeRate * dt
		if ev.Remaining > 0 {
			g.tiles[ev.TileIndex].SetOpacity(ev.Remaining)
		}
	}
}
