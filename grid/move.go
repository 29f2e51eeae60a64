package grid

// EnqueueMove appends a selector move to the FIFO queue
// No validation: distance and speed are the caller's responsibility
func (g *Grid) EnqueueMove(dir Direction, distance, speed float64) {
	g.moveQueue = append(g.moveQueue, MoveEvent{
		Direction: dir,
		Remaining: distance,
		Speed:     speed,
	})
}

// CurrentMove returns a copy of the active move
func (g *Grid) CurrentMove() (MoveEvent, bool) {
	if g.currentMove == nil {
		return MoveEvent{}, false
	}
	return *g.currentMove, true
}

// QueuedMoves returns the number of moves waiting behind the active one
func (g *Grid) QueuedMoves() int {
	return len(g.moveQueue)
}

// Animating reports whether a move is in flight
func (g *Grid) Animating() bool {
	return g.currentMove != nil
}

// dequeueMove pops the queue head into currentMove
func (g *Grid) dequeueMove() {
	if g.currentMove != nil || len(g.moveQueue) == 0 {
		return
	}
	next := g.moveQueue[0]
	g.moveQueue[0] = MoveEvent{}
	g.moveQueue = g.moveQueue[1:]
	if len(g.moveQueue) == 0 {
		g.moveQueue = nil
	}
	g.currentMove = &next
}

// degenerate reports a move along an axis of extent 1
func (g *Grid) degenerate(dir Direction) bool {
	switch dir {
	case Up, Down:
		return g.rows == 1
	case Left, Right:
		return g.columns == 1
	}
	return false
}

// updateMoves advances the single active move
func (g *Grid) updateMoves(dt float64) {
	g.dequeueMove()
	mv := g.currentMove
	if mv == nil {
		return
	}

	// Extent-1 axis: no progress, no completion
	if g.degenerate(mv.Direction) {
		return
	}

	axis, sign, ok := mv.Direction.Vector()
	if !ok {
		g.currentMove = nil
		return
	}

	step := mv.Speed * dt
	mv.Remaining -= step

	pos := g.selector.Position().Offset(axis, step*sign)
	if mv.Remaining <= 0 {
		// Remove overshoot past the target
		pos = pos.Offset(axis, mv.Remaining*sign)
		g.currentMove = nil
	}
	g.selector.SetPosition(pos)
}
