package grid

// Update advances one frame: the move queue first, then every fade
// dt is the elapsed-time multiplier supplied by the scheduler
func (g *Grid) Update(dt float64) {
	g.updateMoves(dt)
	g.updateDestroys(dt)
}
