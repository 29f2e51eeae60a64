/*
Package grid owns the selection state and per-frame animation queues of a tile grid.

A Grid holds rows*columns tiles and one selector, both reached through the Renderable
capability. Input code moves the logical selection with Select and queues animations
with EnqueueMove and EnqueueDestroy; an external scheduler calls Update once per frame
with the elapsed-time multiplier.

Frame order:

	Update(dt)
	  1. move queue   - at most one MoveEvent animates; the next is dequeued once it completes
	  2. destroy queue - every DestroyEvent fades in parallel

All methods are synchronous and expect a single owning goroutine; Grid has no locks.
*/
package grid
