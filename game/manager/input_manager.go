package manager

import (
	"snake-classic/game/types"
)

// InputManager buffers the most recent accepted direction intent until the
// engine commits it on the next tick. Only one buffered turn exists at a time;
// a later accepted intent overwrites an earlier one.
type InputManager struct {
	next types.Cell
}

func NewInputManager(initial types.Cell) *InputManager {
	return &InputManager{next: initial}
}

// Submit validates candidate against the currently committed direction.
// A candidate moving along the axis the snake already moves on is dropped:
// this blocks the instant-death reversal into the neck (and the same-direction
// no-op) while still letting a perpendicular turn replace a previously
// buffered one.
func (im *InputManager) Submit(current, candidate types.Cell) {
	if current.X != 0 && candidate.X != 0 {
		return
	}
	if current.Y != 0 && candidate.Y != 0 {
		return
	}
	im.next = candidate
}

// Commit returns the buffered direction. It stays buffered, so ticks with no
// new intent keep moving the same way.
func (im *InputManager) Commit() types.Cell {
	return im.next
}

// Next exposes the buffered direction without committing it.
func (im *InputManager) Next() types.Cell {
	return im.next
}

// Reset rebuffers the given direction, used when the game restarts.
func (im *InputManager) Reset(d types.Cell) {
	im.next = d
}
