package sim

// CollisionEvent is one pairwise overlap reported by the host broad-phase
// for a single tick. Events are classified and discarded, never stored.
type CollisionEvent struct {
	A EntityID
	B EntityID
}

// involves reports whether the event touches id, and returns the other
// participant when it does.
func (e CollisionEvent) involves(id EntityID) (EntityID, bool) {
	switch id {
	case e.A:
		return e.B, true
	case e.B:
		return e.A, true
	default:
		return 0, false
	}
}

// classifyCollision maps an overlap pair onto a terminal game state.
// Robot touching a block loses; robot touching the finish pad wins; every
// other pair, including pairs with unknown ids, is ignored.
func classifyCollision(ev CollisionEvent, robot EntityID, lookup func(EntityID) (*Entity, bool)) (GameState, bool) {
	other, ok := ev.involves(robot)
	if !ok {
		return 0, false
	}
	e, ok := lookup(other)
	if !ok {
		return 0, false
	}
	switch {
	case e.Kind == KindBlock:
		return GameBlockHit, true
	case e.Kind == KindPad && e.Pad.Role == PadFinish:
		return GameFinished, true
	default:
		return 0, false
	}
}
