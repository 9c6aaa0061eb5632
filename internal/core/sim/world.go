package sim

import (
	"fmt"

	"github.com/padbot/padbot/internal/core/events/bus"
	"github.com/padbot/padbot/internal/core/observability/log"
)

// Event types published by the world at the end of a tick in which the
// corresponding state changed.
const (
	EventGameState   = "sim.state.game"
	EventMotionState = "sim.state.motion"
	EventPoses       = "sim.poses"
)

const eventSource = "sim.world"

// Status is a read-only snapshot of everything the UI layer shows.
type Status struct {
	Game    GameState
	Motion  MotionState
	Walking bool
	Poses   map[string]Pose
}

// World is the authoritative simulation: it owns the transform store, the
// game and motion states, and consumes the intent queue once per tick.
// Tick and ResolveCollision must be called from a single goroutine; only
// Queue().Push may be called concurrently.
type World struct {
	cfg   Config
	log   log.Log
	bus   bus.EventBus
	store *TransformStore
	queue *IntentQueue

	entities map[EntityID]*Entity
	order    []EntityID
	robotID  EntityID

	motion MotionState
	game   GameState
}

// NewWorld builds the scene described by cfg. The sink may be nil for
// headless runs; the bus may be nil to disable state publication.
func NewWorld(cfg Config, sink TransformSink, eventBus bus.EventBus, logger log.Log) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		cfg:      cfg,
		log:      logger,
		bus:      eventBus,
		store:    NewTransformStore(sink),
		queue:    NewIntentQueue(cfg.IntentQueueCapacity),
		entities: make(map[EntityID]*Entity, len(cfg.Entities)),
	}
	for _, ec := range cfg.Entities {
		e := ec.entity()
		if _, dup := w.entities[e.ID]; dup {
			return nil, fmt.Errorf("sim: entity id collision for %q", e.Name)
		}
		w.entities[e.ID] = &e
		w.order = append(w.order, e.ID)
		if e.Kind == KindRobot {
			w.robotID = e.ID
		}
		w.store.Set(e.ID, e.DefaultPose)
	}
	return w, nil
}

// Queue returns the intent queue; the input context pushes into it.
func (w *World) Queue() *IntentQueue { return w.queue }

// Robot returns the robot's entity id.
func (w *World) Robot() EntityID { return w.robotID }

// GameState returns the current game state.
func (w *World) GameState() GameState { return w.game }

// MotionState returns the robot's current motion state.
func (w *World) MotionState() MotionState { return w.motion }

// Entity returns the entity record for id.
func (w *World) Entity(id EntityID) (*Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// Pose returns the current pose for id.
func (w *World) Pose(id EntityID) (Pose, bool) {
	return w.store.Get(id)
}

// Snapshot returns the current status with poses keyed by entity name.
func (w *World) Snapshot() Status {
	poses := make(map[string]Pose, len(w.order))
	for _, id := range w.order {
		if p, ok := w.store.Get(id); ok {
			poses[w.entities[id].Name] = p
		}
	}
	return Status{
		Game:    w.game,
		Motion:  w.motion,
		Walking: w.motion == MotionWalking,
		Poses:   poses,
	}
}

// Tick runs one simulation step: drain queued intents in arrival order,
// apply them, then advance the robot if it is walking and the game is not
// over. Rotation intents take effect before translation inside the same
// tick, so movement always follows the freshest heading.
func (w *World) Tick(dt float64) {
	var notices []Notice
	for _, in := range w.queue.DrainAll() {
		notices = append(notices, w.apply(in)...)
	}

	if w.motion == MotionWalking && !w.game.Terminal() && dt > 0 {
		pose, _ := w.store.Get(w.robotID)
		w.store.Set(w.robotID, pose.Advanced(w.cfg.SpeedMetersPerSecond*dt))
		notices = append(notices, NoticePoses)
	}

	w.publish(notices)
}

// ResolveCollision classifies one overlap pair from the host broad-phase.
// It returns true when the event produced a game-state transition. Events
// arriving while the game is already over are ignored.
func (w *World) ResolveCollision(ev CollisionEvent) bool {
	if w.game.Terminal() {
		return false
	}
	next, ok := classifyCollision(ev, w.robotID, w.Entity)
	if !ok {
		return false
	}
	w.game = next
	if w.log != nil {
		w.log.Info("collision resolved",
			log.String("state", next.String()),
			log.Uint64("a", uint64(ev.A)),
			log.Uint64("b", uint64(ev.B)),
		)
	}
	w.publish([]Notice{NoticeGameState})
	return true
}

// apply executes one intent and returns the notices it produced.
func (w *World) apply(in Intent) []Notice {
	switch in {
	case IntentResetAnchor:
		var notices []Notice
		w.motion, w.game, notices = resetStates()
		for _, id := range w.order {
			w.store.Set(id, w.entities[id].DefaultPose)
		}
		if w.log != nil {
			w.log.Info("anchor reset")
		}
		return notices
	case IntentToggleMove:
		var notices []Notice
		w.motion, w.game, notices = toggleMove(w.motion, w.game)
		return notices
	case IntentRotateCCW, IntentRotateCW:
		if w.game.Terminal() {
			return nil
		}
		step := w.cfg.RotationStepRadians()
		if in == IntentRotateCW {
			step = -step
		}
		pose, _ := w.store.Get(w.robotID)
		w.store.Set(w.robotID, pose.Rotated(step))
		return []Notice{NoticePoses}
	default:
		if w.log != nil {
			w.log.Warn("unknown intent dropped", log.String("intent", in.String()))
		}
		return nil
	}
}

// publish turns accumulated notices into bus events, once per notice kind.
func (w *World) publish(notices []Notice) {
	if w.bus == nil || len(notices) == 0 {
		return
	}
	seen := [3]bool{}
	for _, n := range notices {
		if int(n) >= len(seen) || seen[n] {
			continue
		}
		seen[n] = true
		var ev bus.Event
		switch n {
		case NoticeGameState:
			ev = bus.NewEvent(EventGameState, eventSource, w.game)
		case NoticeMotionState:
			ev = bus.NewEvent(EventMotionState, eventSource, w.motion)
		case NoticePoses:
			ev = bus.NewEvent(EventPoses, eventSource, w.Snapshot().Poses)
		}
		if err := w.bus.Publish(ev); err != nil && w.log != nil {
			w.log.Error("publish state event", log.String("type", ev.Type()), log.Error(err))
		}
	}
}
