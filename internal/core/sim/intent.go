package sim

import (
	"fmt"
	"sync"

	"github.com/padbot/padbot/pkg/sequence"
)

// Intent is a discrete user command awaiting the next simulation tick.
type Intent uint8

const (
	IntentResetAnchor Intent = iota
	IntentToggleMove
	IntentRotateCCW
	IntentRotateCW
)

func (i Intent) String() string {
	switch i {
	case IntentResetAnchor:
		return "reset_anchor"
	case IntentToggleMove:
		return "toggle_move"
	case IntentRotateCCW:
		return "rotate_ccw"
	case IntentRotateCW:
		return "rotate_cw"
	default:
		return "unknown"
	}
}

// ParseIntent maps the wire name of an intent back to its value.
func ParseIntent(s string) (Intent, error) {
	switch s {
	case "reset_anchor":
		return IntentResetAnchor, nil
	case "toggle_move":
		return IntentToggleMove, nil
	case "rotate_ccw":
		return IntentRotateCCW, nil
	case "rotate_cw":
		return IntentRotateCW, nil
	default:
		return 0, fmt.Errorf("sim: unknown intent %q", s)
	}
}

// IntentQueue buffers intents between the input context and the simulation
// tick. Push accepts concurrent producers; DrainAll is called once per tick
// by the single consumer. The queue is bounded: when full, the oldest intent
// is dropped so stale input never starves fresh input.
type IntentQueue struct {
	mu      sync.Mutex
	ring    *sequence.Ring[Intent]
	dropped uint64
}

// NewIntentQueue creates a queue holding up to capacity intents.
func NewIntentQueue(capacity int) *IntentQueue {
	return &IntentQueue{ring: sequence.NewRing[Intent](capacity)}
}

// Push enqueues an intent. It never blocks and never fails.
func (q *IntentQueue) Push(in Intent) {
	q.mu.Lock()
	if _, evicted := q.ring.Push(in); evicted {
		q.dropped++
	}
	q.mu.Unlock()
}

// DrainAll removes and returns all queued intents in arrival order.
func (q *IntentQueue) DrainAll() []Intent {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.Drain()
}

// Len returns the number of queued intents.
func (q *IntentQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.Len()
}

// Dropped returns how many intents were evicted because the queue was full.
func (q *IntentQueue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
