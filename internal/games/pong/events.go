package pong

// EventKind classifies what happened to the ball during a tick.
type EventKind int

const (
	EventWallBounce EventKind = iota + 1
	EventPaddleHit
	EventPoint
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleHit:
		return "paddle_hit"
	case EventPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Event is emitted by a tick.
//
// For EventPaddleHit, Side is the paddle that returned the ball and Angle
// and Spike describe the return. For EventPoint, Side is the scorer.
type Event struct {
	Kind  EventKind
	Side  Side
	Angle float64
	Spike bool
}

// StepResult is returned by Match.Tick.
type StepResult struct {
	Tick   uint64
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Tally counts events over many ticks.
type Tally struct {
	Ticks       uint64
	WallBounces int
	Hits        [2]int // Paddle returns, indexed by Side
	Spikes      [2]int
	Points      [2]int // Points scored, indexed by Side
}

// Add counts the events of one tick.
func (t *Tally) Add(r StepResult) {
	t.Ticks = r.Tick
	for _, e := range r.Events {
		switch e.Kind {
		case EventWallBounce:
			t.WallBounces++
		case EventPaddleHit:
			t.Hits[e.Side]++
			if e.Spike {
				t.Spikes[e.Side]++
			}
		case EventPoint:
			t.Points[e.Side]++
		}
	}
}
