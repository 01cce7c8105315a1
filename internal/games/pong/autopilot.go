package pong

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Autopilot steers the player paddle toward the ball. It stands in for a
// human in headless runs.
//
// Each time the ball turns toward the player the autopilot picks a fresh
// aim offset in [-Reach, Reach] from the ball centre. Small offsets return
// the ball flat, offsets near the paddle edge spike it, and offsets past
// the edge miss.
type Autopilot struct {
	match    *Match
	rng      RandSource
	DeadZone float64 // Target/paddle centre gap tolerated before moving
	Reach    float64 // Largest aim offset; 0 always aims dead centre

	aim         float64
	approaching bool
}

// NewAutopilot creates an autopilot for the match's player paddle. A nil
// rng is replaced by a time-seeded source.
func NewAutopilot(m *Match, rng RandSource) *Autopilot {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Autopilot{
		match:    m,
		rng:      rng,
		DeadZone: m.Player.Step,
		Reach:    0.75 * (m.Player.Height + m.Ball.Side),
	}
}

// IsHeld implements InputSource.
func (a *Autopilot) IsHeld(act core.Action) bool {
	a.track()

	target := a.match.Ball.Y + a.match.Ball.Side/2 + a.aim
	paddle := a.match.Player.Y + a.match.Player.Height/2

	switch act {
	case core.ActionUp:
		return target < paddle-a.DeadZone
	case core.ActionDown:
		return target > paddle+a.DeadZone
	default:
		return false
	}
}

// track rolls a new aim when the ball starts moving toward the player.
// Repeated calls within a tick see the same ball and keep the aim.
func (a *Autopilot) track() {
	approaching := a.match.Ball.Velocity.X < 0
	if approaching && !a.approaching {
		a.aim = (2*a.rng.Float64() - 1) * a.Reach
	}
	a.approaching = approaching
}
