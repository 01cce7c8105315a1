package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// InputSource reports which actions the host currently holds.
// core.KeyState and Autopilot implement it.
type InputSource interface {
	IsHeld(a core.Action) bool
}

// noInput holds nothing; used when a host passes a nil source.
type noInput struct{}

func (noInput) IsHeld(core.Action) bool { return false }

// Side identifies one of the two paddles.
type Side int

const (
	SidePlayer Side = iota // Left paddle, human controlled
	SideAI                 // Right paddle, computer controlled
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	default:
		return "unknown"
	}
}

// Paddle is the state shared by both sides. X is fixed for the whole
// match; Score only grows, and only when the opponent misses.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Score         int
}

// Bounds returns the paddle's rectangle in field coordinates.
func (p Paddle) Bounds() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Player is the human-controlled left paddle.
type Player struct {
	Paddle
	Step float64 // Distance moved per tick while a direction is held
}

// Update moves the paddle one step for each held direction.
//
// The two checks run one after the other with no mutual exclusion, and
// each only looks at the edge it moves toward. A paddle sitting at y=0
// can therefore still step up once, ending slightly above the field.
func (p *Player) Update(in InputSource, fieldHeight float64) {
	p.update(in, fieldHeight, 1)
}

func (p *Player) update(in InputSource, fieldHeight, dt float64) {
	step := p.Step * dt
	if in.IsHeld(core.ActionUp) && p.Y >= 0 {
		p.Y -= step
	}
	if in.IsHeld(core.ActionDown) && p.Y+p.Height <= fieldHeight {
		p.Y += step
	}
}

// AI is the computer-controlled right paddle.
type AI struct {
	Paddle
	Skill float64 // Fraction of the remaining distance closed per tick, in (0, 1]
}

// Target returns the y that centres the paddle on the ball.
func (a *AI) Target(b Ball) float64 {
	return b.Y - (a.Height-b.Side)/2
}

// Update moves the paddle a Skill fraction of the way toward Target.
// The position is not clamped to the field.
func (a *AI) Update(b Ball) {
	a.update(b, 1)
}

func (a *AI) update(b Ball, dt float64) {
	rate := a.Skill
	if dt != 1 {
		// Same decay as applying Skill once per nominal frame.
		rate = 1 - math.Pow(1-a.Skill, dt)
	}
	a.Y += (a.Target(b) - a.Y) * rate
}
