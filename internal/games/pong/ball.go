package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Ball physics constants.
const (
	ServeSpread    = math.Pi / 10 // Max serve angle off horizontal
	MaxDeflection  = math.Pi / 4  // Angle for hits at the very edge of a paddle
	SpikeThreshold = math.Pi / 5  // Deflections steeper than this are spiked
	SpikeFactor    = 1.5          // Speed multiplier for a spiked return
)

// Direction is the horizontal direction of a serve.
type Direction int

const (
	TowardAI     Direction = 1  // Served from the player's paddle, moving right
	TowardPlayer Direction = -1 // Served from the AI's paddle, moving left
)

// Vec is a 2D vector in field units per tick.
type Vec struct {
	X, Y float64
}

// Len returns the vector's magnitude.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Ball is a square of size Side. Speed is the nominal magnitude used at
// serve and on every paddle hit; a spike scales only the velocity of that
// one return and never changes Speed.
type Ball struct {
	X, Y     float64
	Side     float64
	Speed    float64
	Velocity Vec
}

// Bounds returns the ball's square in field coordinates.
func (b Ball) Bounds() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.Side, H: b.Side}
}

// ServeAngle maps a uniform sample u in [0,1) to an angle in
// (-ServeSpread, ServeSpread].
func ServeAngle(u float64) float64 {
	return math.Pi * (1 - 2*u) / 10
}

// TouchLocation is where the ball struck the paddle: about 0 at the
// paddle's top edge and about 1 at its bottom edge.
func TouchLocation(b Ball, p Paddle) float64 {
	return (b.Y + b.Side - p.Y) / (p.Height + b.Side)
}

// DeflectionAngle maps a touch location to an outgoing angle. Centre hits
// return flat, edge hits return at up to ±MaxDeflection.
func DeflectionAngle(touch float64) float64 {
	return math.Pi * (2*touch - 1) / 4
}

// SpikeMultiplier returns SpikeFactor for steep edge hits, otherwise 1.
func SpikeMultiplier(angle float64) float64 {
	if math.Abs(angle) > SpikeThreshold {
		return SpikeFactor
	}
	return 1
}

// bounceWalls reflects the ball off the top or bottom wall. The distance
// the ball sits past the wall it crossed is mirrored back inside the
// field, whichever way it is moving.
func (b *Ball) bounceWalls(fieldHeight float64) bool {
	if b.Y >= 0 && b.Y+b.Side <= fieldHeight {
		return false
	}

	var offset float64
	if b.Y < 0 {
		offset = -b.Y
	} else {
		offset = fieldHeight - (b.Y + b.Side)
	}
	b.Y += 2 * offset
	b.Velocity.Y = -b.Velocity.Y
	return true
}

// Serve puts the ball flush against a paddle and launches it at a random
// angle within ServeSpread.
func (m *Match) Serve(dir Direction) {
	b := &m.Ball
	if dir == TowardAI {
		b.X = m.Player.X
		b.Y = m.Player.Y
	} else {
		b.X = m.AI.X - b.Side
		b.Y = m.AI.Y
	}

	angle := ServeAngle(m.rng.Float64())
	b.Velocity = Vec{
		X: float64(dir) * b.Speed * math.Cos(angle),
		Y: b.Speed * math.Sin(angle),
	}
}

// updateBall runs one ball step: integrate, bounce off walls, bounce off
// the paddle the ball is moving toward, then score and re-serve if the
// ball left the field.
func (m *Match) updateBall(dt float64) []Event {
	var events []Event
	b := &m.Ball

	b.X += b.Velocity.X * dt
	b.Y += b.Velocity.Y * dt

	if b.bounceWalls(m.Field.Height) {
		events = append(events, Event{Kind: EventWallBounce})
	}

	// Only the paddle the ball travels toward can be hit.
	side := SideAI
	paddle := &m.AI.Paddle
	if b.Velocity.X < 0 {
		side = SidePlayer
		paddle = &m.Player.Paddle
	}

	if paddle.Bounds().Overlaps(b.Bounds()) {
		dir := -1.0
		if side == SidePlayer {
			b.X = paddle.X + paddle.Width
			dir = 1
		} else {
			b.X = paddle.X - b.Side
		}

		angle := DeflectionAngle(TouchLocation(*b, *paddle))
		spike := SpikeMultiplier(angle)
		b.Velocity = Vec{
			X: spike * dir * b.Speed * math.Cos(angle),
			Y: spike * b.Speed * math.Sin(angle),
		}
		events = append(events, Event{Kind: EventPaddleHit, Side: side, Angle: angle, Spike: spike > 1})
	}

	if b.X+b.Side < 0 || b.X > m.Field.Width {
		// The side the ball was heading toward missed it.
		if side == SidePlayer {
			m.AI.Score++
			events = append(events, Event{Kind: EventPoint, Side: SideAI})
			m.Serve(TowardAI)
		} else {
			m.Player.Score++
			events = append(events, Event{Kind: EventPoint, Side: SidePlayer})
			m.Serve(TowardPlayer)
		}
	}

	return events
}
