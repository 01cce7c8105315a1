package pong

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// Field is the playing area. (0,0) is the top-left corner.
type Field struct {
	Width, Height float64
}

// RandSource supplies uniform samples in [0,1) for serve angles.
// *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Match owns all state of a running match: the field, both paddles, the
// ball and the random source used for serves. Hosts drive it with Tick
// and read it through Snapshot.
type Match struct {
	ID     string // Unique per Initialize, used to correlate logs
	Field  Field
	Player Player
	AI     AI
	Ball   Ball

	rng  RandSource
	tick uint64
}

// NewMatch creates a match from cfg and initializes it. cfg is assumed to
// be valid (see config.PongConfig.Validate). A nil rng is replaced by a
// time-seeded source.
func NewMatch(cfg config.PongConfig, rng RandSource) *Match {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m := &Match{
		Field: Field{Width: cfg.Field.Width, Height: cfg.Field.Height},
		Player: Player{
			Paddle: Paddle{Width: cfg.Paddles.Width, Height: cfg.Paddles.Height},
			Step:   cfg.Paddles.Step,
		},
		AI: AI{
			Paddle: Paddle{Width: cfg.Paddles.Width, Height: cfg.Paddles.Height},
			Skill:  cfg.AI.Skill,
		},
		Ball: Ball{Side: cfg.Ball.Side, Speed: cfg.Ball.Speed},
		rng:  rng,
	}
	m.Initialize()
	return m
}

// Initialize resets scores, centres both paddles and serves toward the AI.
// Ball speed and AI skill are kept.
func (m *Match) Initialize() {
	m.ID = uuid.NewString()
	m.tick = 0

	m.Player.Score = 0
	m.Player.X = m.Player.Width
	m.Player.Y = (m.Field.Height - m.Player.Height) / 2

	m.AI.Score = 0
	m.AI.X = m.Field.Width - (m.Player.Width + m.AI.Width)
	m.AI.Y = (m.Field.Height - m.AI.Height) / 2

	m.Serve(TowardAI)
}

// Tick advances the match by one frame: ball, then player, then AI. The
// ball therefore collides with paddle positions from the previous tick.
func (m *Match) Tick(in InputSource) StepResult {
	return m.TickDelta(in, 1)
}

// TickDelta advances the match by dt nominal frames. TickDelta(in, 1) is
// exactly Tick. Other values scale ball travel and player step linearly
// and compound the AI follow rate.
func (m *Match) TickDelta(in InputSource, dt float64) StepResult {
	if in == nil {
		in = noInput{}
	}

	m.tick++
	events := m.updateBall(dt)
	m.Player.update(in, m.Field.Height, dt)
	m.AI.update(m.Ball, dt)

	return StepResult{Tick: m.tick, Events: events}
}

// Ticks returns the number of ticks since Initialize.
func (m *Match) Ticks() uint64 {
	return m.tick
}
