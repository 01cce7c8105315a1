// Package pong implements a Pong match against a computer opponent.
// The player controls the left paddle, the AI controls the right paddle.
//
// Match holds the simulation. Game wraps a Match for interactive hosts,
// adding pause and rendering onto a core.Screen.
package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// GameState summarizes the game for the platform layer.
type GameState struct {
	PlayerScore int
	AIScore     int
	Paused      bool
	Tick        uint64
}

// Game adapts a Match to the platform hosts.
type Game struct {
	cfg     config.PongConfig
	runtime core.RuntimeConfig
	match   *Match
	paused  bool
}

// New creates a new Pong game instance. Call Reset before stepping.
func New(cfg config.PongConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset starts a fresh match seeded from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.match = NewMatch(g.cfg, rand.New(rand.NewSource(runtime.Seed)))
	g.paused = false
}

// Step advances the game by one tick. Nothing moves while paused.
func (g *Game) Step(in InputSource) StepResult {
	if g.match == nil {
		return StepResult{}
	}
	if g.paused {
		return StepResult{Tick: g.match.Ticks()}
	}
	return g.match.Tick(in)
}

// TogglePause flips the pause state and returns the new state.
func (g *Game) TogglePause() bool {
	g.paused = !g.paused
	return g.paused
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Match returns the running match, or nil before Reset.
func (g *Game) Match() *Match {
	return g.match
}

// State returns the current game state.
func (g *Game) State() GameState {
	if g.match == nil {
		return GameState{Paused: g.paused}
	}
	return GameState{
		PlayerScore: g.match.Player.Score,
		AIScore:     g.match.AI.Score,
		Paused:      g.paused,
		Tick:        g.match.Ticks(),
	}
}

// Snapshot returns the match snapshot, or a zero Snapshot before Reset.
func (g *Game) Snapshot() Snapshot {
	if g.match == nil {
		return Snapshot{}
	}
	return g.match.Snapshot()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.match == nil {
		dst.Clear()
		return
	}
	Render(dst, g.match.Snapshot(), g.paused)
}
