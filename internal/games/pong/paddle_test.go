package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func held(actions ...core.Action) *core.KeyState {
	k := core.NewKeyState()
	for _, a := range actions {
		k.Press(a)
	}
	return k
}

func TestPlayerUpdate(t *testing.T) {
	tests := []struct {
		name  string
		y     float64
		input *core.KeyState
		want  float64
	}{
		{"idle", 250, held(), 250},
		{"up", 250, held(core.ActionUp), 243},
		{"down", 250, held(core.ActionDown), 257},
		{"both cancel", 250, held(core.ActionUp, core.ActionDown), 250},
		// Each direction only checks the edge it moves toward
		{"up from top edge", 0, held(core.ActionUp), -7},
		{"up above top edge", -7, held(core.ActionUp), -7},
		{"down from bottom edge", 500, held(core.ActionDown), 507},
		{"down below bottom edge", 507, held(core.ActionDown), 507},
		{"other actions ignored", 250, held(core.ActionPause, core.ActionConfirm), 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Player{Paddle: Paddle{X: 20, Y: tt.y, Width: 20, Height: 100}, Step: 7}
			p.Update(tt.input, 600)
			assert.Equal(t, tt.want, p.Y)
		})
	}
}

func TestPlayerLatchedKeyMovesForLatchedTicks(t *testing.T) {
	p := Player{Paddle: Paddle{Y: 250, Width: 20, Height: 100}, Step: 7}
	keys := core.NewKeyState()
	keys.Latch(core.ActionDown, 3)

	for i := 0; i < 5; i++ {
		p.Update(keys, 600)
		keys.Advance()
	}

	assert.Equal(t, 271.0, p.Y)
}

func newTestAI(skill float64) AI {
	return AI{Paddle: Paddle{X: 660, Y: 250, Width: 20, Height: 100}, Skill: skill}
}

func TestAITarget(t *testing.T) {
	a := newTestAI(0.1)
	assert.Equal(t, 360.0, a.Target(Ball{Y: 400, Side: 20}))
	assert.Equal(t, -40.0, a.Target(Ball{Y: 0, Side: 20}))
}

func TestAIFullSkillSnaps(t *testing.T) {
	a := newTestAI(1)
	b := Ball{Y: 400, Side: 20}

	a.Update(b)
	assert.InDelta(t, 360, a.Y, eps)

	// Stationary ball: stays on target
	for i := 0; i < 10; i++ {
		a.Update(b)
	}
	assert.InDelta(t, 360, a.Y, eps)
}

func TestAITinySkillBarelyMoves(t *testing.T) {
	a := newTestAI(1e-6)
	a.Update(Ball{Y: 400, Side: 20})
	assert.InDelta(t, 250, a.Y, 1e-3)
	assert.Greater(t, a.Y, 250.0)
}

func TestAIExponentialDecay(t *testing.T) {
	a := newTestAI(0.5)
	b := Ball{Y: 400, Side: 20} // target 360, distance 110

	for i := 0; i < 3; i++ {
		a.Update(b)
	}

	assert.InDelta(t, 360-110.0/8, a.Y, eps)
}

// The AI is not kept inside the field: following a ball on the bottom wall
// pushes it past the bottom edge.
func TestAIIsNotClamped(t *testing.T) {
	a := newTestAI(1)
	a.Update(Ball{Y: 580, Side: 20})

	assert.InDelta(t, 540, a.Y, eps)
	assert.Greater(t, a.Y+a.Height, 600.0)

	a.Update(Ball{Y: 0, Side: 20})
	assert.Less(t, a.Y, 0.0)
}

func TestAIDeltaCompoundsRate(t *testing.T) {
	b := Ball{Y: 400, Side: 20}

	twice := newTestAI(0.5)
	twice.Update(b)
	twice.Update(b)

	once := newTestAI(0.5)
	once.update(b, 2)

	assert.InDelta(t, twice.Y, once.Y, eps)
}
