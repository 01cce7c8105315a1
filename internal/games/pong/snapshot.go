package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Court layout for renderers.
const (
	NetWidth     = 15 // Field units
	NetDashCount = 20
)

// Score positions are laid out on a 700x600 court and scale with the field.
const (
	layoutWidth  = 700
	layoutHeight = 600
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Tick         uint64
	Field        Field
	Player       core.Box
	AI           core.Box
	Ball         core.Box
	BallVelocity Vec
	PlayerScore  int
	AIScore      int
}

// Snapshot returns the current match state.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Tick:         m.tick,
		Field:        m.Field,
		Player:       m.Player.Bounds(),
		AI:           m.AI.Bounds(),
		Ball:         m.Ball.Bounds(),
		BallVelocity: m.Ball.Velocity,
		PlayerScore:  m.Player.Score,
		AIScore:      m.AI.Score,
	}
}

// NetDashes returns the dashes of the centre net.
func NetDashes(f Field) []core.Box {
	step := f.Height / NetDashCount
	x := (f.Width - NetWidth) / 2

	dashes := make([]core.Box, 0, NetDashCount)
	for i := 0; i < NetDashCount; i++ {
		y := float64(i) * step
		dashes = append(dashes, core.Box{X: x, Y: y + step/4, W: NetWidth, H: step / 2})
	}
	return dashes
}

// PlayerScoreX returns where the player's score starts. Two-digit scores
// shift left so they stay clear of the net.
func PlayerScoreX(f Field, score int) float64 {
	if score > 9 {
		return f.Width * 150 / layoutWidth
	}
	return f.Width * 235 / layoutWidth
}

// AIScoreX returns where the AI's score starts.
func AIScoreX(f Field) float64 {
	return f.Width * 380 / layoutWidth
}

// ScoreBaseline returns the baseline of the score digits.
func ScoreBaseline(f Field) float64 {
	return f.Height * 120 / layoutHeight
}
