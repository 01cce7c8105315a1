package pong

import (
	"strconv"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Render projects a snapshot onto the screen, stretching the field to
// fill it.
func Render(dst *core.Screen, snap Snapshot, paused bool) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || snap.Field.Width <= 0 || snap.Field.Height <= 0 {
		return
	}

	sx := float64(dst.Width()) / snap.Field.Width
	sy := float64(dst.Height()) / snap.Field.Height

	for _, dash := range NetDashes(snap.Field) {
		r := dash.Scale(sx, sy)
		// A one-cell-wide net reads better than a smeared block
		r.X += (r.W - 1) / 2
		r.W = 1
		dst.DrawRect(r, NetChar, core.ColorGray)
	}

	// Scores go under the pieces so the ball stays visible
	row := min(max(int(ScoreBaseline(snap.Field)*sy)-1, 0), dst.Height()-1)
	dst.DrawTextColored(int(PlayerScoreX(snap.Field, snap.PlayerScore)*sx), row,
		strconv.Itoa(snap.PlayerScore), core.ColorBrightCyan)
	dst.DrawTextColored(int(AIScoreX(snap.Field)*sx), row,
		strconv.Itoa(snap.AIScore), core.ColorBrightCyan)

	dst.DrawRect(snap.Player.Scale(sx, sy), PaddleChar, core.ColorWhite)
	dst.DrawRect(snap.AI.Scale(sx, sy), PaddleChar, core.ColorWhite)
	dst.DrawRect(snap.Ball.Scale(sx, sy), BallChar, core.ColorBrightYellow)

	if paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
