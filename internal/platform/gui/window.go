// Package gui runs Pong in a desktop window with ebiten. The court is
// drawn at field resolution and ebiten scales it to the window.
package gui

import (
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

var (
	backgroundColor = color.Black
	pieceColor      = color.White
	netColor        = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	overlayColor    = color.RGBA{A: 160}
)

// Window is the ebiten.Game for a match.
type Window struct {
	game   *pong.Game
	keys   *core.KeyState
	logger *log.Logger
	config core.RuntimeConfig
}

// New creates a window host and starts a fresh match. A nil logger
// discards output.
func New(game *pong.Game, cfg core.RuntimeConfig, logger *log.Logger) *Window {
	cfg = cfg.WithDefaults()
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	logger.Info("match started", "match", game.Match().ID, "seed", cfg.Seed)

	return &Window{
		game:   game,
		keys:   core.NewKeyState(),
		logger: logger,
		config: cfg,
	}
}

// Update polls the keyboard and advances the match one tick.
func (w *Window) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		st := w.game.State()
		w.logger.Info("match ended", "match", w.game.Match().ID, "player", st.PlayerScore, "ai", st.AIScore)
		return ebiten.Termination

	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		paused := w.game.TogglePause()
		w.logger.Debug("pause toggled", "match", w.game.Match().ID, "paused", paused)

	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		w.config.Seed = time.Now().UnixNano()
		w.game.Reset(w.config)
		w.logger.Info("match restarted", "match", w.game.Match().ID, "seed", w.config.Seed)
	}

	w.setHeld(core.ActionUp, ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW))
	w.setHeld(core.ActionDown, ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS))

	result := w.game.Step(w.keys)
	for _, ev := range result.Events {
		if ev.Kind == pong.EventPoint {
			st := w.game.State()
			w.logger.Info("point", "match", w.game.Match().ID, "tick", result.Tick, "scorer", ev.Side,
				"player", st.PlayerScore, "ai", st.AIScore)
		}
	}
	return nil
}

// Windows report releases, so held keys map straight onto Press/Release.
func (w *Window) setHeld(a core.Action, down bool) {
	if down {
		w.keys.Press(a)
	} else {
		w.keys.Release(a)
	}
}

// Draw renders the court.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()
	screen.Fill(backgroundColor)

	for _, dash := range pong.NetDashes(snap.Field) {
		fillBox(screen, dash, netColor)
	}

	for _, b := range pong.ScoreBoxes(snap.Field, pong.PlayerScoreX(snap.Field, snap.PlayerScore), snap.PlayerScore) {
		fillBox(screen, b, pieceColor)
	}
	for _, b := range pong.ScoreBoxes(snap.Field, pong.AIScoreX(snap.Field), snap.AIScore) {
		fillBox(screen, b, pieceColor)
	}

	fillBox(screen, snap.Player, pieceColor)
	fillBox(screen, snap.AI, pieceColor)
	fillBox(screen, snap.Ball, pieceColor)

	if w.game.Paused() {
		fillBox(screen, core.Box{W: snap.Field.Width, H: snap.Field.Height}, overlayColor)
		x := int(snap.Field.Width/2) - 50
		y := int(snap.Field.Height / 2)
		ebitenutil.DebugPrintAt(screen, "PAUSED", x+30, y-20)
		ebitenutil.DebugPrintAt(screen, "Press P to resume", x, y)
	}
}

func fillBox(dst *ebiten.Image, b core.Box, clr color.Color) {
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
}

// Layout fixes the logical screen to the field size.
func (w *Window) Layout(_, _ int) (int, int) {
	f := w.game.Snapshot().Field
	return int(f.Width), int(f.Height)
}

// Run opens the window and blocks until it is closed.
func Run(game *pong.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	w := New(game, cfg, logger)
	f := game.Snapshot().Field

	ebiten.SetWindowSize(int(f.Width), int(f.Height))
	ebiten.SetWindowTitle("Pong")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.config.TickRate)

	// ebiten.Termination from Update ends RunGame with a nil error
	return ebiten.RunGame(w)
}
