package pong

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  70,
		ScreenH:  30,
		TickRate: 60,
		Seed:     12345,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and same inputs must produce the same match
	run := func() Snapshot {
		g := New(config.DefaultPongConfig())
		g.Reset(testRuntime())
		keys := core.NewKeyState()
		for i := 0; i < 600; i++ {
			keys.Clear()
			if i%40 < 15 {
				keys.Press(core.ActionUp)
			} else if i%40 > 25 {
				keys.Press(core.ActionDown)
			}
			g.Step(keys)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1 != snap2 {
		t.Errorf("Determinism failed: snapshots differ.\nRun1=%+v\nRun2=%+v", snap1, snap2)
	}
	if snap1.Tick != 600 {
		t.Errorf("Expected 600 ticks, got %d", snap1.Tick)
	}
}

func TestGameIdentity(t *testing.T) {
	g := New(config.DefaultPongConfig())
	if g.ID() != "pong" {
		t.Errorf("Expected ID 'pong', got %q", g.ID())
	}
	if g.Title() != "Pong" {
		t.Errorf("Expected title 'Pong', got %q", g.Title())
	}
}

func TestGameStepBeforeReset(t *testing.T) {
	g := New(config.DefaultPongConfig())

	res := g.Step(nil)
	if res.Tick != 0 || len(res.Events) != 0 {
		t.Errorf("Expected empty result before Reset, got %+v", res)
	}
	if g.Match() != nil {
		t.Error("Expected no match before Reset")
	}

	screen := core.NewScreen(10, 5)
	screen.Put(0, 0, 'x', core.ColorDefault)
	g.Render(screen)
	if screen.Get(0, 0) != ' ' {
		t.Error("Render before Reset should clear the screen")
	}
}

func TestGameReset(t *testing.T) {
	g := New(config.DefaultPongConfig())
	g.Reset(testRuntime())

	for i := 0; i < 300; i++ {
		g.Step(nil)
	}
	g.TogglePause()
	g.Reset(testRuntime())

	state := g.State()
	if state.Tick != 0 {
		t.Errorf("Expected tick 0 after Reset, got %d", state.Tick)
	}
	if state.PlayerScore != 0 || state.AIScore != 0 {
		t.Errorf("Expected scores reset, got %d-%d", state.PlayerScore, state.AIScore)
	}
	if state.Paused {
		t.Error("Reset should unpause")
	}
}

func TestGamePause(t *testing.T) {
	g := New(config.DefaultPongConfig())
	g.Reset(testRuntime())
	g.Step(nil)

	if !g.TogglePause() {
		t.Fatal("TogglePause should report paused")
	}
	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		res := g.Step(nil)
		if len(res.Events) != 0 {
			t.Errorf("No events expected while paused, got %v", res.Events)
		}
		if res.Tick != before.Tick {
			t.Errorf("Tick should not advance while paused: %d != %d", res.Tick, before.Tick)
		}
	}
	if after := g.Snapshot(); after != before {
		t.Errorf("Match changed while paused:\nbefore=%+v\nafter=%+v", before, after)
	}

	if g.TogglePause() {
		t.Fatal("TogglePause should report resumed")
	}
	g.Step(nil)
	if g.State().Tick != before.Tick+1 {
		t.Errorf("Expected tick %d after resume, got %d", before.Tick+1, g.State().Tick)
	}
}

func TestGameRenderPaused(t *testing.T) {
	g := New(config.DefaultPongConfig())
	g.Reset(testRuntime())
	g.TogglePause()

	screen := core.NewScreen(70, 30)
	g.Render(screen)

	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("Paused game should render the PAUSED box")
	}
}
