package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a match in the terminal.

Controls:
  Up/W       - Move paddle up
  Down/S     - Move paddle down
  P          - Pause
  R          - Start a new match
  Ctrl+S     - Save a screenshot to ~/.arcade/screenshots
  ?          - Show all keys
  Q/Ctrl+C   - Quit

Without --difficulty a difficulty picker is shown first.

Examples:
  pong play
  pong play --difficulty easy
  pong play --fps 30 --log-file pong.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// The terminal belongs to Bubble Tea, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fatal(err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	preset := flagDifficulty
	if preset == "" {
		chosen, ok, selErr := tui.RunDifficultySelector(width)
		if selErr != nil {
			fatal(selErr)
		}
		if !ok {
			return
		}
		preset = string(chosen)
	}

	cfg, err := loadConfig(preset)
	if err != nil {
		fatal(err)
	}
	logger.Debug("config loaded", "difficulty", preset, "speed", cfg.Ball.Speed, "skill", cfg.AI.Skill)

	if err := tui.Run(pong.New(cfg), runtimeConfig(width, height), logger); err != nil {
		fatal(err)
	}
}
