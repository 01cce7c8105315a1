package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a window at field resolution and start a match.

Controls:
  Up/W       - Move paddle up
  Down/S     - Move paddle down
  P          - Pause
  R          - Start a new match
  Esc/Q      - Quit

Without --difficulty the configured ball speed and AI skill are used.

Examples:
  pong window
  pong window --difficulty medium --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fatal(err)
	}
	defer closeLog()

	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		fatal(err)
	}

	if err := gui.Run(pong.New(cfg), runtimeConfig(0, 0), logger); err != nil {
		fatal(err)
	}
}
