package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty presets",
	Long:  `Shows the ball speed and AI skill each difficulty preset sets.`,
	Args:  cobra.NoArgs,
	Run:   runDifficulties,
}

func runDifficulties(_ *cobra.Command, _ []string) {
	presets := config.Difficulties()

	fmt.Println("Difficulty presets:")
	fmt.Println()

	maxLen := len("Preset")
	for _, d := range presets {
		maxLen = max(maxLen, len(d.Preset))
	}

	fmt.Printf("  %-*s  %-5s  %-8s  %s\n", maxLen, "Preset", "Ball", "AI skill", "Description")
	fmt.Printf("  %-*s  %-5s  %-8s  %s\n", maxLen, "------", "----", "--------", "-----------")
	for _, d := range presets {
		fmt.Printf("  %-*s  %-5g  %-8.3f  %s\n", maxLen, d.Preset, d.BallSpeed, d.AISkill, d.Description)
	}

	def := config.DefaultPongConfig()
	fmt.Println()
	fmt.Printf("Without a preset: ball %g, AI skill %g (or the values in your config).\n", def.Ball.Speed, def.AI.Skill)
	fmt.Println("Run 'pong play --difficulty <preset>' to skip the picker.")
}
