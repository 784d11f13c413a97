package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the playable levels",
	Long: `Show the built-in levels, or the *.lvl files in --levels.

Level files are rows of space separated tile codes:
  0    empty
  1    solid (indestructible)
  2-5  destructible brick colours

Examples:
  breakout levels
  breakout levels --levels ./levels`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of *.lvl files")
}

func runLevels(_ *cobra.Command, _ []string) error {
	maps := breakout.BuiltinLevels()
	if flagLevelsDir != "" {
		var err error
		if maps, err = breakout.LoadLevelsDir(flagLevelsDir); err != nil {
			return err
		}
	}

	world := config.DefaultBreakoutConfig().World
	fmt.Printf("  %-3s  %-20s  %7s  %6s  %5s\n", "#", "Name", "Size", "Bricks", "Solid")
	fmt.Printf("  %-3s  %-20s  %7s  %6s  %5s\n", "-", "----", "----", "------", "-----")
	for i, m := range maps {
		level := m.Build(world.Width, world.Height/2)
		solid := len(level.Bricks) - level.Remaining()
		size := fmt.Sprintf("%dx%d", m.Columns(), len(m.Tiles))
		fmt.Printf("  %-3d  %-20s  %7s  %6d  %5d\n", i+1, m.Name, size, level.Remaining(), solid)
	}
	fmt.Println()
	fmt.Println("Start on a level with 'breakout play --level <#>'.")
	return nil
}
