package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var flagDeleteSave string

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List or delete saved sessions",
	Long: `List sessions saved with Ctrl+S during play, newest first.

Examples:
  breakout saves
  breakout saves --delete 1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed
  breakout play --resume 1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed`,
	Args: cobra.NoArgs,
	RunE: runSaves,
}

func init() {
	savesCmd.Flags().StringVar(&flagDeleteSave, "delete", "", "Delete the save with this ID")
}

func runSaves(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagDeleteSave != "" {
		if err := store.DeleteSave(flagDeleteSave); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", flagDeleteSave)
		return nil
	}

	saves, err := store.ListSaves(gameID, 50)
	if err != nil {
		return fmt.Errorf("listing saves: %w", err)
	}
	if len(saves) == 0 {
		fmt.Println("No saved sessions. Press Ctrl+S while playing to save one.")
		return nil
	}

	fmt.Printf("  %-36s  %10s  %-20s  %s\n", "ID", "Score", "Level", "Saved")
	for _, s := range saves {
		fmt.Printf("  %-36s  %10s  %-20s  %s\n", s.ID, tui.FormatScore(s.Score), s.Level, humanize.Time(s.CreatedAt))
	}
	fmt.Println()
	fmt.Println("Resume with 'breakout play --resume <id>'.")
	return nil
}
