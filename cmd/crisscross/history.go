package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crisscross/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently recorded casts",
	Long: `Display the most recent casts stored by 'crisscross record' and the viewer.

Examples:
  crisscross history
  crisscross history --limit 5`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of casts to show")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	casts, err := store.ListCasts(flagHistoryLimit)
	if err != nil {
		return err
	}

	if len(casts) == 0 {
		fmt.Println("No casts recorded yet.")
		fmt.Println()
		fmt.Println("Run 'crisscross record <scenario>' to store one.")
		return nil
	}

	fmt.Printf("  %-5s  %-16s  %-8s  %-7s  %-5s  %s\n", "ID", "Scenario", "Kind", "Angle", "Tiles", "Date")
	fmt.Printf("  %-5s  %-16s  %-8s  %-7s  %-5s  %s\n", "--", "--------", "----", "-----", "-----", "----")
	for _, c := range casts {
		fmt.Printf("  %-5d  %-16s  %-8s  %-7.1f  %-5d  %s\n",
			c.ID, c.ScenarioID, c.Kind, c.AngleDeg, c.TileCount, c.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
