package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crisscross/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in scenarios",
	Long:  `Shows a list of all scenarios registered in crisscross.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	scenarios := registry.List()

	if len(scenarios) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Println("Available scenarios:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, s := range scenarios {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Kind", "Title")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "----", "-----")

	for _, s := range scenarios {
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, s.ID, s.Kind, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'crisscross cast <id> --plot' to trace a scenario.")
}
