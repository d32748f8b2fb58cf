package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-whackamole/internal/config"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty presets",
	Long:  `Shows every difficulty preset and how long its moles stay up.`,
	Args:  cobra.NoArgs,
	RunE:  runDifficulties,
}

func runDifficulties(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %s\n", "Name", "Moles")
	fmt.Printf("  %-8s  %s\n", "----", "-----")

	for _, p := range config.Presets() {
		marker := " "
		if p == cfg.Difficulty {
			marker = "*"
		}
		fmt.Printf("%s %-8s  %s\n", marker, p, cfg.Delays.Describe(p))
	}

	fmt.Println()
	fmt.Println("Run 'whack play --difficulty <name>' to pick one.")
	return nil
}
