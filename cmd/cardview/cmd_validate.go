package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cardview/internal/config"
)

// validateCmd checks a view configuration without opening anything.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a view configuration file",
	Long: `Loads the view configuration, applies defaults, and reports the
first problem found: unknown field references, duplicate filter ids,
unknown filter kinds, bad sort directions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		filters := cfg.FilterDefinitions()
		fmt.Printf("%s: ok\n", configPath)
		fmt.Printf("  layout:  %s\n", cfg.Layout)
		fmt.Printf("  fields:  %d\n", len(cfg.Fields))
		fmt.Printf("  filters: %d\n", len(filters))
		fmt.Printf("  search:  %v\n", cfg.Search.Fields)
		return nil
	},
}
