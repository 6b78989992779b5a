package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cardview/internal/card"
	"cardview/internal/config"
	"cardview/internal/dataset"
	"cardview/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string
	dataPath   string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cardview",
	Short: "cardview - configurable card view over record files",
	Long: `cardview renders a collection of records as cards, driven by a
declarative view configuration: fields, filters, sorting, search, and
pagination.

The processing pipeline (filter -> search -> sort -> paginate) runs
entirely in memory; records come from a JSON or CSV file.

Run without arguments to open the interactive browser.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "view.yaml", "view configuration file")
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "dataset file (.json or .csv)")

	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(browseCmd)
}

// loadView loads the configuration and the dataset named by the global
// flags.
func loadView() (*config.ViewConfig, []card.Record, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if dataPath == "" {
		return nil, nil, fmt.Errorf("no dataset: pass --data")
	}
	records, err := dataset.LoadFile(dataPath, cfg.IDField)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("view loaded",
		zap.String("config", configPath),
		zap.String("data", dataPath),
		zap.Int("records", len(records)),
	)
	return cfg, records, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
