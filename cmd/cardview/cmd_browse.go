package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cardview/cmd/cardview/ui"
	"cardview/internal/card"
	"cardview/internal/pipeline"
	"cardview/internal/watch"
)

// browseCmd opens the interactive card browser.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the dataset interactively",
	Long: `Opens a full-screen card browser. The dataset file is watched;
saving it from another program reloads the view in place.

Keys: / search, s cycle sort, f cycle filter, n/p pages, space select,
enter detail, r reset, q quit.`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, records, err := loadView()
	if err != nil {
		return err
	}

	defs := cfg.FilterDefinitions()
	state := pipeline.NewViewState(cfg.Search.Fields, cfg.PageSize)
	state.Search = cfg.SearchConfig()
	state.Sort = cfg.DefaultSort
	pipe := pipeline.New(defs, records, pipeline.WithLogger(logger), pipeline.WithState(state))

	program := tea.NewProgram(ui.New(cfg, pipe), tea.WithAltScreen())

	watcher, err := watch.New(dataPath, cfg.IDField, logger, func(records []card.Record) {
		program.Send(ui.RecordsReloadedMsg(records))
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	_, err = program.Run()
	return err
}
