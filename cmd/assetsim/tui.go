package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lifeplan/assetsim/internal/config"
	"github.com/lifeplan/assetsim/internal/tui"
)

func newTUICmd(root *rootOptions) *cobra.Command {
	var (
		startYear int
		household string
	)
	cmd := &cobra.Command{
		Use:   "tui [input-file]",
		Short: "Edit household inputs and browse the projection in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, closeStore, err := tuiOptions(root, args, startYear, household)
			if err != nil {
				return err
			}
			defer closeStore()

			p := tea.NewProgram(tui.NewModel(opts), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&startYear, "start-year", 0, "First projected year (default current year)")
	cmd.Flags().StringVar(&household, "household", "", "Restore from and save to this saved household")
	return cmd
}

// tuiOptions assembles the TUI model options. A store that cannot be opened only
// disables save and restore.
func tuiOptions(root *rootOptions, args []string, startYear int, household string) (tui.Options, func(), error) {
	closeStore := func() {}
	engine, err := root.engine()
	if err != nil {
		return tui.Options{}, closeStore, err
	}
	opts := tui.Options{
		Engine:    engine,
		Household: household,
		StartYear: startYearOrCurrent(startYear),
		Locale:    root.localeName(),
	}
	if len(args) == 1 {
		params, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return tui.Options{}, closeStore, err
		}
		opts.Initial = *params
	}
	if household != "" {
		persister, store, err := root.persister()
		if err != nil {
			root.logger().Warnf("household %q will not be restored or saved: %v", household, err)
			return opts, closeStore, nil
		}
		opts.Persister = persister
		closeStore = func() { store.Close() }
	}
	return opts, closeStore, nil
}
