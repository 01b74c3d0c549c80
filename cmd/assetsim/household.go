package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lifeplan/assetsim/internal/config"
	"github.com/lifeplan/assetsim/internal/storage"
)

func newSaveCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "save [name] [input-file]",
		Short: "Save a household file under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := storage.ValidateName(name); err != nil {
				return err
			}
			params, err := config.NewInputParser().LoadFromFile(args[1])
			if err != nil {
				return err
			}
			persister, store, err := root.persister()
			if err != nil {
				return err
			}
			defer store.Close()

			id := persister.Persist(cmd.Context(), name, params)
			if id == "" {
				return fmt.Errorf("could not save household %q to the %s store", name, root.settings.StoreDriver)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved household %q (revision %s)\n", name, id)
			return nil
		},
	}
}

func newShowCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Print a saved household as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			persister, store, err := root.persister()
			if err != nil {
				return err
			}
			defer store.Close()

			params, found := persister.Restore(cmd.Context(), args[0])
			if !found {
				return fmt.Errorf("no saved household %q", args[0])
			}
			data, err := yaml.Marshal(params)
			if err != nil {
				return fmt.Errorf("failed to encode household: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved households",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := root.persister()
			if err != nil {
				return err
			}
			defer store.Close()

			names, err := store.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list households: %w", err)
			}
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved households")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
