package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lifeplan/assetsim/internal/config"
	"github.com/lifeplan/assetsim/internal/domain"
	"github.com/lifeplan/assetsim/internal/output"
)

type projectOptions struct {
	startYear int
	format    string
	outputDir string
	strict    bool
	save      string
	household string
}

func newProjectCmd(root *rootOptions) *cobra.Command {
	opts := &projectOptions{}
	cmd := &cobra.Command{
		Use:   "project [input-file]",
		Short: "Project household assets year by year",
		Long: `Project household assets from a YAML or JSON household file, or from a
household saved with "assetsim save".

Examples:
  assetsim project household.yaml
  assetsim project household.yaml --format csv-detailed --output-dir reports
  assetsim project --household family --start-year 2030 --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd, root, opts, args)
		},
	}
	cmd.Flags().IntVar(&opts.startYear, "start-year", 0, "First projected year (default current year)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "console", "Output format: console, csv, csv-detailed, json, html, or all with --output-dir")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Write timestamped report files to this directory instead of stdout")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Reject implausible inputs before projecting")
	cmd.Flags().StringVar(&opts.save, "save", "", "Save the household inputs under this name")
	cmd.Flags().StringVar(&opts.household, "household", "", "Project a saved household instead of a file")
	return cmd
}

func runProject(cmd *cobra.Command, root *rootOptions, opts *projectOptions, args []string) error {
	params, err := loadHousehold(cmd.Context(), root, args, opts.household)
	if err != nil {
		return err
	}

	engine, err := root.engine()
	if err != nil {
		return err
	}
	startYear := startYearOrCurrent(opts.startYear)
	if opts.strict {
		if err := config.ValidateParameters(params, startYear, &engine.Rules); err != nil {
			return err
		}
	}

	projection := engine.RunProjection(params, startYear)

	if opts.save != "" {
		persister, store, err := root.persister()
		if err != nil {
			root.logger().Warnf("household %q not saved: %v", opts.save, err)
		} else {
			defer store.Close()
			if id := persister.Persist(cmd.Context(), opts.save, params); id != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved household %q (revision %s)\n", opts.save, id)
			}
		}
	}

	if opts.outputDir != "" {
		files, err := output.GenerateReport(projection, opts.format, root.localeName(), opts.outputDir)
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", f)
		}
		return err
	}
	if output.NormalizeFormatName(opts.format) == "all" {
		return errors.New(`format "all" requires --output-dir`)
	}
	return output.WriteReport(cmd.OutOrStdout(), projection, opts.format, root.localeName())
}

// loadHousehold reads the household from the single file argument or from storage.
func loadHousehold(ctx context.Context, root *rootOptions, args []string, household string) (*domain.InputParameters, error) {
	switch {
	case len(args) == 1 && household != "":
		return nil, errors.New("give either an input file or --household, not both")
	case len(args) == 1:
		return config.NewInputParser().LoadFromFile(args[0])
	case household != "":
		persister, store, err := root.persister()
		if err != nil {
			return nil, err
		}
		defer store.Close()
		params, found := persister.Restore(ctx, household)
		if !found {
			return nil, fmt.Errorf("no saved household %q", household)
		}
		return &params, nil
	default:
		return nil, errors.New("an input file or --household is required")
	}
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	var startYear int
	cmd := &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a household file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			rules, err := config.LoadRules(root.rulesFileOrSetting())
			if err != nil {
				return err
			}
			if err := config.ValidateParameters(params, startYearOrCurrent(startYear), &rules); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Household file %s is valid\n", args[0])
			return nil
		},
	}
	cmd.Flags().IntVar(&startYear, "start-year", 0, "Year the household is checked against (default current year)")
	return cmd
}
