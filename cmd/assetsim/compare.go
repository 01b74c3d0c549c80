package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/lifeplan/assetsim/internal/calculation"
	"github.com/lifeplan/assetsim/internal/config"
	"github.com/lifeplan/assetsim/internal/output"
)

func newCompareCmd(root *rootOptions) *cobra.Command {
	var (
		startYear int
		format    string
	)
	cmd := &cobra.Command{
		Use:   "compare [input-file] [actuals-file]",
		Short: "Compare projected figures with recorded actuals",
		Long: `Compare the projection against recorded yearly income and expense figures.
The actuals file is a YAML or JSON list of {year, income, expense} entries;
years outside the projection are ignored.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			actuals, err := config.LoadActuals(args[1])
			if err != nil {
				return err
			}
			engine, err := root.engine()
			if err != nil {
				return err
			}

			rows := engine.GenerateProjection(params, startYearOrCurrent(startYear))
			variances := calculation.CompareActuals(rows, actuals)

			switch output.NormalizeFormatName(format) {
			case "json":
				data, err := json.MarshalIndent(variances, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode variances: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			case "console":
				cmd.OutOrStdout().Write(output.FormatVariances(variances, output.NewNumberFormat(root.localeName())))
			default:
				return fmt.Errorf("%w: %s (compare supports console and json)", output.ErrUnsupportedFormat, format)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&startYear, "start-year", 0, "First projected year (default current year)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format: console or json")
	return cmd
}
