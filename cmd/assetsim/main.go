package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/lifeplan/assetsim/internal/calculation"
	"github.com/lifeplan/assetsim/internal/config"
	"github.com/lifeplan/assetsim/internal/storage"
)

// cliLogger implements calculation.Logger using the standard log package.
// Debug lines are printed only when verbose is set.
type cliLogger struct{ verbose bool }

func (l cliLogger) Debugf(format string, args ...any) {
	if l.verbose {
		log.Printf("DEBUG: "+format, args...)
	}
}
func (cliLogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (cliLogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (cliLogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootOptions carries persistent flags and environment settings to every command.
type rootOptions struct {
	debug     bool
	rulesFile string
	locale    string

	settings config.Settings
}

func (o *rootOptions) logger() cliLogger {
	return cliLogger{verbose: o.debug}
}

// engine builds a simulation engine from the default rules plus any override file.
func (o *rootOptions) engine() (*calculation.SimulationEngine, error) {
	rules, err := config.LoadRules(o.rulesFileOrSetting())
	if err != nil {
		return nil, err
	}
	engine := calculation.NewSimulationEngineWithRules(rules)
	if o.debug {
		engine.SetLogger(o.logger())
	}
	engine.Debug = o.debug
	return engine, nil
}

// persister opens the configured store. Callers must Close the returned store.
func (o *rootOptions) persister() (*storage.Persister, storage.Store, error) {
	store, err := storage.Open(o.settings.StoreDriver, o.settings.StorePath)
	if err != nil {
		return nil, nil, err
	}
	return storage.NewPersister(store, o.logger()), store, nil
}

func (o *rootOptions) rulesFileOrSetting() string {
	if o.rulesFile != "" {
		return o.rulesFile
	}
	return o.settings.RulesFile
}

func (o *rootOptions) localeName() string {
	if o.locale != "" {
		return o.locale
	}
	return o.settings.Locale
}

func startYearOrCurrent(year int) int {
	if year != 0 {
		return year
	}
	return calculation.CurrentYear()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "assetsim",
		Short: "Household asset projection calculator",
		Long: `Projects a household's income, expenses and assets year by year until the
husband reaches the terminal age, covering salaries, pensions, maternity
benefits, child allowances and child-rearing costs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}
			opts.settings = settings
			if settings.Debug {
				opts.debug = true
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&opts.rulesFile, "rules", "", "YAML file overriding the default rules")
	root.PersistentFlags().StringVar(&opts.locale, "locale", "", "Number display locale (default from ASSETSIM_LOCALE)")

	root.AddCommand(
		newProjectCmd(opts),
		newValidateCmd(opts),
		newCompareCmd(opts),
		newSaveCmd(opts),
		newShowCmd(opts),
		newListCmd(opts),
		newServeCmd(opts),
		newTUICmd(opts),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "assetsim %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
