package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sarthakjha889/go-rule-trie/internal/logging"
)

var (
	verbosity int
	cfgFile   string

	// cfg is resolved once per invocation, before any subcommand runs.
	cfg config

	rootCmd = &cobra.Command{
		Use:   "ruletrie",
		Short: "Exact-match lookups over a directory of rule files",
		Long: `ruletrie loads YAML and JSON rule files into a prefix tree and answers
exact-membership queries against them. Phrases are normalised down to the
26-letter lowercase alphabet first, so "Stop-Loss", "STOPLOSS" and
"stop loss" all name the same rule.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				pterm.DisableColor()
			}
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg = c
			log.Debug().
				Str("command", cmd.Name()).
				Str("rulesDir", cfg.RulesDir).
				Msg("Command started")
			return nil
		},
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $XDG_CONFIG_HOME/ruletrie/config.yaml)")
	rootCmd.PersistentFlags().String("rules-dir", "", "Directory of rule files (YAML or JSON)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(rulesCmd)
}
