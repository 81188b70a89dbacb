// Package cmd implements the scbind command line.
package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/scbind/i18n"
	"github.com/reoring/scbind/internal/config"
	"github.com/reoring/scbind/internal/logging"
)

// app is the state shared by subcommands once the root pre-run has loaded
// configuration.
type app struct {
	configFile string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log *zap.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	root := &cobra.Command{
		Use:           "scbind",
		Short:         "Smart contract selector and binding tool",
		Long:          `scbind hashes contract names into selectors, checks schemas for collisions and generates constants modules.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file path")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (json, console)")

	root.AddCommand(newHnameCmd(a), newGenCmd(a), newCheckCmd(a), newDecodeCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	i18n.SetLanguage(cfg.Lang)
	pterm.DisableStyling()
	a.cfg, a.log = cfg, log
	return nil
}

// renderTable writes a header row plus data as a plain text table.
func renderTable(cmd *cobra.Command, data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithHeaderRowSeparator("-").WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
