// Package cmd provides the CLI commands for ropa-arrear.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ropa/arrear-calculator/internal/calculation"
	"github.com/ropa/arrear-calculator/internal/config"
	"github.com/ropa/arrear-calculator/internal/domain"
	"github.com/ropa/arrear-calculator/internal/logging"
)

// Version is set at build time via -ldflags.
var Version = "0.1.0"

// app carries the state shared by subcommands of one invocation.
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string

	config *domain.Configuration
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "ropa-arrear",
		Short: "Project ROPA 2020 salary arrears",
		Long: `ropa-arrear projects the month-by-month salary arrear owed under the
ROPA 2020 pay revision, from January 2020 up to a chosen month.

Examples:
  ropa-arrear project --grade-pay 6600 --basic 73700 --increment-month 7 --upto 202602
  ropa-arrear project --config scenarios.yaml --format console --format xlsx
  ropa-arrear matrix --grade-pay 7600
  ropa-arrear serve --port 8080`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML configuration file with scenarios and output settings")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (console, json)")

	rootCmd.AddCommand(newProjectCmd(a))
	rootCmd.AddCommand(newMatrixCmd())
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newExampleConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (a *app) initConfig() error {
	if a.cfgFile != "" {
		cfg, err := config.NewInputParser().LoadFromFile(a.cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		a.config = cfg
	}

	logCfg := logging.DefaultConfig()
	if a.config != nil {
		logCfg = logging.Config{
			Level:       a.config.Logging.Level,
			Format:      a.config.Logging.Format,
			Output:      a.config.Logging.Output,
			Development: a.config.Logging.Development,
		}
	}
	if a.verbose {
		logCfg.Level = "debug"
	}
	if a.logFormat != "" {
		logCfg.Format = a.logFormat
	}
	if err := logging.Initialize(logCfg); err != nil {
		return fmt.Errorf("error initializing logging: %w", err)
	}
	return nil
}

// newEngine returns an engine logging through the global zap logger.
func (a *app) newEngine() *calculation.ArrearEngine {
	engine := calculation.NewArrearEngine()
	engine.SetLogger(logging.Sugar)
	return engine
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ropa-arrear version %s\n", Version)
		},
	}
}
