package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ropa/arrear-calculator/internal/config"
	"github.com/ropa/arrear-calculator/internal/output"
)

func newExampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [path]",
		Short: "Write an example configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "ropa_config.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := output.SaveConfiguration(config.NewInputParser().CreateExampleConfiguration(), path); err != nil {
				return fmt.Errorf("failed to write example config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
}
