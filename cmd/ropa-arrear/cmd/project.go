package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ropa/arrear-calculator/internal/domain"
	"github.com/ropa/arrear-calculator/internal/logging"
	"github.com/ropa/arrear-calculator/internal/output"
)

type projectOptions struct {
	gradePay       int
	basic          int64
	incrementMonth int
	upto           string
	promotion      string
	name           string
	formats        []string
	outputDir      string
}

var requestFlags = []string{"grade-pay", "basic", "increment-month", "upto", "promotion"}

func newProjectCmd(a *app) *cobra.Command {
	opts := &projectOptions{}
	def := domain.DefaultArrearRequest()

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project monthly arrears for one request or the configured scenarios",
		Long: `Project the monthly arrear statement.

Request flags describe a single scenario; unset request flags take the form
defaults (GP 6600, basic 73700, increment in July, up to 202602). Without any
request flag the scenarios of --config are run.

Examples:
  ropa-arrear project --upto 202112 --promotion 202101
  ropa-arrear project --basic 76000 --format xlsx --output-dir reports
  ropa-arrear project --config scenarios.yaml --format all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProject(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.gradePay, "grade-pay", int(def.InitialGradePay), "grade pay in January 2020")
	cmd.Flags().Int64Var(&opts.basic, "basic", def.InitialBasic, "pre-revised basic pay in January 2020")
	cmd.Flags().IntVar(&opts.incrementMonth, "increment-month", def.IncrementMonth, "month of the annual increment (1-12)")
	cmd.Flags().StringVar(&opts.upto, "upto", def.ArrearUpto, "last arrear month, YYYYMM")
	cmd.Flags().StringVar(&opts.promotion, "promotion", "", "promotion month, YYYYMM")
	cmd.Flags().StringVar(&opts.name, "name", "Arrear Statement", "scenario name for a single request")
	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", nil, fmt.Sprintf("output formats (%v or all)", output.AvailableFormatterNames()))
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "directory for report files")

	return cmd
}

func (a *app) runProject(cmd *cobra.Command, opts *projectOptions) error {
	scenarios := a.scenariosFor(cmd, opts)
	formats := a.formatsFor(opts)
	for _, f := range formats {
		if !output.IsKnownFormat(f) {
			return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, f)
		}
	}

	engine := a.newEngine()
	report, err := engine.RunScenarios(&domain.Configuration{Scenarios: scenarios})
	if err != nil {
		return err
	}
	logging.Sugar.Infof("projected %d scenario(s), grand total %s", len(report.Scenarios), report.GrandTotal().StringFixed(0))

	dir := a.outputDirFor(opts)
	for _, f := range formats {
		if err := writeReport(cmd.OutOrStdout(), report, f, dir); err != nil {
			return err
		}
	}
	return nil
}

// writeReport prints console output and writes every other format to dir.
func writeReport(out io.Writer, report *domain.ArrearReport, format, dir string) error {
	if output.NormalizeFormatName(format) == "console" {
		data, err := output.ConsoleFormatter{}.Format(report)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	files, err := output.GenerateReport(report, format, dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintf(out, "Wrote %s\n", f)
	}
	return nil
}

func (a *app) scenariosFor(cmd *cobra.Command, opts *projectOptions) []domain.Scenario {
	explicit := false
	for _, name := range requestFlags {
		if cmd.Flags().Changed(name) {
			explicit = true
			break
		}
	}
	if !explicit && a.config != nil {
		return a.config.Scenarios
	}
	return []domain.Scenario{{
		Name: opts.name,
		Request: domain.ArrearRequest{
			InitialGradePay: domain.GradePay(opts.gradePay),
			InitialBasic:    opts.basic,
			IncrementMonth:  opts.incrementMonth,
			ArrearUpto:      opts.upto,
			PromotionMonth:  opts.promotion,
		},
	}}
}

func (a *app) formatsFor(opts *projectOptions) []string {
	if len(opts.formats) > 0 {
		return opts.formats
	}
	if a.config != nil && len(a.config.Output.Formats) > 0 {
		return a.config.Output.Formats
	}
	return []string{"console"}
}

func (a *app) outputDirFor(opts *projectOptions) string {
	if opts.outputDir != "" {
		return opts.outputDir
	}
	if a.config != nil && a.config.Output.Directory != "" {
		return a.config.Output.Directory
	}
	return "."
}
