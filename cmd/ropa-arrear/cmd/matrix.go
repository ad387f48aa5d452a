package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ropa/arrear-calculator/internal/domain"
	"github.com/ropa/arrear-calculator/internal/output"
)

func newMatrixCmd() *cobra.Command {
	var (
		gradePay  int
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Render the revised pay matrix as a PNG image",
		Long: `Render the revised pay matrix of a grade pay as a PNG reference image.
Without --grade-pay every grade pay is rendered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grades := domain.RevisedPayMatrices.GradePays()
			if gradePay != 0 {
				grades = []domain.GradePay{domain.GradePay(gradePay)}
			}
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return err
			}
			for _, gp := range grades {
				path, err := writeMatrixImage(gp, outputDir)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&gradePay, "grade-pay", 0, "grade pay to render (default: all)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "directory for the image files")
	return cmd
}

func writeMatrixImage(gp domain.GradePay, dir string) (path string, err error) {
	if _, err := domain.RevisedPayMatrices.Matrix(gp); err != nil {
		return "", err
	}
	path = filepath.Join(dir, output.PayMatrixImageName(gp))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return path, output.RenderPayMatrixPNG(gp, f)
}
