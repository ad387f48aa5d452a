package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ropa/arrear-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for format names that resolve to no formatter.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrEmptyReport is returned when there is nothing to export.
	ErrEmptyReport = errors.New("report has no scenarios")
)

// GenerateReport writes the report in the requested format into dir and returns the
// written file names. "all" writes every registered format.
func GenerateReport(report *domain.ArrearReport, format, dir string) ([]string, error) {
	if report == nil || len(report.Scenarios) == 0 {
		return nil, ErrEmptyReport
	}
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range AvailableFormatterNames() {
			written, err := GenerateReport(report, name, dir)
			if err != nil {
				return files, err
			}
			files = append(files, written...)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	filename, err := WriteFormatted(f, report, dir, ExtensionFor(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{filename}, nil
}

// SaveConfiguration writes a configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
