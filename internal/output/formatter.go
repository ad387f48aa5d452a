package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ropa/arrear-calculator/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.ArrearReport) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.ArrearReport) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.ArrearReport) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                  { return ff.ID }

// ReportFileName builds the timestamped file name for a report export.
func ReportFileName(report *domain.ArrearReport, ext string) string {
	return fmt.Sprintf("ropa_arrear_report_%s.%s", report.GeneratedAt.Format("20060102_150405"), ext)
}

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, report *domain.ArrearReport, dir, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	filename := filepath.Join(dir, ReportFileName(report, ext))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVSummarizer{},
	CSVDetailedExporter{},
	XLSXFormatter{},
	JSONFormatter{},
	HTMLFormatter{},
}

// extensions maps canonical formatter names to file extensions.
var extensions = map[string]string{
	"console":      "txt",
	"csv":          "csv",
	"detailed-csv": "detailed.csv",
	"xlsx":         "xlsx",
	"json":         "json",
	"html":         "html",
}

// contentTypes maps canonical formatter names to MIME types for HTTP downloads.
var contentTypes = map[string]string{
	"console":      "text/plain; charset=utf-8",
	"csv":          "text/csv",
	"detailed-csv": "text/csv",
	"xlsx":         "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"json":         "application/json",
	"html":         "text/html; charset=utf-8",
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"table":        "console",
	"text":         "console",
	"csv-summary":  "csv",
	"csv-detailed": "detailed-csv",
	"excel":        "xlsx",
	"spreadsheet":  "xlsx",
	"json-pretty":  "json",
	"html-report":  "html",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// IsKnownFormat reports whether name resolves to a formatter or to "all".
func IsKnownFormat(name string) bool {
	n := NormalizeFormatName(name)
	return n == "all" || GetFormatterByName(n) != nil
}

// ExtensionFor returns the file extension for a format name.
func ExtensionFor(name string) string {
	if ext, ok := extensions[NormalizeFormatName(name)]; ok {
		return ext
	}
	return "txt"
}

// ContentTypeFor returns the MIME type for a format name.
func ContentTypeFor(name string) string {
	if ct, ok := contentTypes[NormalizeFormatName(name)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
