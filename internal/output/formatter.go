package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/financepro/planner/internal/domain"
)

// ErrUnsupportedFormat is returned when a format name matches no formatter.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter renders a report. Implementations do not touch the filesystem;
// WriteFormatted does that.
type Formatter interface {
	Format(report *domain.Report) ([]byte, error)
	Name() string
}

// extensioner is implemented by formatters whose file extension differs from
// their name
type extensioner interface {
	Extension() string
}

func (ConsoleFormatter) Extension() string    { return "txt" }
func (CSVDetailedExporter) Extension() string { return "csv" }

// FileExtension returns the extension of the files a formatter writes.
func FileExtension(f Formatter) string {
	if e, ok := f.(extensioner); ok {
		return e.Extension()
	}
	return f.Name()
}

// reportFileName is financepro_<format>_<timestamp>.<ext>, timestamped with
// the report's generation time so reruns of a fixed clock overwrite
func reportFileName(f Formatter, generatedAt time.Time) string {
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}
	return fmt.Sprintf("financepro_%s_%s.%s", f.Name(), generatedAt.Format("20060102_150405"), FileExtension(f))
}

// WriteFormatted renders the report and writes it into dir, creating dir when
// needed. It returns the path of the written file.
func WriteFormatted(f Formatter, report *domain.Report, dir string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", fmt.Errorf("%s output: %w", f.Name(), err)
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}
	filename := filepath.Join(dir, reportFileName(f, report.GeneratedAt))
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVSummarizer{},
	CSVDetailedExporter{},
	HTMLFormatter{},
	JSONFormatter{},
	XLSXFormatter{},
}

// aliasMap maps accepted synonyms to canonical formatter names
var aliasMap = map[string]string{
	"text":         "console",
	"table":        "console",
	"csv-detailed": "detailed-csv",
	"csv-summary":  "csv",
	"html-report":  "html",
	"json-pretty":  "json",
	"excel":        "xlsx",
	"spreadsheet":  "xlsx",
}

// NormalizeFormatName lowers the name and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// GetFormatterByName returns the formatter for a name or alias, or nil.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// AvailableFormatterNames returns the canonical formatter names, sorted.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the alias names, sorted.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// UnsupportedFormatError wraps ErrUnsupportedFormat with the accepted names.
func UnsupportedFormatError(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s, all (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
