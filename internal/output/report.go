package output

import (
	"github.com/financepro/planner/internal/domain"
)

// GenerateReport writes the report with the named formatter into dir and
// returns the written files. "all" writes every format except console.
func GenerateReport(report *domain.Report, format, dir string) ([]string, error) {
	var selected []Formatter
	if NormalizeFormatName(format) == "all" {
		for _, f := range builtInFormatters {
			if _, isConsole := f.(ConsoleFormatter); !isConsole {
				selected = append(selected, f)
			}
		}
	} else {
		f := GetFormatterByName(format)
		if f == nil {
			return nil, UnsupportedFormatError(format)
		}
		selected = append(selected, f)
	}

	files := make([]string, 0, len(selected))
	for _, f := range selected {
		name, err := WriteFormatted(f, report, dir)
		if err != nil {
			return files, err
		}
		files = append(files, name)
	}
	return files, nil
}
