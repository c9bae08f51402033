package output

import (
	"encoding/json"

	"github.com/financepro/planner/internal/domain"
)

// JSONFormatter writes the whole report, trajectories and schedules included,
// as indented JSON. Decimals are encoded as strings.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
