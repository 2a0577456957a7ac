package report

import (
	"encoding/json"
	"os"
)

// JSONReporter produces a JSON data file with all the run information.
type JSONReporter struct {
	outputPath string
}

func NewJSONReporter(outputPath string) *JSONReporter {
	return &JSONReporter{outputPath: outputPath}
}

func (r *JSONReporter) ProduceReport(runs []*Run) error {
	result, err := json.Marshal(runs)
	if err != nil {
		return err
	}

	return os.WriteFile(r.outputPath, result, 0o600)
}
