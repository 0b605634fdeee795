package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/prosecheck/internal/formality"
	"github.com/pthm/prosecheck/internal/grammar"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Path      string             `json:"path,omitempty"`
	Formality *formality.Verdict `json:"formality,omitempty"`
	Grammar   *grammar.Report    `json:"grammar,omitempty"`
	Summary   Summary            `json:"summary"`
}

// Report outputs a result as JSON
func (r *JSONReporter) Report(res Result) error {
	output := JSONOutput{
		Path:      res.Path,
		Formality: res.Formality,
		Grammar:   res.Grammar,
		Summary:   ComputeSummary(res),
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
