package reporter

import (
	"github.com/pthm/prosecheck/internal/formality"
	"github.com/pthm/prosecheck/internal/grammar"
)

// Result is the combined analysis of one document. Either part may be nil
// when the caller asked for only one kind of analysis.
type Result struct {
	Path      string
	Formality *formality.Verdict
	Grammar   *grammar.Report
}

// Reporter defines the interface for outputting analysis results
type Reporter interface {
	Report(res Result) error
}

// Summary holds aggregate information about a result
type Summary struct {
	Label         string  `json:"label,omitempty"`
	Score         float64 `json:"score,omitempty"`
	GrammarIssues int     `json:"grammar_issues"`
}

// ComputeSummary calculates summary information for a result
func ComputeSummary(res Result) Summary {
	var s Summary
	if res.Formality != nil {
		s.Label = string(res.Formality.Label)
		s.Score = res.Formality.Score
	}
	if res.Grammar != nil {
		s.GrammarIssues = len(res.Grammar.Issues)
	}
	return s
}
