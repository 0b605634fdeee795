package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/pthm/prosecheck/internal/formality"
	"github.com/pthm/prosecheck/internal/grammar"
	"github.com/pthm/prosecheck/internal/ui"
)

// TerminalReporter outputs results to the terminal with colors
type TerminalReporter struct {
	w  io.Writer
	ui *ui.UI
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, u *ui.UI) *TerminalReporter {
	return &TerminalReporter{w: w, ui: u}
}

// Report outputs a result to the terminal
func (r *TerminalReporter) Report(res Result) error {
	s := r.ui.Styles

	if res.Path != "" && res.Path != "stdin" {
		fmt.Fprintln(r.w, s.Header.Render(res.Path))
	}

	if res.Formality != nil {
		r.printFormality(res.Formality)
	}
	if res.Grammar != nil {
		r.printGrammar(res.Grammar)
	}

	return nil
}

func (r *TerminalReporter) printFormality(v *formality.Verdict) {
	s := r.ui.Styles

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Header.Render("Formality"))

	labelStyle := s.Unknown
	switch v.Label {
	case formality.LabelFormal:
		labelStyle = s.Formal
	case formality.LabelInformal:
		labelStyle = s.Informal
	}

	fmt.Fprintf(r.w, "  %s %s\n",
		labelStyle.Render(string(v.Label)),
		s.Muted.Render(fmt.Sprintf("(confidence %.1f%%)", v.Confidence)))
	fmt.Fprintf(r.w, "  %s\n",
		s.Muted.Render(fmt.Sprintf("score %.1f/100 · method %s", v.Score, v.Method)))

	if v.Details != nil {
		fmt.Fprintf(r.w, "  %s\n", s.Muted.Render(fmt.Sprintf(
			"signals: %d informal, %d formal · avg sentence length %.1f words",
			v.Details.InformalSignals, v.Details.FormalSignals, v.Details.AvgSentenceLen)))
	}
}

func (r *TerminalReporter) printGrammar(rep *grammar.Report) {
	s := r.ui.Styles

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Header.Render("Grammar"))

	if rep.Status != grammar.StatusOK {
		fmt.Fprintf(r.w, "  %s\n", s.Warning.Render(
			fmt.Sprintf("%s grammar check %s", s.IconWarning, rep.Status)))
	}

	if len(rep.Issues) == 0 {
		fmt.Fprintf(r.w, "  %s\n", s.Success.Render(
			fmt.Sprintf("%s No issues found", s.IconSuccess)))
		return
	}

	for _, issue := range rep.Issues {
		r.printIssue(issue)
	}

	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%s\n", s.Muted.Render(
		fmt.Sprintf("%d grammar issue(s)", len(rep.Issues))))
}

func (r *TerminalReporter) printIssue(issue grammar.Issue) {
	s := r.ui.Styles

	fmt.Fprintf(r.w, "  %s %s %s\n",
		s.Issue.Render(s.IconIssue),
		issue.Message,
		s.Muted.Render(fmt.Sprintf("[%s]", issue.RuleID)))

	if issue.BadWord != "" {
		fmt.Fprintf(r.w, "      %s\n", s.Muted.Render(
			fmt.Sprintf("%q at offset %d", issue.BadWord, issue.Offset)))
	}
	if len(issue.Replacements) > 0 {
		fmt.Fprintf(r.w, "      %s %s\n",
			s.Suggestion.Render(s.IconSuggestion),
			strings.Join(issue.Replacements, ", "))
	}
}
