package grammar

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// maxReplacements caps the suggestion list per issue.
const maxReplacements = 3

// StatusOK means the engine answered; an empty issue list then really means
// the text is clean.
const StatusOK = "ok"

// Report is the result of one grammar pass. Status distinguishes "no
// issues" from "the engine was unreachable"; the issue list is empty in
// both cases.
type Report struct {
	Issues []Issue `json:"issues"`
	Status string  `json:"status"`
}

// Shaper turns raw engine matches into normalized issues: spelling-family
// rules are dropped, suggestion lists are capped, and the flagged substring
// is re-sliced from the analyzed text rather than trusted from the engine.
type Shaper struct {
	engine         Engine
	spellingPrefix string
	logger         *slog.Logger
}

// NewShaper creates a shaper over the given engine. spellingPrefix
// identifies the engine's spelling rule family, which is excluded from
// output.
func NewShaper(engine Engine, spellingPrefix string, logger *slog.Logger) *Shaper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Shaper{engine: engine, spellingPrefix: spellingPrefix, logger: logger}
}

// Check returns the normalized issues for text. Engine failure degrades to
// an empty list; use Run when the caller needs to tell the two apart.
func (s *Shaper) Check(ctx context.Context, text string) []Issue {
	return s.Run(ctx, text).Issues
}

// Run returns the issues plus a status channel for the degraded case.
func (s *Shaper) Run(ctx context.Context, text string) Report {
	if strings.TrimSpace(text) == "" {
		return Report{Issues: []Issue{}, Status: StatusOK}
	}

	matches, err := s.engine.Check(ctx, text)
	if err != nil {
		s.logger.Debug("grammar engine failed, reporting no issues", "error", err)
		return Report{Issues: []Issue{}, Status: fmt.Sprintf("degraded: %v", err)}
	}

	runes := []rune(text)
	issues := make([]Issue, 0, len(matches))
	for _, m := range matches {
		if s.spellingPrefix != "" && strings.HasPrefix(m.RuleID, s.spellingPrefix) {
			continue
		}

		replacements := make([]string, 0, maxReplacements)
		for _, r := range m.Replacements {
			if len(replacements) == maxReplacements {
				break
			}
			replacements = append(replacements, r)
		}

		issues = append(issues, Issue{
			Message:      m.Message,
			Context:      m.Context,
			BadWord:      sliceSpan(runes, m.Offset, m.Length),
			Offset:       m.Offset,
			Length:       m.Length,
			Replacements: replacements,
			RuleID:       m.RuleID,
			Category:     m.Category,
		})
	}

	return Report{Issues: issues, Status: StatusOK}
}

// sliceSpan extracts [offset, offset+length) from the analyzed text,
// clamped to its bounds so a confused engine can't cause a panic.
func sliceSpan(runes []rune, offset, length int) string {
	if offset < 0 || length <= 0 || offset >= len(runes) {
		return ""
	}
	end := offset + length
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[offset:end])
}
