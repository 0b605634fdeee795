// Package grammar finds grammar issues in text. An external engine does the
// detection; this package shapes its raw matches into normalized issue
// records, filtering out the spelling-rule family on the way.
package grammar

import "context"

// Match is one raw record from the underlying grammar engine.
type Match struct {
	RuleID       string
	Message      string
	Context      string
	Offset       int
	Length       int
	Replacements []string
	Category     string
}

// Engine is the capability that detects grammar problems in a text.
type Engine interface {
	Check(ctx context.Context, text string) ([]Match, error)
}

// Issue is one flagged span, normalized for callers. Offset and Length are
// 0-based character positions into the analyzed text; BadWord is the exact
// substring at [Offset, Offset+Length).
type Issue struct {
	Message      string   `json:"message"`
	Context      string   `json:"context"`
	BadWord      string   `json:"bad_word"`
	Offset       int      `json:"offset"`
	Length       int      `json:"length"`
	Replacements []string `json:"replacements"`
	RuleID       string   `json:"rule_id"`
	Category     string   `json:"category"`
}
