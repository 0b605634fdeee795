package profile

import (
	"fmt"
	"regexp"
	"strings"
)

// Profile defines the locale-specific pattern tables and scoring weights
// used by formality scoring and grammar issue shaping.
type Profile struct {
	// Locale is the identifier for this profile (e.g., "en-US")
	Locale string `yaml:"locale"`

	// InformalPatterns match contractions, fillers, chat-speak and shouty
	// punctuation. They are unioned into a single case-insensitive regex so
	// a single span can never be counted under two alternatives.
	InformalPatterns []string `yaml:"informal_patterns"`

	// ShoutingPattern matches ALL-CAPS words. It is appended to the informal
	// union outside the case-insensitive group, since folding case would
	// make it match every long word.
	ShoutingPattern string `yaml:"shouting_pattern"`

	// FormalPatterns match connective and academic-register vocabulary.
	FormalPatterns []string `yaml:"formal_patterns"`

	// Weights control how signal counts turn into a formality score.
	Weights Weights `yaml:"weights"`

	// SpellingRulePrefix identifies the grammar engine's spelling rule
	// family. Matches from that family are excluded from grammar output;
	// spelling is a separate concern.
	SpellingRulePrefix string `yaml:"spelling_rule_prefix"`

	// LanguageCode is the language identifier passed to the grammar engine.
	LanguageCode string `yaml:"language_code"`

	informalRe *regexp.Regexp
	formalRe   *regexp.Regexp
}

// Weights control the heuristic formality score.
type Weights struct {
	// Baseline is the starting score before any signals apply.
	Baseline float64 `yaml:"baseline"`

	// InformalPenalty is subtracted per informal signal.
	InformalPenalty float64 `yaml:"informal_penalty"`

	// FormalBonus is added per formal signal.
	FormalBonus float64 `yaml:"formal_bonus"`

	// SentenceFactor scales the average-sentence-length bonus.
	SentenceFactor float64 `yaml:"sentence_factor"`

	// SentencePivot is the average sentence length that earns no bonus.
	SentencePivot float64 `yaml:"sentence_pivot"`

	// SentenceBonusCap caps the sentence-length bonus. The bonus is not
	// capped below, so very short sentences can drag the score down.
	SentenceBonusCap float64 `yaml:"sentence_bonus_cap"`
}

// Compile builds the union regexes from the pattern tables. Load compiles
// built-in profiles; callers constructing a Profile by hand must call it
// before using the counting methods.
func (p *Profile) Compile() error {
	if len(p.InformalPatterns) == 0 {
		return fmt.Errorf("profile %s: no informal patterns", p.Locale)
	}
	if len(p.FormalPatterns) == 0 {
		return fmt.Errorf("profile %s: no formal patterns", p.Locale)
	}

	informal := fmt.Sprintf("(?i:%s)", strings.Join(p.InformalPatterns, "|"))
	if p.ShoutingPattern != "" {
		informal += "|" + p.ShoutingPattern
	}
	re, err := regexp.Compile(informal)
	if err != nil {
		return fmt.Errorf("profile %s: informal patterns: %w", p.Locale, err)
	}
	p.informalRe = re

	re, err = regexp.Compile(fmt.Sprintf("(?i:%s)", strings.Join(p.FormalPatterns, "|")))
	if err != nil {
		return fmt.Errorf("profile %s: formal patterns: %w", p.Locale, err)
	}
	p.formalRe = re

	return nil
}

// InformalSignals counts informal marker occurrences in text. Each matched
// span counts once.
func (p *Profile) InformalSignals(text string) int {
	return len(p.informalRe.FindAllStringIndex(text, -1))
}

// FormalSignals counts formal marker occurrences in text.
func (p *Profile) FormalSignals(text string) int {
	return len(p.formalRe.FindAllStringIndex(text, -1))
}
