package formality

import (
	"regexp"
	"strings"

	"github.com/pthm/prosecheck/internal/profile"
)

// HeuristicScorer scores register with the profile's pattern tables and
// sentence-length statistics. It is deterministic and needs no external
// capability, which makes it both the offline path and the fallback when
// the model path fails.
type HeuristicScorer struct {
	profile *profile.Profile
}

// NewHeuristicScorer creates a scorer for the given locale profile.
func NewHeuristicScorer(p *profile.Profile) *HeuristicScorer {
	return &HeuristicScorer{profile: p}
}

var sentenceEndRe = regexp.MustCompile(`[.!?]+`)

// Score computes a verdict for text. Empty input is the orchestrator's
// responsibility; this function assumes it gets real text.
func (s *HeuristicScorer) Score(text string) Verdict {
	informal := s.profile.InformalSignals(text)
	formal := s.profile.FormalSignals(text)
	avgLen := avgSentenceLen(text)

	w := s.profile.Weights
	score := w.Baseline
	score -= float64(informal) * w.InformalPenalty
	score += float64(formal) * w.FormalBonus

	// Longer sentences bump the score up, capped; short sentences drag it
	// down without a floor.
	bonus := (avgLen - w.SentencePivot) * w.SentenceFactor
	if bonus > w.SentenceBonusCap {
		bonus = w.SentenceBonusCap
	}
	score += bonus

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	label := LabelInformal
	confidence := 100 - score
	if score >= 50 {
		label = LabelFormal
		confidence = score
	}

	return Verdict{
		Label:      label,
		Confidence: round1(confidence),
		Score:      round1(score),
		Method:     MethodHeuristic,
		Details: &Details{
			InformalSignals: informal,
			FormalSignals:   formal,
			AvgSentenceLen:  round1(avgLen),
		},
	}
}

// avgSentenceLen returns the mean word count per sentence. Sentences are
// split on runs of terminal punctuation; blank fragments don't count.
func avgSentenceLen(text string) float64 {
	var sentences int
	var words int
	for _, frag := range sentenceEndRe.Split(text, -1) {
		if strings.TrimSpace(frag) == "" {
			continue
		}
		sentences++
		words += len(strings.Fields(frag))
	}
	if sentences == 0 {
		sentences = 1
	}
	return float64(words) / float64(sentences)
}
