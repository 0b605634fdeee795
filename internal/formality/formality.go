// Package formality scores text for register: how formal or informal it
// reads. Scoring runs through a pretrained classifier when one is available
// and through rule-based heuristics otherwise; both paths produce the same
// Verdict shape on the same 0-100 scale.
package formality

import "math"

// Label classifies the register of a text sample.
type Label string

const (
	LabelFormal   Label = "FORMAL"
	LabelInformal Label = "INFORMAL"
	// LabelUnknown is reported only for empty or whitespace-only input.
	LabelUnknown Label = "UNKNOWN"
)

// Method records which scoring path produced a verdict.
type Method string

const (
	MethodModel     Method = "model"
	MethodHeuristic Method = "heuristic"
	MethodNone      Method = "none"
)

// Details breaks down the heuristic signals behind a verdict. It is
// populated from the heuristic pass even for model-based verdicts, so
// callers can always inspect the signal counts.
type Details struct {
	InformalSignals int     `json:"informal_signals"`
	FormalSignals   int     `json:"formal_signals"`
	AvgSentenceLen  float64 `json:"avg_sentence_len"`
}

// Verdict is the result of scoring a text for formality. Confidence and
// Score are both 0-100; Score is the raw formality score (higher = more
// formal) while Confidence says how sure the scorer is about Label.
type Verdict struct {
	Label      Label    `json:"label"`
	Confidence float64  `json:"confidence"`
	Score      float64  `json:"score"`
	Method     Method   `json:"method"`
	Details    *Details `json:"details"`
}

// round1 rounds to one decimal, matching the precision both scoring paths
// report on the wire.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
