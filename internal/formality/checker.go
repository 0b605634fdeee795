package formality

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/pthm/prosecheck/internal/classify"
	"github.com/pthm/prosecheck/internal/profile"
)

// modelInputLimit bounds what we hand the classifier; the underlying models
// have a token limit and the first 1000 characters are plenty to judge
// register.
const modelInputLimit = 1000

// AcquireFunc acquires a classifier backend. It runs at most once per
// Checker; returning an error (classify.ErrUnavailable or otherwise) pins
// the checker to the heuristic path for its remaining lifetime.
type AcquireFunc func() (classify.Classifier, error)

// Checker orchestrates the two scoring paths. The classifier is acquired
// lazily on the first call and the outcome, available or not, is kept for
// the life of the checker. A single failed inference does not flip an
// available classifier back to unavailable.
type Checker struct {
	heuristic *HeuristicScorer
	acquire   AcquireFunc
	logger    *slog.Logger

	once sync.Once
	clf  classify.Classifier
}

// NewChecker creates a formality checker for the given locale profile.
// acquire may be nil, which pins the checker to heuristics.
func NewChecker(p *profile.Profile, acquire AcquireFunc, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{
		heuristic: NewHeuristicScorer(p),
		acquire:   acquire,
		logger:    logger,
	}
}

// Check scores text for formality. It never returns an error: empty input
// gets an UNKNOWN verdict, and any classifier trouble degrades silently to
// the heuristic path.
func (c *Checker) Check(ctx context.Context, text string) Verdict {
	if strings.TrimSpace(text) == "" {
		return Verdict{Label: LabelUnknown, Method: MethodNone}
	}

	c.once.Do(func() {
		if c.acquire == nil {
			return
		}
		clf, err := c.acquire()
		if err != nil {
			c.logger.Debug("classifier unavailable, scoring heuristically", "error", err)
			return
		}
		c.logger.Debug("classifier ready", "backend", clf.Name())
		c.clf = clf
	})

	if c.clf == nil {
		return c.heuristic.Score(text)
	}

	pred, err := c.clf.Classify(ctx, truncate(text, modelInputLimit))
	if err != nil {
		c.logger.Debug("classifier inference failed, falling back to heuristic", "error", err)
		return c.heuristic.Score(text)
	}

	return c.normalize(pred, text)
}

// Close releases the classifier if one was acquired.
func (c *Checker) Close() error {
	if c.clf != nil {
		return c.clf.Close()
	}
	return nil
}

// normalize maps a raw model prediction onto the heuristic verdict shape.
// The heuristic pass still runs over the full text so Details is populated
// either way.
func (c *Checker) normalize(pred classify.Prediction, text string) Verdict {
	p := pred.Probability

	var label Label
	var confidence float64
	if pred.Class == 0 {
		label = LabelInformal
		// The raw probability's meaning flips around 0.5 for the informal
		// class; this branching is kept exactly as the model's consumers
		// have always read it.
		if p > 0.5 {
			confidence = (1 - p) * 100
		} else {
			confidence = p * 100
		}
	} else {
		label = LabelFormal
		confidence = p * 100
	}

	heuristic := c.heuristic.Score(text)

	return Verdict{
		Label:      label,
		Confidence: round1(confidence),
		Score:      round1(p * 100),
		Method:     MethodModel,
		Details:    heuristic.Details,
	}
}

// truncate cuts text to at most n runes.
func truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
