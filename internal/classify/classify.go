package classify

import (
	"context"
	"errors"
)

// ErrUnavailable indicates no classifier backend could be acquired. Callers
// are expected to fall back to heuristic scoring.
var ErrUnavailable = errors.New("no classifier backend available")

// Prediction is the raw two-class output of a formality classifier.
// Class 0 is the informal class; any other class is formal. Probability is
// the model's confidence in the predicted class, in [0,1].
type Prediction struct {
	Class       int
	Probability float64
}

// Classifier scores a text's register with a pretrained model.
type Classifier interface {
	// Classify returns the predicted class and its probability for text.
	Classify(ctx context.Context, text string) (Prediction, error)

	// Name identifies the backend for logging.
	Name() string

	// Close releases any resources held by the backend.
	Close() error
}
