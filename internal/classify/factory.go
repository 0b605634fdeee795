package classify

import (
	"fmt"
	"log/slog"
)

// Backend selects which classifier implementation to acquire.
type Backend string

const (
	// BackendAuto picks the local model when one is configured, then the
	// Claude API when a key is present, and reports unavailability otherwise.
	BackendAuto Backend = "auto"
	// BackendONNX forces the local ONNX model.
	BackendONNX Backend = "onnx"
	// BackendClaude forces the Anthropic API.
	BackendClaude Backend = "claude"
	// BackendOff disables model classification entirely.
	BackendOff Backend = "off"
)

// Config selects and configures a classifier backend.
type Config struct {
	Backend Backend
	ONNX    ONNXConfig
}

// New acquires a classifier for the given config. Returns ErrUnavailable
// when no backend can serve; other errors mean a selected backend exists
// but failed to come up.
func New(cfg Config, logger *slog.Logger) (Classifier, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Backend {
	case BackendOff:
		return nil, ErrUnavailable

	case BackendONNX:
		c, err := NewONNXClassifier(cfg.ONNX)
		if err != nil {
			return nil, err
		}
		return c, nil

	case BackendClaude:
		if c := NewClaudeClassifier(); c != nil {
			return c, nil
		}
		return nil, ErrUnavailable

	case BackendAuto, "":
		if cfg.ONNX.ModelPath != "" {
			c, err := NewONNXClassifier(cfg.ONNX)
			if err == nil {
				logger.Debug("classifier backend selected", "backend", c.Name())
				return c, nil
			}
			logger.Debug("onnx classifier failed to load", "error", err)
		}
		if c := NewClaudeClassifier(); c != nil {
			logger.Debug("classifier backend selected", "backend", c.Name())
			return c, nil
		}
		return nil, ErrUnavailable

	default:
		return nil, fmt.Errorf("unknown classifier backend: %s", cfg.Backend)
	}
}
