package classify

import (
	"errors"
	"testing"
)

func TestNewBackendSelection(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	tests := []struct {
		name            string
		cfg             Config
		wantUnavailable bool
		wantErr         bool
	}{
		{
			name:            "off",
			cfg:             Config{Backend: BackendOff},
			wantUnavailable: true,
		},
		{
			name:            "auto with nothing configured",
			cfg:             Config{Backend: BackendAuto},
			wantUnavailable: true,
		},
		{
			name:            "empty backend treated as auto",
			cfg:             Config{},
			wantUnavailable: true,
		},
		{
			name:            "claude without key",
			cfg:             Config{Backend: BackendClaude},
			wantUnavailable: true,
		},
		{
			name:    "forced onnx without model",
			cfg:     Config{Backend: BackendONNX},
			wantErr: true,
		},
		{
			name:    "unknown backend",
			cfg:     Config{Backend: "tarot"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.cfg, nil)
			if c != nil {
				t.Fatalf("New returned classifier %q without any backend configured", c.Name())
			}
			if tt.wantUnavailable {
				if !errors.Is(err, ErrUnavailable) {
					t.Errorf("err = %v, want ErrUnavailable", err)
				}
				return
			}
			if tt.wantErr {
				if err == nil || errors.Is(err, ErrUnavailable) {
					t.Errorf("err = %v, want a configuration error", err)
				}
			}
		})
	}
}

func TestNewAutoFallsPastBrokenONNX(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	// A configured-but-broken local model should not abort auto selection.
	_, err := New(Config{
		Backend: BackendAuto,
		ONNX: ONNXConfig{
			ModelPath:     "/nonexistent/model.onnx",
			TokenizerPath: "/nonexistent/tokenizer.json",
		},
	}, nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable after onnx load failure", err)
	}
}
