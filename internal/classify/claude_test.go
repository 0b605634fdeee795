package classify

import (
	"testing"
)

func TestParsePrediction(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Prediction
		wantErr bool
	}{
		{
			name:  "plain json",
			input: `{"class": 0, "probability": 0.92}`,
			want:  Prediction{Class: 0, Probability: 0.92},
		},
		{
			name:  "fenced json",
			input: "```json\n{\"class\": 1, \"probability\": 0.75}\n```",
			want:  Prediction{Class: 1, Probability: 0.75},
		},
		{
			name:  "fenced without language tag",
			input: "```\n{\"class\": 1, \"probability\": 0.5}\n```",
			want:  Prediction{Class: 1, Probability: 0.5},
		},
		{
			name:  "surrounding whitespace",
			input: "  \n{\"class\": 0, \"probability\": 0.1}\n  ",
			want:  Prediction{Class: 0, Probability: 0.1},
		},
		{
			name:    "not json",
			input:   "the text is quite formal",
			wantErr: true,
		},
		{
			name:    "probability above one",
			input:   `{"class": 1, "probability": 1.5}`,
			wantErr: true,
		},
		{
			name:    "probability below zero",
			input:   `{"class": 0, "probability": -0.2}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePrediction(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parsePrediction(%q) expected error, got %+v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePrediction(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parsePrediction(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewClaudeClassifierWithoutKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	if c := NewClaudeClassifier(); c != nil {
		t.Error("NewClaudeClassifier() without API key should return nil")
	}
}
