package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ClaudeClassifier scores register through the Anthropic API when no local
// model is configured.
type ClaudeClassifier struct {
	client anthropic.Client
}

// NewClaudeClassifier creates a Claude-backed classifier.
// Returns nil if no API key is configured.
func NewClaudeClassifier() *ClaudeClassifier {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &ClaudeClassifier{client: client}
}

// Name identifies the backend for logging.
func (c *ClaudeClassifier) Name() string {
	return "claude"
}

// Close is a no-op; the API client holds no resources to release.
func (c *ClaudeClassifier) Close() error {
	return nil
}

// Classify asks the model for a two-class register judgement.
func (c *ClaudeClassifier) Classify(ctx context.Context, text string) (Prediction, error) {
	if c == nil {
		return Prediction{}, fmt.Errorf("claude classifier not initialized (missing ANTHROPIC_API_KEY)")
	}

	prompt := fmt.Sprintf(`Classify the register of the following text as formal or informal.

Text:
%s

Provide a JSON response with the following structure:
{
  "class": 0,
  "probability": 0.0
}

where "class" is 0 for informal text and 1 for formal text, and
"probability" is your confidence in that class between 0.0 and 1.0.

Return ONLY the JSON, no other text.`, text)

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.ModelClaude3_5Haiku20241022,
		MaxTokens: 200,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return Prediction{}, fmt.Errorf("claude API error: %w", err)
	}

	var responseText string
	for _, block := range resp.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	return parsePrediction(responseText)
}

// parsePrediction decodes the model's JSON answer, tolerating a markdown
// code fence around it.
func parsePrediction(s string) (Prediction, error) {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "```"); idx != -1 {
		s = s[idx+3:]
		s = strings.TrimPrefix(s, "json")
		if end := strings.Index(s, "```"); end != -1 {
			s = s[:end]
		}
		s = strings.TrimSpace(s)
	}

	var result struct {
		Class       int     `json:"class"`
		Probability float64 `json:"probability"`
	}
	if err := json.Unmarshal([]byte(s), &result); err != nil {
		return Prediction{}, fmt.Errorf("failed to parse claude response: %w", err)
	}

	if result.Probability < 0 || result.Probability > 1 {
		return Prediction{}, fmt.Errorf("claude probability out of range: %v", result.Probability)
	}

	return Prediction{Class: result.Class, Probability: result.Probability}, nil
}
