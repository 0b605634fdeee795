package grammar

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public LanguageTool API. A self-hosted server is
// the better choice for anything beyond light use.
const DefaultBaseURL = "https://api.languagetool.org"

// LanguageToolClient checks text against a LanguageTool server's
// /v2/check endpoint.
type LanguageToolClient struct {
	baseURL  string
	language string
	client   *http.Client
	logger   *slog.Logger
}

// NewLanguageToolClient creates a client for the given server and language.
// Empty baseURL uses the public API; empty language defaults to en-US.
func NewLanguageToolClient(baseURL, language string, logger *slog.Logger) *LanguageToolClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if language == "" {
		language = "en-US"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LanguageToolClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: language,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
	}
}

type ltResponse struct {
	Matches []ltMatch `json:"matches"`
}

type ltMatch struct {
	Message      string `json:"message"`
	Offset       int    `json:"offset"`
	Length       int    `json:"length"`
	Replacements []struct {
		Value string `json:"value"`
	} `json:"replacements"`
	Context struct {
		Text   string `json:"text"`
		Offset int    `json:"offset"`
		Length int    `json:"length"`
	} `json:"context"`
	Rule struct {
		ID       string `json:"id"`
		Category struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"category"`
	} `json:"rule"`
}

// Check sends text to the server and returns its raw matches in document
// order.
func (c *LanguageToolClient) Check(ctx context.Context, text string) ([]Match, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("languagetool request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("languagetool: status %d", resp.StatusCode)
	}

	var parsed ltResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("languagetool: decode response: %w", err)
	}

	c.logger.Debug("languagetool check done",
		"matches", len(parsed.Matches),
		"elapsed", time.Since(start))

	matches := make([]Match, 0, len(parsed.Matches))
	for _, m := range parsed.Matches {
		replacements := make([]string, 0, len(m.Replacements))
		for _, r := range m.Replacements {
			replacements = append(replacements, r.Value)
		}
		matches = append(matches, Match{
			RuleID:       m.Rule.ID,
			Message:      m.Message,
			Context:      m.Context.Text,
			Offset:       m.Offset,
			Length:       m.Length,
			Replacements: replacements,
			Category:     m.Rule.Category.ID,
		})
	}
	return matches, nil
}
