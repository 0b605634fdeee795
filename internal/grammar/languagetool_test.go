package grammar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const ltCheckResponse = `{
  "matches": [
    {
      "message": "Use the base form of the verb.",
      "offset": 4,
      "length": 4,
      "replacements": [{"value": "doesn't"}, {"value": "didn't"}],
      "context": {"text": "She dont like it", "offset": 4, "length": 4},
      "rule": {
        "id": "DID_BASEFORM",
        "category": {"id": "GRAMMAR", "name": "Grammar"}
      }
    },
    {
      "message": "Possible spelling mistake found.",
      "offset": 4,
      "length": 4,
      "replacements": [{"value": "don't"}],
      "context": {"text": "She dont like it", "offset": 4, "length": 4},
      "rule": {
        "id": "MORFOLOGIK_RULE_EN_US",
        "category": {"id": "TYPOS", "name": "Possible Typo"}
      }
    }
  ]
}`

func TestLanguageToolCheck(t *testing.T) {
	var gotText, gotLanguage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/v2/check" {
			t.Errorf("path = %s, want /v2/check", r.URL.Path)
		}
		gotText = r.FormValue("text")
		gotLanguage = r.FormValue("language")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(ltCheckResponse))
	}))
	defer server.Close()

	client := NewLanguageToolClient(server.URL, "en-US", nil)
	matches, err := client.Check(context.Background(), "She dont like it")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	if gotText != "She dont like it" {
		t.Errorf("server received text %q", gotText)
	}
	if gotLanguage != "en-US" {
		t.Errorf("server received language %q, want en-US", gotLanguage)
	}

	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}

	m := matches[0]
	if m.RuleID != "DID_BASEFORM" {
		t.Errorf("RuleID = %q, want DID_BASEFORM", m.RuleID)
	}
	if m.Message != "Use the base form of the verb." {
		t.Errorf("Message = %q", m.Message)
	}
	if m.Offset != 4 || m.Length != 4 {
		t.Errorf("span = [%d,%d), want [4,8)", m.Offset, m.Offset+m.Length)
	}
	if m.Context != "She dont like it" {
		t.Errorf("Context = %q", m.Context)
	}
	if m.Category != "GRAMMAR" {
		t.Errorf("Category = %q, want GRAMMAR", m.Category)
	}
	if len(m.Replacements) != 2 || m.Replacements[0] != "doesn't" || m.Replacements[1] != "didn't" {
		t.Errorf("Replacements = %v", m.Replacements)
	}

	if matches[1].RuleID != "MORFOLOGIK_RULE_EN_US" {
		t.Errorf("matches[1].RuleID = %q; the client must not filter, that is the shaper's job", matches[1].RuleID)
	}
}

func TestLanguageToolServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewLanguageToolClient(server.URL, "en-US", nil)
	if _, err := client.Check(context.Background(), "some text"); err == nil {
		t.Error("Check expected error on non-200 response")
	}
}

func TestLanguageToolUnreachable(t *testing.T) {
	client := NewLanguageToolClient("http://127.0.0.1:1", "en-US", nil)
	if _, err := client.Check(context.Background(), "some text"); err == nil {
		t.Error("Check expected error when the server is unreachable")
	}
}

func TestLanguageToolDefaults(t *testing.T) {
	client := NewLanguageToolClient("", "", nil)
	if client.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", client.baseURL, DefaultBaseURL)
	}
	if client.language != "en-US" {
		t.Errorf("language = %q, want en-US", client.language)
	}
}
