package grammar

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeEngine struct {
	matches  []Match
	err      error
	calls    int
	lastText string
}

func (f *fakeEngine) Check(_ context.Context, text string) ([]Match, error) {
	f.calls++
	f.lastText = text
	if f.err != nil {
		return nil, f.err
	}
	return f.matches, nil
}

func TestShaperEmptyInput(t *testing.T) {
	engine := &fakeEngine{}
	s := NewShaper(engine, "MORFOLOGIK_RULE", nil)

	for _, text := range []string{"", "   ", "\t\n"} {
		rep := s.Run(context.Background(), text)
		if len(rep.Issues) != 0 {
			t.Errorf("Run(%q): %d issues, want 0", text, len(rep.Issues))
		}
		if rep.Status != StatusOK {
			t.Errorf("Run(%q): status %q, want %q", text, rep.Status, StatusOK)
		}
	}

	if engine.calls != 0 {
		t.Errorf("engine called %d times for empty input, want 0", engine.calls)
	}
}

func TestShaperFiltersSpellingRules(t *testing.T) {
	text := "She dont like it"
	engine := &fakeEngine{matches: []Match{
		{RuleID: "MORFOLOGIK_RULE_EN_US", Message: "Possible spelling mistake", Offset: 4, Length: 4},
		{RuleID: "DID_BASEFORM", Message: "Use the base form", Offset: 4, Length: 4, Category: "GRAMMAR"},
	}}
	s := NewShaper(engine, "MORFOLOGIK_RULE", nil)

	issues := s.Check(context.Background(), text)
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(issues))
	}
	if issues[0].RuleID != "DID_BASEFORM" {
		t.Errorf("RuleID = %q, want DID_BASEFORM", issues[0].RuleID)
	}
	for _, issue := range issues {
		if strings.HasPrefix(issue.RuleID, "MORFOLOGIK_RULE") {
			t.Errorf("spelling rule %q leaked into output", issue.RuleID)
		}
	}
}

func TestShaperCapsReplacements(t *testing.T) {
	tests := []struct {
		name         string
		replacements []string
		want         []string
	}{
		{name: "more than three", replacements: []string{"a", "b", "c", "d", "e"}, want: []string{"a", "b", "c"}},
		{name: "exactly three", replacements: []string{"a", "b", "c"}, want: []string{"a", "b", "c"}},
		{name: "fewer than three", replacements: []string{"a"}, want: []string{"a"}},
		{name: "none", replacements: nil, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &fakeEngine{matches: []Match{
				{RuleID: "R1", Offset: 0, Length: 4, Replacements: tt.replacements},
			}}
			s := NewShaper(engine, "MORFOLOGIK_RULE", nil)

			issues := s.Check(context.Background(), "some text")
			if len(issues) != 1 {
				t.Fatalf("got %d issues, want 1", len(issues))
			}
			got := issues[0].Replacements
			if got == nil {
				t.Fatal("Replacements is nil, want a slice")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Replacements = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Replacements[%d] = %q, want %q (order must be preserved)", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestShaperBadWordSlicing(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		length int
		want   string
	}{
		{name: "ascii span", text: "She dont like it", offset: 4, length: 4, want: "dont"},
		{name: "multibyte runes", text: "héllo wörld again", offset: 6, length: 5, want: "wörld"},
		{name: "span past end clamped", text: "short", offset: 2, length: 50, want: "ort"},
		{name: "offset past end", text: "short", offset: 50, length: 3, want: ""},
		{name: "negative offset", text: "short", offset: -1, length: 3, want: ""},
		{name: "zero length", text: "short", offset: 1, length: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &fakeEngine{matches: []Match{
				{RuleID: "R1", Offset: tt.offset, Length: tt.length},
			}}
			s := NewShaper(engine, "MORFOLOGIK_RULE", nil)

			issues := s.Check(context.Background(), tt.text)
			if len(issues) != 1 {
				t.Fatalf("got %d issues, want 1", len(issues))
			}
			if issues[0].BadWord != tt.want {
				t.Errorf("BadWord = %q, want %q", issues[0].BadWord, tt.want)
			}
		})
	}
}

func TestShaperPreservesEngineOrder(t *testing.T) {
	engine := &fakeEngine{matches: []Match{
		{RuleID: "THIRD", Offset: 20, Length: 2},
		{RuleID: "FIRST", Offset: 0, Length: 2},
		{RuleID: "SECOND", Offset: 10, Length: 2},
	}}
	s := NewShaper(engine, "MORFOLOGIK_RULE", nil)

	issues := s.Check(context.Background(), strings.Repeat("word ", 10))
	want := []string{"THIRD", "FIRST", "SECOND"}
	if len(issues) != len(want) {
		t.Fatalf("got %d issues, want %d", len(issues), len(want))
	}
	for i, id := range want {
		if issues[i].RuleID != id {
			t.Errorf("issues[%d].RuleID = %q, want %q", i, issues[i].RuleID, id)
		}
	}
}

func TestShaperEngineFailure(t *testing.T) {
	engine := &fakeEngine{err: errors.New("server unreachable")}
	s := NewShaper(engine, "MORFOLOGIK_RULE", nil)

	rep := s.Run(context.Background(), "some text")
	if len(rep.Issues) != 0 {
		t.Errorf("got %d issues after engine failure, want 0", len(rep.Issues))
	}
	if rep.Issues == nil {
		t.Error("Issues is nil, want an empty slice")
	}
	if !strings.HasPrefix(rep.Status, "degraded") {
		t.Errorf("Status = %q, want degraded prefix", rep.Status)
	}

	// Check swallows the failure entirely.
	if issues := s.Check(context.Background(), "some text"); len(issues) != 0 {
		t.Errorf("Check returned %d issues after engine failure, want 0", len(issues))
	}
}

func TestShaperPassesFullText(t *testing.T) {
	engine := &fakeEngine{}
	s := NewShaper(engine, "MORFOLOGIK_RULE", nil)

	text := "The full document body, untruncated."
	s.Check(context.Background(), text)
	if engine.lastText != text {
		t.Errorf("engine received %q, want the full text", engine.lastText)
	}
	if engine.calls != 1 {
		t.Errorf("engine called %d times, want 1", engine.calls)
	}
}
