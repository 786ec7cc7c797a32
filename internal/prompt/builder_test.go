package prompt

import (
	"strings"
	"testing"
)

const docText = "Kontoauszug: Saldo 1.234,56 EUR zum 31.12.2024"

func TestBuildGermanySummarizeRoundTrip(t *testing.T) {
	b := NewBuilder(250)

	german := b.Build(ActionSummarize, docText, "Germany", "de")
	if !strings.Contains(german, docText) {
		t.Error("prompt must contain the document text verbatim")
	}
	if !strings.Contains(german, "MUST be written in German") {
		t.Error("Germany/de prompt must instruct a German response")
	}

	english := b.Build(ActionSummarize, docText, "Germany", "en")
	if !strings.Contains(english, docText) {
		t.Error("switching language must preserve the document text verbatim")
	}
	if !strings.Contains(english, "MUST be written in English") {
		t.Error("Germany/en prompt must instruct an English response")
	}
	if strings.Contains(english, "MUST be written in German") {
		t.Error("Germany/en prompt must not instruct a German response")
	}
}

func TestBuildTunedTemplatesCoverLaunchMarkets(t *testing.T) {
	b := NewBuilder(250)

	combos := []struct {
		country  string
		language string
		want     string
	}{
		{"India", "hi", "Hindi"},
		{"India", "en", "English"},
		{"Germany", "de", "German"},
		{"Germany", "en", "English"},
	}
	for _, action := range []Action{ActionSummarize, ActionSimplify} {
		for _, c := range combos {
			p := b.Build(action, docText, c.country, c.language)
			if !strings.Contains(p, docText) {
				t.Errorf("%s %s/%s: missing document text", action, c.country, c.language)
			}
			if !strings.Contains(p, "MUST be written in "+c.want) {
				t.Errorf("%s %s/%s: missing %s language instruction", action, c.country, c.language, c.want)
			}
		}
	}
}

func TestBuildFallsBackToGenericTemplate(t *testing.T) {
	b := NewBuilder(250)

	p := b.Build(ActionSummarize, docText, "India", "ta")
	if !strings.Contains(p, docText) {
		t.Error("generic prompt must contain the document text")
	}
	if !strings.Contains(p, "MUST be written in Tamil") {
		t.Error("generic prompt must carry the requested language")
	}
	if !strings.Contains(p, "India") {
		t.Error("generic prompt must carry the country")
	}
}

func TestBuildEmbedsWordBudget(t *testing.T) {
	b := NewBuilder(100)

	for _, p := range []string{
		b.Build(ActionSummarize, docText, "Germany", "de"),
		b.Build(ActionSimplify, docText, "India", "en"),
		b.Build(ActionSummarize, docText, "United States", "en"),
	} {
		if !strings.Contains(p, "100 words") {
			t.Errorf("prompt missing configured word budget: %q", p[:80])
		}
	}
}

func TestQAPromptGroundsOnSummary(t *testing.T) {
	b := NewBuilder(250)

	p := b.QA("The account balance is 500 EUR.", "What is the balance?", "de")
	if !strings.Contains(p, "The account balance is 500 EUR.") {
		t.Error("QA prompt must embed the summary as grounding context")
	}
	if !strings.Contains(p, "What is the balance?") {
		t.Error("QA prompt must embed the question")
	}
	if !strings.Contains(p, "don't have enough information") {
		t.Error("QA prompt must instruct the model to admit missing answers")
	}
	if !strings.Contains(p, "MUST be written in German") {
		t.Error("QA prompt must carry the output language")
	}
}

func TestRecommendationPrompt(t *testing.T) {
	b := NewBuilder(250)
	profile := Profile{Age: 34, Gender: "Female", Occupation: "Freelancer", AnnualIncomeUSD: 60000}

	p := b.Recommendation(profile, "Germany", "en", "Previously generated summary.")
	for _, want := range []string{"34", "Freelancer", "Germany", "moderate", "Previously generated summary.", "$250 every month", "Respond in English."} {
		if !strings.Contains(p, want) {
			t.Errorf("recommendation prompt missing %q", want)
		}
	}
}

func TestIncomeCategory(t *testing.T) {
	tests := []struct {
		income int
		want   string
	}{
		{10000, "low"},
		{29999, "low"},
		{30000, "moderate"},
		{79999, "moderate"},
		{80000, "high"},
	}
	for _, tt := range tests {
		p := Profile{AnnualIncomeUSD: tt.income}
		if got := p.IncomeCategory(); got != tt.want {
			t.Errorf("IncomeCategory(%d) = %q, want %q", tt.income, got, tt.want)
		}
	}
}

func TestParseAction(t *testing.T) {
	if _, err := ParseAction("Summarize"); err != nil {
		t.Errorf("ParseAction(Summarize): %v", err)
	}
	if _, err := ParseAction("Translate"); err == nil {
		t.Error("ParseAction must reject unknown actions")
	}
}
