package classify

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeGateway struct {
	rawCalls      int
	generateCalls int
	lastPrompt    string
	response      string
	err           error
}

func (f *fakeGateway) Generate(ctx context.Context, prompt, languageCode string) (string, error) {
	f.generateCalls++
	return f.response, f.err
}

func (f *fakeGateway) GenerateRaw(ctx context.Context, prompt string) (string, error) {
	f.rawCalls++
	f.lastPrompt = prompt
	return f.response, f.err
}

func TestEmptyTextShortCircuits(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t  \n"} {
		gw := &fakeGateway{response: "YES"}
		c := NewClassifier(gw)

		res := c.IsFinancial(context.Background(), text, "en")
		if res.Financial {
			t.Errorf("text %q must classify as non-financial", text)
		}
		if gw.rawCalls != 0 || gw.generateCalls != 0 {
			t.Errorf("text %q must not trigger a model call", text)
		}
	}
}

func TestVerdictParsing(t *testing.T) {
	tests := []struct {
		response string
		want     bool
	}{
		{"YES", true},
		{"yes", true},
		{"Yes, this is clearly a bank statement.", true},
		{"NO", false},
		{"no, this is a recipe", false},
		{"I cannot determine this.", false},
		{"", false},
	}
	for _, tt := range tests {
		gw := &fakeGateway{response: tt.response}
		c := NewClassifier(gw)

		res := c.IsFinancial(context.Background(), "Invoice #123, amount due $500", "en")
		if res.Financial != tt.want {
			t.Errorf("response %q classified as %v, want %v", tt.response, res.Financial, tt.want)
		}
		if res.RawResponse != tt.response {
			t.Errorf("raw response not retained: got %q", res.RawResponse)
		}
	}
}

func TestGatewayErrorAssumesNonFinancial(t *testing.T) {
	gw := &fakeGateway{err: errors.New("model unavailable")}
	c := NewClassifier(gw)

	res := c.IsFinancial(context.Background(), "Invoice #123", "de")
	if res.Financial {
		t.Error("gateway errors must classify as non-financial")
	}
}

func TestClassificationUsesRawPathAndEnglish(t *testing.T) {
	gw := &fakeGateway{response: "NO"}
	c := NewClassifier(gw)

	c.IsFinancial(context.Background(), "The quick brown fox jumps over the lazy dog", "hi")
	if gw.rawCalls != 1 {
		t.Fatalf("expected one raw call, got %d", gw.rawCalls)
	}
	if gw.generateCalls != 0 {
		t.Error("classification must bypass the language-directive path")
	}
	if !strings.Contains(gw.lastPrompt, "MUST be in English") {
		t.Error("classification response language must be pinned to English")
	}
	if !strings.Contains(gw.lastPrompt, "The quick brown fox") {
		t.Error("classification prompt must embed the document text")
	}
}

func TestLongTextIsTruncated(t *testing.T) {
	gw := &fakeGateway{response: "YES"}
	c := NewClassifier(gw)

	long := strings.Repeat("a", 3*maxClassificationChars)
	c.IsFinancial(context.Background(), long, "en")

	if len(gw.lastPrompt) > maxClassificationChars+1000 {
		t.Errorf("classification prompt too long: %d chars", len(gw.lastPrompt))
	}
	if !strings.Contains(gw.lastPrompt, strings.Repeat("a", 100)) {
		t.Error("truncated prefix must still be present")
	}
}
