// Package classify gates the pipeline on whether a document is financial.
//
// Classification is deliberately fail-closed: empty text, gateway errors and
// unparseable model responses all classify as not financial, because letting
// non-financial content through to generation is worse than occasionally
// rejecting a valid document.
package classify

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vikaskrsingh/finai-mitra/internal/llm"
	"github.com/vikaskrsingh/finai-mitra/internal/logger"
)

// maxClassificationChars bounds the document prefix sent for classification,
// keeping request cost independent of document size.
const maxClassificationChars = 5000

// Result is the outcome of one classification, with the raw model response
// retained for diagnostics. Results are never cached across runs.
type Result struct {
	Financial   bool
	RawResponse string
}

// Classifier asks the language model whether text is a financial document.
type Classifier struct {
	gateway llm.Gateway
	log     zerolog.Logger
}

// NewClassifier creates a classifier over the given gateway.
func NewClassifier(gateway llm.Gateway) *Classifier {
	return &Classifier{
		gateway: gateway,
		log:     logger.WithComponent("classify"),
	}
}

// IsFinancial classifies the text. languageHint is the user's output language;
// the classification response itself is always requested in English.
func (c *Classifier) IsFinancial(ctx context.Context, text, languageHint string) Result {
	if strings.TrimSpace(text) == "" {
		c.log.Debug().Msg("Empty text, classifying as non-financial without a model call")
		return Result{Financial: false}
	}

	prefix := text
	if len(prefix) > maxClassificationChars {
		prefix = prefix[:maxClassificationChars]
	}

	// The prompt pins its own output language, so it bypasses the gateway's
	// language directive.
	raw, err := c.gateway.GenerateRaw(ctx, classificationPrompt(prefix))
	if err != nil {
		c.log.Error().
			Err(err).
			Str("language_hint", languageHint).
			Msg("Classification call failed, assuming non-financial")
		return Result{Financial: false}
	}

	return Result{Financial: parseVerdict(raw), RawResponse: raw}
}

// parseVerdict reads the model's YES/NO answer. Anything that contains
// neither counts as NO.
func parseVerdict(response string) bool {
	upper := strings.ToUpper(response)
	if strings.Contains(upper, "YES") {
		return true
	}
	return false
}

func classificationPrompt(text string) string {
	return fmt.Sprintf(`Analyze the following document content and determine if it appears to be a financial document
(e.g., invoice, bank statement, financial report, loan document, tax form, balance sheet, income statement, insurance policy).
Respond with 'YES' if it is clearly financial, 'NO' if it is not.
The response MUST be in English.

Document Content:
---
%s
---
Classification:`, text)
}
