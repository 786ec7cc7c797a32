// Package prompt builds the instruction prompts sent to the language model.
//
// Building is pure: a prompt is fully determined by (action, country,
// language, text) plus the configured word budget. Hand-tuned templates exist
// for the country/language pairs the product was written for; every other
// combination falls back to a generic template parameterized by language.
package prompt

import "fmt"

// Action is the user-selected operation over a document.
type Action string

const (
	ActionSummarize Action = "Summarize"
	ActionSimplify  Action = "Simplify"
	ActionPlanning  Action = "Financial Planning"
)

// Actions lists the selectable actions in display order.
var Actions = []Action{ActionSummarize, ActionSimplify, ActionPlanning}

// ParseAction maps a user-supplied action name to an Action.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionSummarize, ActionSimplify, ActionPlanning:
		return Action(s), nil
	default:
		return "", fmt.Errorf("unknown action %q", s)
	}
}

// Builder produces prompts under a configured output word budget.
type Builder struct {
	maxWords int
}

// NewBuilder creates a builder with the given summary word budget.
func NewBuilder(maxWords int) *Builder {
	return &Builder{maxWords: maxWords}
}

// Build returns the generation prompt for a Summarize or Simplify run.
// Country/language pairs with a hand-tuned template get it; everything else
// uses the generic template for the action.
func (b *Builder) Build(action Action, text, country, languageCode string) string {
	key := templateKey{action: action, country: country, language: languageCode}
	if tpl, ok := tunedTemplates[key]; ok {
		return fmt.Sprintf(tpl, b.maxWords, text)
	}

	generic := genericSummarizeTemplate
	if action == ActionSimplify {
		generic = genericSimplifyTemplate
	}
	return fmt.Sprintf(generic, country, languageDirective(languageCode), b.maxWords, text)
}

// QA returns the question-answering prompt grounded on the current summary.
// The model is told to say so when the answer is not contained in the summary.
func (b *Builder) QA(summary, question, languageCode string) string {
	return fmt.Sprintf(qaTemplate, languageDirective(languageCode), summary, question)
}

// Profile describes the user asking for a financial plan.
type Profile struct {
	Age             int
	Gender          string
	Occupation      string
	AnnualIncomeUSD int
}

// IncomeCategory buckets the annual income into low, moderate or high.
func (p Profile) IncomeCategory() string {
	switch {
	case p.AnnualIncomeUSD < 30000:
		return "low"
	case p.AnnualIncomeUSD < 80000:
		return "moderate"
	default:
		return "high"
	}
}

// Recommendation returns the financial-planning prompt for a user profile.
// contextText is the current processed output, if any; it may be empty.
func (b *Builder) Recommendation(p Profile, country, languageCode, contextText string) string {
	monthly := p.AnnualIncomeUSD / 240
	return fmt.Sprintf(planningTemplate,
		country,
		contextText,
		p.Age,
		p.Gender,
		p.AnnualIncomeUSD,
		p.Occupation,
		p.IncomeCategory(),
		monthly,
		languageDirective(languageCode),
	)
}
