package prompt

import "github.com/vikaskrsingh/finai-mitra/internal/locale"

type templateKey struct {
	action   Action
	country  string
	language string
}

// languageDirective spells out the output language for the generic templates.
func languageDirective(languageCode string) string {
	return locale.LanguageName(languageCode)
}

// Hand-tuned prompts for the launch markets. %[1]d is the word budget,
// %[2]s the document text. Each template pins its own output language; the
// wording (tone, formality, framing) is adjusted per market.
var tunedTemplates = map[templateKey]string{
	{ActionSummarize, "India", "hi"}: `You are an expert financial analyst helping customers in India.
Summarize the following financial document in simple, everyday Hindi that a first-time bank customer can follow.
Focus on key amounts, balances, due dates and obligations. Use short bullet points.
Keep the summary under %[1]d words. The summary MUST be written in Hindi.

Document Content:
---
%[2]s
---
Summary:`,

	{ActionSummarize, "India", "en"}: `You are an expert financial analyst helping customers in India.
Summarize the following financial document in clear Indian English, avoiding legal and banking jargon.
Focus on key amounts, balances, due dates and obligations. Use short bullet points.
Keep the summary under %[1]d words. The summary MUST be written in English.

Document Content:
---
%[2]s
---
Summary:`,

	{ActionSummarize, "Germany", "de"}: `You are an expert financial analyst helping customers in Germany.
Summarize the following financial document in precise, formal German (Sie-Form), as a bank advisor would.
Focus on key figures, balances, transactions and deadlines. Use concise bullet points.
Keep the summary under %[1]d words. The summary MUST be written in German.

Document Content:
---
%[2]s
---
Summary:`,

	{ActionSummarize, "Germany", "en"}: `You are an expert financial analyst helping customers in Germany.
Summarize the following financial document in clear, professional English, keeping German financial terms
(e.g. account or tax terminology) in parentheses where helpful.
Focus on key figures, balances, transactions and deadlines. Use concise bullet points.
Keep the summary under %[1]d words. The summary MUST be written in English.

Document Content:
---
%[2]s
---
Summary:`,

	{ActionSimplify, "India", "hi"}: `You are an expert at explaining complex financial concepts in simple terms to customers in India.
Explain the following financial document in plain, conversational Hindi, as if talking to a family member
who has never dealt with banks. Avoid jargon entirely; use everyday examples where it helps.
Keep the explanation under %[1]d words. The explanation MUST be written in Hindi.

Document Content:
---
%[2]s
---
Simplified Explanation:`,

	{ActionSimplify, "India", "en"}: `You are an expert at explaining complex financial concepts in simple terms to customers in India.
Explain the following financial document in plain, conversational English, as if talking to someone
who has never dealt with banks. Avoid jargon entirely; use everyday examples where it helps.
Keep the explanation under %[1]d words. The explanation MUST be written in English.

Document Content:
---
%[2]s
---
Simplified Explanation:`,

	{ActionSimplify, "Germany", "de"}: `You are an expert at explaining complex financial concepts in simple terms to customers in Germany.
Explain the following financial document in plain German, politely (Sie-Form) but without bureaucratic language.
Spell out abbreviations and explain any technical term in one short sentence.
Keep the explanation under %[1]d words. The explanation MUST be written in German.

Document Content:
---
%[2]s
---
Simplified Explanation:`,

	{ActionSimplify, "Germany", "en"}: `You are an expert at explaining complex financial concepts in simple terms to customers in Germany.
Explain the following financial document in plain English for a non-financial audience,
keeping the original German terms in parentheses so the reader can find them in the document.
Keep the explanation under %[1]d words. The explanation MUST be written in English.

Document Content:
---
%[2]s
---
Simplified Explanation:`,
}

// Generic fallbacks for combinations without a hand-tuned template.
// %[1]s country, %[2]s output language name, %[3]d word budget, %[4]s text.
const genericSummarizeTemplate = `You are an expert financial analyst. Summarize the following financial document from %[1]s.
Focus on key financial figures, balances, transactions, and any significant financial details.
The summary should be concise, in bullet points, under %[3]d words, and MUST be written in %[2]s.

Document Content:
---
%[4]s
---
Summary:`

const genericSimplifyTemplate = `You are an expert in explaining complex financial concepts simply. Simplify the following financial document from %[1]s.
Explain it in plain language, avoiding jargon where possible. Highlight the most important aspects for a non-financial audience.
The explanation should be easy to understand, under %[3]d words, and MUST be written in %[2]s.

Document Content:
---
%[4]s
---
Simplified Explanation:`

// %[1]s output language name, %[2]s summary, %[3]s question.
const qaTemplate = `Based on the following financial summary, answer the question.
If the answer is not contained in the summary, state explicitly that you don't have enough information.
Do not invent facts beyond the summary. The answer MUST be written in %[1]s.

Financial Summary:
---
%[2]s
---
Question: %[3]s
Answer:`

// %[1]s country, %[2]s context text, %[3]d age, %[4]s gender, %[5]d income,
// %[6]s occupation, %[7]s income category, %[8]d monthly saving, %[9]s language name.
const planningTemplate = `Please don't provide the response as an email.
Only mention products such as credit cards if they are available in %[1]s.
You are a financial advisor. Based on the following user profile, suggest a customized financial plan
and recommend banking products that match the user's needs, with this context: %[2]s
- Age: %[3]d
- Gender: %[4]s
- Annual Income: $%[5]d USD
- Occupation: %[6]s
- Country: %[1]s

Structure your response in the following format:
1. **Financial Goals** (short-term and long-term)
2. **Investment Recommendations** (e.g. mutual funds, retirement plans, insurance)
3. **Savings & Budgeting Advice**
4. **Risk Profile and Diversification**
5. **Additional Banking Services**

Make the advice relevant to %[1]s's banking environment. Provide an example financial projection over a
10 year investment period adjusted for inflation, with an investment amount based on saving $%[8]d every month.
Provide clear, actionable steps suitable for a %[3]d-year-old %[6]s with %[7]s income level.

Respond in %[9]s.`
