package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// InsufficientContextMessage is returned by Answer when there is no context
// to ground a response in. No model call is made in that case.
const InsufficientContextMessage = "I don't have enough context to answer this question. Please upload a document first."

const (
	// Generation stays near-deterministic; the contracts below depend on
	// the model following instructions, not on creative variation.
	defaultTemperature = 0.3
	defaultMaxTokens   = 2048
)

// Client wraps a generative model with the prompt contracts of the
// assistant: grounded answering, clause rewriting, red-flag detection,
// document generation, summarization and the drafting helpers (completion,
// language improvement, alternative phrasings, improvement suggestions).
//
// The model handle is created once at startup and shared across requests.
type Client struct {
	model llms.Model
}

// NewClient creates a new generative client around an initialized model.
func NewClient(model llms.Model) *Client {
	return &Client{model: model}
}

// Answer answers a question grounded in the given context chunks, in
// retrieval order. With no chunks it returns InsufficientContextMessage
// without calling the model; the guard is a cost and latency control, not an
// error path.
func (c *Client) Answer(ctx context.Context, question string, contextChunks []string) (string, error) {
	if len(contextChunks) == 0 {
		return InsufficientContextMessage, nil
	}

	contextText := strings.Join(contextChunks, "\n\n")

	prompt := fmt.Sprintf(`You are a legal assistant expert. Answer the following question based on the provided legal document context.

Context:
%s

Question: %s

Answer the question accurately and concisely. If the answer cannot be found in the context, say so.`, contextText, question)

	return c.generate(ctx, prompt)
}

// RewriteClause rewrites a legal clause according to the instruction. The
// contract is exactly one rewritten version: the prompt forbids options and
// commentary, and the output is post-processed to strip wrapping the model
// may still add.
func (c *Client) RewriteClause(ctx context.Context, clause, instruction string) (string, error) {
	prompt := fmt.Sprintf(`You are a legal expert. Rewrite the following legal clause according to the instruction provided.

Original clause:
%s

Instruction: %s

IMPORTANT: Return ONLY the rewritten clause. Do not include explanations, multiple options, or any additional text. Just provide the single rewritten version of the clause.`, clause, instruction)

	out, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return stripWrapping(out), nil
}

// DetectRedFlags analyzes legal text for risks and problematic clauses.
// Parse failure of the model's JSON output is recoverable: the report
// degrades to carrying the raw text, it never returns an error for that.
func (c *Client) DetectRedFlags(ctx context.Context, text string) (*RedFlagReport, error) {
	prompt := fmt.Sprintf(`You are a legal risk assessment expert. Analyze the following legal text and identify potential red flags, risks, or problematic clauses.

Text to analyze:
%s

Please provide a JSON response with the following structure:
{
    "red_flags": [
        {
            "type": "risk_category",
            "description": "description of the risk",
            "severity": "high/medium/low",
            "suggestion": "suggestion for improvement"
        }
    ],
    "overall_risk_level": "high/medium/low",
    "summary": "brief summary of findings"
}

Focus on:
- Unclear or ambiguous language
- Unfair terms
- Missing important clauses
- Excessive liability
- Unreasonable obligations`, text)

	out, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return parseRedFlagReport(out), nil
}

// GenerateDocument drafts a new legal document of the given type from a
// structured details mapping.
func (c *Client) GenerateDocument(ctx context.Context, docType string, details map[string]string) (string, error) {
	prompt := fmt.Sprintf(`You are a legal document generator. Create a %s based on the following details:

Details:
%s

Please generate a complete, legally sound %s document. Include all necessary sections, proper formatting, and standard legal language.`, docType, formatDetails(details), docType)

	return c.generate(ctx, prompt)
}

// Summarize produces a structured summary of a legal document.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`You are a legal expert. Provide a comprehensive summary of the following legal document:

Document:
%s

Please provide a structured summary including:
1. Document type and purpose
2. Key parties involved
3. Main terms and conditions
4. Important dates and deadlines
5. Key obligations and rights
6. Any notable clauses or provisions`, text)

	return c.generate(ctx, prompt)
}

// AutoComplete continues a partial piece of legal text. The background is
// optional surrounding material the continuation should stay consistent with.
func (c *Client) AutoComplete(ctx context.Context, text, background string) (string, error) {
	prompt := fmt.Sprintf(`You are a legal expert. Complete the following legal text in a natural and legally sound way:

%s

Context (if any): %s

Please continue the text in a way that makes legal sense and follows proper legal writing conventions. Return ONLY the continuation, without repeating the original text.`, text, background)

	out, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return stripWrapping(out), nil
}

// ImproveLanguage rewrites legal text for clarity and precision while
// preserving its legal meaning.
func (c *Client) ImproveLanguage(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`You are a legal writing expert. Improve the following legal text for clarity, precision, and readability while maintaining its legal meaning:

Original text:
%s

Please provide an improved version that:
1. Is clearer and more readable
2. Uses precise legal language
3. Eliminates ambiguity
4. Maintains the original legal intent
5. Follows proper legal writing conventions`, text)

	return c.generate(ctx, prompt)
}

// SuggestAlternatives produces three alternative phrasings of a legal text
// at different levels of formality and detail.
func (c *Client) SuggestAlternatives(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`You are a legal expert. Provide 3 alternative phrasings for the following legal text, each with different levels of formality and emphasis:

Original text:
%s

Please provide:
1. A more formal/technical version
2. A clearer/simpler version
3. A more comprehensive/detailed version

For each alternative, explain the key differences and when it might be preferred.`, text)

	return c.generate(ctx, prompt)
}

// SuggestImprovements reviews a whole document and returns concrete
// suggestions for improving it.
func (c *Client) SuggestImprovements(ctx context.Context, content string) (string, error) {
	prompt := fmt.Sprintf(`Analyze this legal document and provide specific suggestions for improvement:

%s

Please provide suggestions in the following areas:
1. Clarity and readability
2. Legal completeness
3. Risk mitigation
4. Missing clauses
5. Ambiguous language`, content)

	return c.generate(ctx, prompt)
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	out, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt,
		llms.WithTemperature(defaultTemperature),
		llms.WithMaxTokens(defaultMaxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// parseRedFlagReport decodes the model output into a RedFlagReport,
// degrading to a raw-text report when decoding fails.
func parseRedFlagReport(out string) *RedFlagReport {
	payload := extractJSONObject(out)

	var report RedFlagReport
	if payload != "" && json.Unmarshal([]byte(payload), &report) == nil && report.OverallRiskLevel != "" {
		if report.RedFlags == nil {
			report.RedFlags = []RedFlag{}
		}
		return &report
	}

	return &RedFlagReport{
		RedFlags:         []RedFlag{},
		OverallRiskLevel: RiskLevelUnknown,
		Summary:          out,
		Raw:              out,
	}
}

// extractJSONObject returns the first top-level {...} block in s, tolerating
// the markdown code fences models like to wrap JSON in.
func extractJSONObject(s string) string {
	s = strings.TrimSpace(s)
	if fenced, ok := strings.CutPrefix(s, "```json"); ok {
		s = fenced
	} else if fenced, ok := strings.CutPrefix(s, "```"); ok {
		s = fenced
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return s[start : end+1]
}

// stripWrapping removes code fences and wrapping quotes the model sometimes
// adds around a single-clause answer.
func stripWrapping(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if idx := strings.Index(s, "\n"); idx != -1 && !strings.ContainsAny(s[:idx], " .") {
			s = s[idx+1:] // drop a language tag line
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}

// formatDetails renders the details mapping as stable "key: value" lines.
func formatDetails(details map[string]string) string {
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "- %s: %s\n", k, details[k])
	}
	return b.String()
}
