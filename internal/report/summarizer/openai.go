package summarizer

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
	apperrors "github.com/insideimaging/insideimaging-backend/pkg/errors"
	"github.com/insideimaging/insideimaging-backend/pkg/logger"
)

// OpenAISummarizer produces the summary through the chat completions API.
// The request carries only redacted section text plus age, sex and study
// type; names and dates never leave the service.
type OpenAISummarizer struct {
	client    *openai.Client
	model     string
	timeout   time.Duration
	maxTokens int
	logger    *logger.Logger
}

func NewOpenAISummarizer(apiKey, model string, timeout time.Duration, maxTokens int, log *logger.Logger) *OpenAISummarizer {
	return &OpenAISummarizer{
		client:    openai.NewClient(apiKey),
		model:     model,
		timeout:   timeout,
		maxTokens: maxTokens,
		logger:    log.WithComponent("openai_summarizer"),
	}
}

func (s *OpenAISummarizer) Name() string { return "openai" }

func (s *OpenAISummarizer) Summarize(ctx context.Context, in Input) (domain.StructuredSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(in.Language)},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(in)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return domain.StructuredSummary{}, apperrors.Wrap(err, "SUMMARIZER_FAILED", "language model request failed", 502)
	}
	if len(resp.Choices) == 0 {
		return domain.StructuredSummary{}, apperrors.New("SUMMARIZER_EMPTY", "language model returned no output", 502)
	}

	payload, ok := extractJSONLoose(resp.Choices[0].Message.Content)
	if !ok {
		return domain.StructuredSummary{}, apperrors.New("SUMMARIZER_BAD_OUTPUT", "language model output was not valid JSON", 502)
	}

	s.logger.Debug().
		Str("model", s.model).
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("summary generated")

	return domain.StructuredSummary{
		Reason:     strings.TrimSpace(payload.Reason),
		Technique:  strings.TrimSpace(payload.Technique),
		Findings:   strings.TrimSpace(payload.Findings),
		Conclusion: strings.TrimSpace(payload.Conclusion),
		Concern:    strings.TrimSpace(payload.Concern),
		Language:   in.Language,
	}, nil
}

type summaryPayload struct {
	Reason     string `json:"reason"`
	Technique  string `json:"technique"`
	Findings   string `json:"findings"`
	Conclusion string `json:"conclusion"`
	Concern    string `json:"concern"`
}

func systemPrompt(language string) string {
	return fmt.Sprintf(
		"You are a medical report summarizer for the public. "+
			"Write all output in %s. "+
			"Return ONLY a JSON object with keys: reason, technique, findings, conclusion, concern. "+
			"Write for a 12-year-old. One or two short sentences per field. Plain words. No jargon. No treatment advice. "+
			"In findings and conclusion, wrap important phrases with **double asterisks**. "+
			"For GOOD news use words like: normal, no problem, no sign of, benign, stable, improved. "+
			"For BAD news use words like: mass, tumor, cancer, bleed, fracture, obstruction, perforation, ischemia, rupture, lesion. "+
			"Keep numbers simple and rounded. Do not include any names, dates or identifiers. "+
			"No extra keys or text outside the JSON.",
		language,
	)
}

func userPrompt(in Input) string {
	var sb strings.Builder
	if in.Study != "" {
		fmt.Fprintf(&sb, "Study: %s\n", in.Study)
	}
	if in.Age != "" {
		fmt.Fprintf(&sb, "Age: %s\n", in.Age)
	}
	if in.Sex != "" {
		fmt.Fprintf(&sb, "Sex: %s\n", in.Sex)
	}
	fmt.Fprintf(&sb, "\nReason section:\n%s\n\n", strings.TrimSpace(in.Sections.Reason))
	fmt.Fprintf(&sb, "Technique section:\n%s\n\n", strings.TrimSpace(in.Sections.Technique))
	fmt.Fprintf(&sb, "Findings section:\n%s\n\n", strings.TrimSpace(in.Sections.Findings))
	fmt.Fprintf(&sb, "Impression/Conclusion section:\n%s\n", strings.TrimSpace(in.Sections.Impression))
	return sb.String()
}

var jsonObject = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSONLoose parses the model output as JSON, falling back to the
// outermost brace-delimited block when the model wraps the object in prose
// or a code fence.
func extractJSONLoose(s string) (summaryPayload, bool) {
	var payload summaryPayload
	if err := json.Unmarshal([]byte(s), &payload); err == nil {
		return payload, true
	}
	m := jsonObject.FindString(s)
	if m == "" {
		return summaryPayload{}, false
	}
	if err := json.Unmarshal([]byte(m), &payload); err != nil {
		return summaryPayload{}, false
	}
	return payload, true
}
