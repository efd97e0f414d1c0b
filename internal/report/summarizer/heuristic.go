package summarizer

import (
	"context"
	"regexp"
	"strings"

	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
	"github.com/insideimaging/insideimaging-backend/internal/report/parser"
)

const (
	maxReasonSentences     = 1
	maxTechniqueSentences  = 1
	maxFindingsSentences   = 6
	maxConclusionSentences = 3
	maxConcernSentences    = 2
)

// concernWords flag sentences that should be surfaced in the note of
// concern when no language model is available
var concernWords = []string{
	"mass", "tumor", "cancer", "bleed", "fracture",
	"obstruction", "perforation", "ischemia", "rupture", "lesion",
}

// HeuristicSummarizer builds the summary directly from the parsed sections
// without any remote call. Output stays close to the report's own wording;
// it is the fallback when no API key is configured or the remote
// summarizer fails.
type HeuristicSummarizer struct{}

func NewHeuristicSummarizer() *HeuristicSummarizer { return &HeuristicSummarizer{} }

func (s *HeuristicSummarizer) Name() string { return "heuristic" }

func (s *HeuristicSummarizer) Summarize(_ context.Context, in Input) (domain.StructuredSummary, error) {
	technique := firstSentences(in.Sections.Technique, maxTechniqueSentences)
	if technique == "" {
		technique = parser.DescribeStudy(in.Study + " " + in.Sections.Technique + " " + in.Sections.Findings)
	}

	return domain.StructuredSummary{
		Reason:     firstSentences(in.Sections.Reason, maxReasonSentences),
		Technique:  technique,
		Findings:   firstSentences(in.Sections.Findings, maxFindingsSentences),
		Conclusion: firstSentences(in.Sections.Impression, maxConclusionSentences),
		Concern:    concernSentences(in.Sections.Findings + " " + in.Sections.Impression),
		Language:   in.Language,
	}, nil
}

var sentenceChunk = regexp.MustCompile(`[^.!?]+[.!?]*`)

func sentences(text string) []string {
	var out []string
	for _, chunk := range sentenceChunk.FindAllString(text, -1) {
		if s := strings.TrimSpace(chunk); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func firstSentences(text string, n int) string {
	all := sentences(text)
	if len(all) > n {
		all = all[:n]
	}
	return strings.Join(all, " ")
}

// concernSentences picks the first sentences that mention a worrying
// finding, skipping negated ones.
func concernSentences(text string) string {
	var picked []string
	for _, sentence := range sentences(text) {
		if len(picked) >= maxConcernSentences {
			break
		}
		low := strings.ToLower(sentence)
		if strings.Contains(low, "no ") || strings.Contains(low, "without") {
			continue
		}
		for _, w := range concernWords {
			if strings.Contains(low, w) {
				picked = append(picked, sentence)
				break
			}
		}
	}
	return strings.Join(picked, " ")
}
