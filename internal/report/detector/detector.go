// Package detector scans anonymized report text for organ and condition
// mentions using keyword tables. Matching is plain lowercase substring
// search, kept deliberately simple so results are reproducible across runs.
package detector

import (
	"regexp"
	"strings"

	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
	"github.com/insideimaging/insideimaging-backend/pkg/logger"
)

// Config tunes the context windows and result caps.
type Config struct {
	NegationWindow      int
	LikelihoodWindow    int
	ContextLeadWindow   int
	MaxConditionsShown  int
	MaxContextSentences int
	MaxOrgansPerContext int
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		NegationWindow:      50,
		LikelihoodWindow:    80,
		ContextLeadWindow:   50,
		MaxConditionsShown:  3,
		MaxContextSentences: 2,
		MaxOrgansPerContext: 2,
	}
}

// Detector runs organ and condition detection over report text.
type Detector struct {
	cfg Config
	log *logger.Logger
}

func New(cfg Config, log *logger.Logger) *Detector {
	return &Detector{cfg: cfg, log: log}
}

var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+`)

// SplitSentences breaks text on terminal punctuation. Text with no
// terminator at all is treated as a single sentence.
func SplitSentences(text string) []string {
	sentences := sentencePattern.FindAllString(text, -1)
	if len(sentences) == 0 {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil
		}
		return []string{trimmed}
	}
	for i, s := range sentences {
		sentences[i] = strings.TrimSpace(s)
	}
	return sentences
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func organKeywords(organ domain.Organ) []string {
	for _, entry := range organTable {
		if entry.Organ == organ {
			return entry.Keywords
		}
	}
	return nil
}

// DetectOrgans returns the organs mentioned in text, in table order.
// Running it twice on the same text yields the same slice.
func (d *Detector) DetectOrgans(text string) []domain.Organ {
	lower := strings.ToLower(text)
	var organs []domain.Organ
	for _, entry := range organTable {
		if containsAny(lower, entry.Keywords) {
			organs = append(organs, entry.Organ)
		}
	}
	return organs
}

// IsOrganNormal reports whether every sentence mentioning the organ reads
// as normal: at least one normal indicator somewhere, and no abnormal
// indicator anywhere near the organ.
func (d *Detector) IsOrganNormal(text string, organ domain.Organ) bool {
	keywords := organKeywords(organ)
	normalCount := 0
	abnormalCount := 0
	for _, sentence := range SplitSentences(text) {
		lower := strings.ToLower(sentence)
		if !containsAny(lower, keywords) {
			continue
		}
		for _, ind := range normalIndicators {
			normalCount += strings.Count(lower, ind)
		}
		for _, ind := range abnormalIndicators {
			abnormalCount += strings.Count(lower, ind)
		}
	}
	return normalCount > 0 && abnormalCount == 0
}

// DetectRegions returns the named sub-regions of an organ that appear in
// the text, in table order.
func (d *Detector) DetectRegions(text string, organ domain.Organ) []string {
	lower := strings.ToLower(text)
	var regions []string
	for _, entry := range regionTable[organ] {
		if containsAny(lower, entry.Keywords) {
			regions = append(regions, entry.Region)
		}
	}
	return regions
}

// ExtractOrganContext picks the sentences most useful for displaying next
// to an organ diagram: the organ must appear early in the sentence, or the
// sentence must be focused on few enough organs that it still reads as
// being about this one. At most MaxContextSentences survive, in document
// order.
func (d *Detector) ExtractOrganContext(text string, organ domain.Organ) []string {
	keywords := organKeywords(organ)
	var context []string
	for _, sentence := range SplitSentences(text) {
		if len(context) >= d.cfg.MaxContextSentences {
			break
		}
		lower := strings.ToLower(sentence)
		earliest := -1
		for _, kw := range keywords {
			if idx := strings.Index(lower, kw); idx >= 0 && (earliest < 0 || idx < earliest) {
				earliest = idx
			}
		}
		if earliest < 0 {
			continue
		}
		if earliest < d.cfg.ContextLeadWindow || d.countOrgans(lower) <= d.cfg.MaxOrgansPerContext {
			context = append(context, sentence)
		}
	}
	return context
}

func (d *Detector) countOrgans(lower string) int {
	count := 0
	for _, entry := range organTable {
		if containsAny(lower, entry.Keywords) {
			count++
		}
	}
	return count
}

// DetectConditions returns the conditions mentioned in text, in table
// order. A keyword hit is discarded when a negating phrase appears in the
// surrounding window at or before the end of the keyword, so "no evidence
// of pneumothorax" does not trigger; a later non-negated mention of the
// same keyword still does.
func (d *Detector) DetectConditions(text string) []Condition {
	lower := strings.ToLower(text)
	var found []Condition
	for _, cond := range conditionTable {
		if d.conditionMentioned(lower, cond) {
			found = append(found, cond)
		}
	}
	return found
}

func (d *Detector) conditionMentioned(lower string, cond Condition) bool {
	for _, kw := range cond.Keywords {
		for _, end := range allOccurrenceEnds(lower, kw) {
			if d.isNegated(lower, end-len(kw), end) {
				d.log.Debug().
					Str("condition", cond.Name).
					Str("keyword", kw).
					Msg("condition mention suppressed by negation")
				continue
			}
			return true
		}
	}
	return false
}

// allOccurrenceEnds returns the end offset of every occurrence of kw.
func allOccurrenceEnds(lower, kw string) []int {
	var ends []int
	for from := 0; ; {
		idx := strings.Index(lower[from:], kw)
		if idx < 0 {
			return ends
		}
		end := from + idx + len(kw)
		ends = append(ends, end)
		from = end
	}
}

// isNegated checks the window around one keyword occurrence for a negating
// phrase that starts at or before the keyword's end. Phrases after the
// keyword ("pneumothorax has resolved") do not negate the mention here;
// they are weighed separately by the likelihood pass.
func (d *Detector) isNegated(lower string, start, end int) bool {
	winStart := start - d.cfg.NegationWindow
	if winStart < 0 {
		winStart = 0
	}
	winEnd := end + d.cfg.NegationWindow
	if winEnd > len(lower) {
		winEnd = len(lower)
	}
	window := lower[winStart:winEnd]
	for _, phrase := range negativeContextPhrases {
		for _, phraseEnd := range allOccurrenceEnds(window, phrase) {
			phraseStart := winStart + phraseEnd - len(phrase)
			if phraseStart <= end {
				return true
			}
		}
	}
	return false
}

// IsConditionLikely decides whether a detected condition is a probable
// diagnosis rather than a passing mention. Three signals count: the
// condition named verbatim in the conclusion, a strong hedge phrase next
// to a keyword without a weak one, or the name repeated across the text.
func (d *Detector) IsConditionLikely(fullText, conclusion string, cond Condition) bool {
	name := strings.ToLower(cond.Name)
	if strings.Contains(strings.ToLower(conclusion), name) {
		return true
	}
	lower := strings.ToLower(fullText)
	for _, kw := range cond.Keywords {
		for _, end := range allOccurrenceEnds(lower, kw) {
			winStart := end - len(kw) - d.cfg.LikelihoodWindow
			if winStart < 0 {
				winStart = 0
			}
			winEnd := end + d.cfg.LikelihoodWindow
			if winEnd > len(lower) {
				winEnd = len(lower)
			}
			window := lower[winStart:winEnd]
			if containsAny(window, strongIndicators) && !containsAny(window, weakIndicators) {
				return true
			}
		}
	}
	return strings.Count(lower, name) >= 2
}

// Detect runs the full organ and condition pass over one report. The
// detectors see findings, conclusion and study type as a single text.
// Diagram and reference image links are only attached when the uploader
// asked for them.
func (d *Detector) Detect(findings, conclusion, studyType string, showDiagrams bool) ([]domain.OrganMention, []domain.ConditionMention) {
	text := findings + " " + conclusion + " " + studyType
	lower := strings.ToLower(text)

	var organs []domain.OrganMention
	for _, entry := range organTable {
		if !containsAny(lower, entry.Keywords) {
			continue
		}
		mention := domain.OrganMention{
			Organ:            entry.Organ,
			Regions:          d.DetectRegions(text, entry.Organ),
			IsNormal:         d.IsOrganNormal(text, entry.Organ),
			ContextSentences: d.ExtractOrganContext(text, entry.Organ),
		}
		if showDiagrams {
			mention.DiagramRef = entry.DiagramRef
		}
		organs = append(organs, mention)
	}

	// Unlikely conditions are dropped before the cap, so a passing mention
	// early in the table never evicts a probable diagnosis found later.
	var conditions []domain.ConditionMention
	for _, cond := range d.DetectConditions(text) {
		if len(conditions) >= d.cfg.MaxConditionsShown {
			break
		}
		if !d.IsConditionLikely(text, conclusion, cond) {
			d.log.Debug().
				Str("condition", cond.Name).
				Msg("condition mention dropped as unlikely")
			continue
		}
		mention := domain.ConditionMention{
			Name:        cond.Name,
			Description: cond.Description,
		}
		if showDiagrams {
			mention.ImageRef = cond.ImageRef
		}
		conditions = append(conditions, mention)
	}
	return organs, conditions
}
