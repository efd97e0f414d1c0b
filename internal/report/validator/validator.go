// Package validator decides whether an extracted text blob is plausibly a
// radiology report before any external summarization call is made. Rejection
// is free: no API has been invoked by the time a verdict is returned.
package validator

import (
	"strings"

	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
)

// Config holds the validation thresholds
type Config struct {
	MinWordCount              int
	MinRadiologyKeywords      int
	MinModalityOrAnatomyTerms int
}

// DefaultConfig returns the standard validation thresholds
func DefaultConfig() Config {
	return Config{
		MinWordCount:              100,
		MinRadiologyKeywords:      3,
		MinModalityOrAnatomyTerms: 2,
	}
}

// Validator gates extracted report text
type Validator struct {
	cfg Config
}

// New creates a validator with the given thresholds
func New(cfg Config) *Validator {
	return &Validator{cfg: cfg}
}

// Validate runs the three gates in order: word count, radiology vocabulary,
// technical specificity. The gates short-circuit but all must pass; a long
// report rich in radiology vocabulary is still rejected if it names neither
// two modality terms nor two anatomy terms.
func (v *Validator) Validate(text string) domain.ValidationResult {
	if len(strings.Fields(text)) < v.cfg.MinWordCount {
		return domain.ValidationResult{Accepted: false, Reason: domain.RejectTooShort}
	}

	lower := strings.ToLower(text)

	if countMatches(lower, radiologyKeywords) < v.cfg.MinRadiologyKeywords {
		return domain.ValidationResult{Accepted: false, Reason: domain.RejectInsufficientVocabulary}
	}

	modality := countMatches(lower, modalityTerms)
	anatomy := countMatches(lower, anatomyTerms)
	if modality < v.cfg.MinModalityOrAnatomyTerms && anatomy < v.cfg.MinModalityOrAnatomyTerms {
		return domain.ValidationResult{Accepted: false, Reason: domain.RejectInsufficientSpecificity}
	}

	return domain.ValidationResult{Accepted: true}
}

// countMatches counts distinct terms appearing as substrings in lower-cased
// text. Substring matching is deliberate legacy behavior; it over-matches
// partial words but keeps results consistent with historical uploads.
func countMatches(lower string, terms []string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(lower, term) {
			count++
		}
	}
	return count
}
