// Package summarizer turns a parsed radiology report into the structured
// lay-language summary shown to patients. The remote implementation talks
// to an OpenAI-compatible API; the heuristic one works offline from the
// report sections alone.
package summarizer

import (
	"context"

	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
	"github.com/insideimaging/insideimaging-backend/internal/report/parser"
)

// LanguageEnglish and LanguageKiswahili are the supported output languages
const (
	LanguageEnglish   = "English"
	LanguageKiswahili = "Kiswahili"
)

// Input is everything the summarizer may use. The text here has already
// been through redaction; no identifiers reach a remote model.
type Input struct {
	Sections parser.Sections
	Study    string
	Age      string
	Sex      string
	Language string
}

// Summarizer produces the patient-facing structured summary
type Summarizer interface {
	Summarize(ctx context.Context, in Input) (domain.StructuredSummary, error)

	// Name returns the implementation name for logging
	Name() string
}

// NormalizeLanguage maps free-form language input onto a supported
// language, defaulting to English.
func NormalizeLanguage(lang string) string {
	switch lang {
	case LanguageKiswahili, "Swahili", "swahili", "kiswahili", "sw":
		return LanguageKiswahili
	default:
		return LanguageEnglish
	}
}
