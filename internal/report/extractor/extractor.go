// Package extractor turns uploaded report files into plain text. Each file
// format has its own Extractor; the Registry dispatches on the format
// detected from the file bytes.
package extractor

import (
	"context"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
	apperrors "github.com/insideimaging/insideimaging-backend/pkg/errors"
)

// Extractor extracts text from one class of uploaded file.
// Implementations must not retain the file bytes after Extract returns.
type Extractor interface {
	// CanExtract returns true if this extractor handles the given format
	CanExtract(format domain.FileFormat) bool

	// Extract returns the plain text content of the file bytes
	Extract(ctx context.Context, data []byte) (string, error)

	// Name returns the extractor name for logging
	Name() string
}

// Registry holds all registered extractors and dispatches to the right one
type Registry struct {
	extractors []Extractor
}

func NewRegistry(extractors ...Extractor) *Registry {
	return &Registry{extractors: extractors}
}

// FindExtractor returns the first extractor that handles the format, or nil
func (r *Registry) FindExtractor(format domain.FileFormat) Extractor {
	for _, e := range r.extractors {
		if e.CanExtract(format) {
			return e
		}
	}
	return nil
}

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DetectFormat sniffs the file format from the upload bytes. The client's
// file name and declared content type are ignored; only the bytes decide.
func DetectFormat(data []byte) (domain.FileFormat, error) {
	mtype := mimetype.Detect(data)
	switch {
	case mtype.Is("application/pdf"):
		return domain.FormatPDF, nil
	case strings.HasPrefix(mtype.String(), "image/"):
		return domain.FormatImage, nil
	case mtype.Is(docxMIME):
		return domain.FormatDocx, nil
	case mtype.Is("text/plain"):
		return domain.FormatText, nil
	}
	return "", apperrors.UnsupportedMediaType(mtype.String())
}
