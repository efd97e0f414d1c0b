package extractor

import (
	"bytes"
	"context"
	"strings"
	"unicode/utf8"

	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
	apperrors "github.com/insideimaging/insideimaging-backend/pkg/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// TextExtractor handles plain text uploads. It normalizes line endings and
// strips a leading byte order mark.
type TextExtractor struct{}

func NewTextExtractor() *TextExtractor { return &TextExtractor{} }

func (e *TextExtractor) Name() string { return "text" }

func (e *TextExtractor) CanExtract(format domain.FileFormat) bool {
	return format == domain.FormatText
}

func (e *TextExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", apperrors.New("TEXT_ENCODING", "file is not valid UTF-8 text", 400)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return "", apperrors.New("TEXT_EMPTY", "file contains no text", 422)
	}
	return text, nil
}
