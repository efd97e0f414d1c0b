package extractor

import (
	"bytes"
	"context"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
	apperrors "github.com/insideimaging/insideimaging-backend/pkg/errors"
	"github.com/insideimaging/insideimaging-backend/pkg/logger"
)

// PDFExtractor pulls the text layer out of a PDF. Scanned PDFs without a
// text layer yield no text; those uploads fail here and the user is asked
// to upload the page images instead.
type PDFExtractor struct {
	logger *logger.Logger
}

func NewPDFExtractor(log *logger.Logger) *PDFExtractor {
	return &PDFExtractor{logger: log.WithComponent("pdf_extractor")}
}

func (e *PDFExtractor) Name() string { return "pdf" }

func (e *PDFExtractor) CanExtract(format domain.FileFormat) bool {
	return format == domain.FormatPDF
}

func (e *PDFExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.Wrap(err, "PDF_UNREADABLE", "could not open PDF file", 400)
	}

	var sb strings.Builder
	pageCount := reader.NumPage()
	for i := 1; i <= pageCount; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// image-only pages have no text layer
			e.logger.Warn().Int("page", i).Err(err).Msg("page text extraction failed")
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", apperrors.New("PDF_NO_TEXT", "PDF contains no extractable text, upload the report as images instead", 422)
	}
	e.logger.Debug().Int("pages", pageCount).Int("chars", len(text)).Msg("extracted PDF text")
	return text, nil
}
