package extractor

import (
	"context"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
	apperrors "github.com/insideimaging/insideimaging-backend/pkg/errors"
	"github.com/insideimaging/insideimaging-backend/pkg/logger"
)

// OCRExtractor runs Tesseract over photographed or scanned report pages.
// A fresh client is created per call; gosseract clients are not safe for
// concurrent use.
type OCRExtractor struct {
	languages []string
	logger    *logger.Logger
}

func NewOCRExtractor(languages []string, log *logger.Logger) *OCRExtractor {
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	return &OCRExtractor{
		languages: languages,
		logger:    log.WithComponent("ocr_extractor"),
	}
}

func (e *OCRExtractor) Name() string { return "ocr" }

func (e *OCRExtractor) CanExtract(format domain.FileFormat) bool {
	return format == domain.FormatImage
}

func (e *OCRExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.languages...); err != nil {
		return "", apperrors.Wrap(err, "OCR_LANGUAGE", "OCR language data not available", 500)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return "", apperrors.Wrap(err, "OCR_IMAGE", "could not read image data", 400)
	}

	text, err := client.Text()
	if err != nil {
		return "", apperrors.Wrap(err, "OCR_FAILED", "text recognition failed", 500)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", apperrors.New("OCR_NO_TEXT", "no readable text found in image", 422)
	}
	e.logger.Debug().Int("chars", len(text)).Msg("extracted image text")
	return text, nil
}
