package extractor

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strings"

	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
	apperrors "github.com/insideimaging/insideimaging-backend/pkg/errors"
)

// DocxExtractor reads the main document part of a .docx archive and
// flattens it to plain text, one line per paragraph.
type DocxExtractor struct{}

func NewDocxExtractor() *DocxExtractor { return &DocxExtractor{} }

func (e *DocxExtractor) Name() string { return "docx" }

func (e *DocxExtractor) CanExtract(format domain.FileFormat) bool {
	return format == domain.FormatDocx
}

func (e *DocxExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.Wrap(err, "DOCX_UNREADABLE", "could not open document file", 400)
	}

	var doc *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", apperrors.New("DOCX_UNREADABLE", "document has no body part", 400)
	}

	rc, err := doc.Open()
	if err != nil {
		return "", apperrors.Wrap(err, "DOCX_UNREADABLE", "could not open document body", 400)
	}
	defer rc.Close()

	text, err := flattenDocumentXML(rc)
	if err != nil {
		return "", apperrors.Wrap(err, "DOCX_UNREADABLE", "could not parse document body", 400)
	}
	if text == "" {
		return "", apperrors.New("DOCX_NO_TEXT", "document contains no text", 422)
	}
	return text, nil
}

// flattenDocumentXML walks WordprocessingML and collects the character data
// of every <w:t> run. Paragraph ends (</w:p>) become newlines.
func flattenDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var sb strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
