package extractor

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
	apperrors "github.com/insideimaging/insideimaging-backend/pkg/errors"
	"github.com/insideimaging/insideimaging-backend/pkg/logger"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    domain.FileFormat
		wantErr bool
	}{
		{
			name: "pdf magic bytes",
			data: []byte("%PDF-1.7\n%some pdf body"),
			want: domain.FormatPDF,
		},
		{
			name: "png header",
			data: pngHeader,
			want: domain.FormatImage,
		},
		{
			name: "plain text",
			data: []byte("CHEST X-RAY REPORT\nFindings: The lungs are clear."),
			want: domain.FormatText,
		},
		{
			name:    "unknown binary",
			data:    []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.data)
			if tt.wantErr {
				require.Error(t, err)
				var appErr *apperrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, 415, appErr.StatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistryDispatch(t *testing.T) {
	log := logger.New("test", "test")
	registry := NewRegistry(
		NewPDFExtractor(log),
		NewOCRExtractor(nil, log),
		NewDocxExtractor(),
		NewTextExtractor(),
	)

	tests := []struct {
		format domain.FileFormat
		name   string
	}{
		{domain.FormatPDF, "pdf"},
		{domain.FormatImage, "ocr"},
		{domain.FormatDocx, "docx"},
		{domain.FormatText, "text"},
	}
	for _, tt := range tests {
		e := registry.FindExtractor(tt.format)
		require.NotNil(t, e, "no extractor for %s", tt.format)
		assert.Equal(t, tt.name, e.Name())
	}

	assert.Nil(t, registry.FindExtractor(domain.FileFormat("tiff")))
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDocxExtract(t *testing.T) {
	e := NewDocxExtractor()
	ctx := context.Background()

	t.Run("paragraphs become lines", func(t *testing.T) {
		doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>FINDINGS:</w:t></w:r></w:p>
    <w:p><w:r><w:t>The lungs are </w:t></w:r><w:r><w:t>clear.</w:t></w:r></w:p>
  </w:body>
</w:document>`
		text, err := e.Extract(ctx, buildDocx(t, doc))
		require.NoError(t, err)
		assert.Equal(t, "FINDINGS:\nThe lungs are clear.", text)
	})

	t.Run("missing body part", func(t *testing.T) {
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		_, err := zw.Create("word/styles.xml")
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		_, err = e.Extract(ctx, buf.Bytes())
		require.Error(t, err)
	})

	t.Run("not a zip archive", func(t *testing.T) {
		_, err := e.Extract(ctx, []byte("just some text"))
		require.Error(t, err)
	})

	t.Run("empty document", func(t *testing.T) {
		doc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body></w:body></w:document>`
		_, err := e.Extract(ctx, buildDocx(t, doc))
		require.Error(t, err)
	})
}

func TestTextExtract(t *testing.T) {
	e := NewTextExtractor()
	ctx := context.Background()

	t.Run("strips BOM and normalizes line endings", func(t *testing.T) {
		data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("FINDINGS:\r\nLungs clear.\r\n")...)
		text, err := e.Extract(ctx, data)
		require.NoError(t, err)
		assert.Equal(t, "FINDINGS:\nLungs clear.", text)
	})

	t.Run("rejects invalid encoding", func(t *testing.T) {
		_, err := e.Extract(ctx, []byte{0xC0, 0x20, 0xFF})
		require.Error(t, err)
	})

	t.Run("rejects whitespace only", func(t *testing.T) {
		_, err := e.Extract(ctx, []byte("   \n\t  "))
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := e.Extract(cancelled, []byte("some report text"))
		require.ErrorIs(t, err, context.Canceled)
	})
}
