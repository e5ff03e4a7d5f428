package pdftext

import (
	"bytes"
	"fmt"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// Extractor turns raw PDF bytes into plain text. Satisfied by Reader
// below; kept as an interface so the ingestion pipeline can be tested
// without real PDF fixtures.
type Extractor interface {
	Extract(data []byte) (string, error)
}

// Reader extracts text page by page in document order.
type Reader struct{}

func NewReader() *Reader { return &Reader{} }

// Extract returns the concatenation of each page's plain text followed by
// a newline. Empty input or a zero-page document yields an empty string.
// A stream the PDF library cannot open is returned as an error to the
// caller; per-page extraction glitches skip the page instead of failing
// the whole document.
func (e *Reader) Extract(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
