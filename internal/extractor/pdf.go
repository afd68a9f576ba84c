package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrPDFExtraction marks a structural failure while reading a PDF, as
// opposed to an I/O error on the underlying file.
var ErrPDFExtraction = errors.New("failed to extract text from PDF")

// ExtractPDF concatenates the text content of every page. Text items within
// a page are joined with a single space, pages are joined with a newline and
// the result is trimmed. The pdf package panics on some malformed content
// streams, so the whole walk runs behind a recover.
func ExtractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrPDFExtraction, r)
		}
	}()

	reader := bytes.NewReader(data)

	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPDFExtraction, err)
	}

	numPages := pdfReader.NumPage()
	pages := make([]string, 0, numPages)

	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content := page.Content()
		items := make([]string, 0, len(content.Text))
		for _, t := range content.Text {
			items = append(items, t.S)
		}
		pages = append(pages, strings.Join(items, " "))
	}

	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}
