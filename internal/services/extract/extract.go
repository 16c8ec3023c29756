// Package extract turns uploaded résumé files into plain text.
//
// Two input shapes are supported: PDF files (text is pulled per page with
// the ledongthuc/pdf library, a pure Go implementation with no CGO) and
// plain-text files, which pass through as-is after a UTF-8 sanity check.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrEmptyFile means the upload had zero bytes.
	ErrEmptyFile = errors.New("uploaded file is empty")

	// ErrUnsupportedType means the upload is neither a PDF nor plain text.
	ErrUnsupportedType = errors.New("unsupported file type: only PDF and plain text are accepted")

	// ErrNoText means extraction succeeded but produced no usable text,
	// which usually indicates a scanned (image-only) PDF.
	ErrNoText = errors.New("no extractable text found in file")
)

// FromUpload extracts text from an uploaded file, dispatching on content.
// The magic bytes win over the declared content type and filename, since
// browsers routinely mislabel both.
func FromUpload(data []byte, contentType, filename string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}

	if IsPDF(data) {
		return FromPDF(data)
	}

	if isTextType(contentType, filename) && utf8.Valid(data) {
		text := strings.TrimSpace(string(data))
		if text == "" {
			return "", ErrNoText
		}
		return text, nil
	}

	return "", ErrUnsupportedType
}

// FromPDF extracts the plain text of every page, joined by blank lines.
// Pages that fail extraction (image-only pages, mostly) are skipped
// rather than failing the whole file.
func FromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		return "", ErrNoText
	}
	return strings.Join(pages, "\n\n"), nil
}

// IsPDF reports whether the data carries the PDF magic bytes.
func IsPDF(data []byte) bool {
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}

func isTextType(contentType, filename string) bool {
	if strings.HasPrefix(contentType, "text/plain") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(filename), ".txt")
}
