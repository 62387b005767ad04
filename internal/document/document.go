// Package document converts uploaded resume files into plain text.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	// ErrEmptyDocument is returned when the uploaded file has no content.
	ErrEmptyDocument = errors.New("document is empty")
	// ErrUnsupportedType is returned for file types the reader cannot handle.
	ErrUnsupportedType = errors.New("unsupported file type")
)

// ReadText extracts the plain text of a resume file, dispatching on the
// file extension. Files without an extension are treated as plain text.
func ReadText(filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return readPDF(data)
	case ".docx":
		return readDocx(data)
	case ".txt", "":
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}
}

// readPDF concatenates per-page text with a newline separator. Pages
// yielding no extractable text are skipped rather than failing the
// whole document.
func readPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil || content == "" {
			continue
		}

		text.WriteString(content)
		text.WriteString("\n")
	}

	return text.String(), nil
}

func readDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parsing docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
