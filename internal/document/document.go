// Package document reads the text of input files for the command line client.
package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// MaxTextBytes keeps a document comfortably under the server's 1MB body limit
// once JSON-encoded.
const MaxTextBytes = 512 * 1024

// StdinPath selects standard input.
const StdinPath = "-"

// Document is the extracted text of an input file.
type Document struct {
	Path      string
	Text      string
	Pages     int // 0 for non-PDF input
	Truncated bool
}

// Read extracts text from path. ".pdf" files are parsed page by page, "-"
// reads stdin, and anything else is read as UTF-8 text.
func Read(path string, stdin io.Reader) (*Document, error) {
	switch {
	case path == StdinPath:
		data, err := io.ReadAll(io.LimitReader(stdin, MaxTextBytes+1))
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return newDocument(path, string(data), 0), nil
	case strings.EqualFold(filepath.Ext(path), ".pdf"):
		return readPDF(path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("%s is not UTF-8 text", path)
		}
		return newDocument(path, string(data), 0), nil
	}
}

func readPDF(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	totalPages := r.NumPage()

	for i := 1; i <= totalPages; i++ {
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

		if sb.Len() > MaxTextBytes {
			break
		}
	}

	return newDocument(path, sb.String(), totalPages), nil
}

func newDocument(path, text string, pages int) *Document {
	doc := &Document{Path: path, Pages: pages}
	if len(text) > MaxTextBytes {
		cut := MaxTextBytes
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
		doc.Truncated = true
	}
	doc.Text = strings.TrimSpace(text)
	return doc
}
