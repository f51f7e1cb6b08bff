package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const documentPart = "word/document.xml"

// ErrNoTable is returned by Read when the document body holds no table.
var ErrNoTable = errors.New("docx: document has no table")

// ReadFile parses the .docx file at path. See Read.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("docx.ReadFile: %w", err)
	}
	return Read(data)
}

// Read parses a .docx package produced by Render, or any document whose body
// is top-level paragraphs and a table. The text of non-blank top-level
// paragraphs is joined into Legend; only the first table is returned and
// Columns is its widest row.
func Read(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("docx.Read: %w", err)
	}

	var body []byte
	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		body, err = readEntry(f)
		if err != nil {
			return nil, fmt.Errorf("docx.Read: %w", err)
		}
	}
	if body == nil {
		return nil, fmt.Errorf("docx.Read: missing %s", documentPart)
	}

	// Unprefixed tags match the local name in any namespace.
	var doc struct {
		Body struct {
			Paragraphs []readParagraph `xml:"p"`
			Tables     []struct {
				Rows []struct {
					Cells []struct {
						Paragraphs []readParagraph `xml:"p"`
					} `xml:"tc"`
				} `xml:"tr"`
			} `xml:"tbl"`
		} `xml:"body"`
	}
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("docx.Read: %w", err)
	}
	if len(doc.Body.Tables) == 0 {
		return nil, ErrNoTable
	}

	out := &Document{}
	var legend []string
	for _, p := range doc.Body.Paragraphs {
		if text := p.text(); text != "" {
			legend = append(legend, text)
		}
	}
	out.Legend = strings.Join(legend, "\n")

	tbl := doc.Body.Tables[0]
	for _, tr := range tbl.Rows {
		row := make([]string, 0, len(tr.Cells))
		for _, tc := range tr.Cells {
			var texts []string
			for _, p := range tc.Paragraphs {
				texts = append(texts, p.text())
			}
			row = append(row, strings.Join(texts, "\n"))
		}
		out.Columns = max(out.Columns, len(row))
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

type readParagraph struct {
	Runs []struct {
		Texts []string `xml:"t"`
	} `xml:"r"`
}

func (p readParagraph) text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		for _, t := range r.Texts {
			sb.WriteString(t)
		}
	}
	return sb.String()
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
