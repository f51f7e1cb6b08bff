// Package docx writes Word documents made of an optional legend paragraph
// followed by a single table, and reads such tables back.
package docx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
)

// tableStyle is the bordered grid style of the default template.
const tableStyle = "TableGrid"

// Document is a legend paragraph and one table.
type Document struct {
	// Legend is written as a paragraph before the table when non-empty.
	Legend string
	// Columns is the table width in cells. Rows shorter than Columns are
	// padded with blank cells.
	Columns int
	Rows    [][]string
}

// Render writes d as a .docx package to w.
func (d *Document) Render(w io.Writer) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("docx.Render: new document: %w", err)
	}

	if d.Legend != "" {
		doc.AddParagraph(d.Legend)
	}

	columns := d.Columns
	for _, r := range d.Rows {
		columns = max(columns, len(r))
	}

	tbl := doc.AddTable()
	tbl.Style(tableStyle)
	for _, r := range d.Rows {
		row := tbl.AddRow()
		for i := range columns {
			var text string
			if i < len(r) {
				text = r[i]
			}
			row.AddCell().AddParagraph(text)
		}
	}

	if err := doc.Write(w); err != nil {
		return fmt.Errorf("docx.Render: %w", err)
	}
	return nil
}

// WriteFile renders d to path. The file is written to a temporary sibling
// first and renamed into place, so path either holds the whole document or
// is left untouched.
func (d *Document) WriteFile(path string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".docx-*")
	if err != nil {
		return fmt.Errorf("docx.WriteFile: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = d.Render(tmp); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("docx.WriteFile: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("docx.WriteFile: %w", err)
	}
	return nil
}
