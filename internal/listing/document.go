package listing

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Liam44/Dios-sub002/internal/docx"
	"github.com/Liam44/Dios-sub002/internal/domain"
)

// Table is a planned listing with the text of every cell filled in.
type Table struct {
	Variant Variant
	// Legend is the paragraph printed above the table; empty except on the
	// door board.
	Legend string
	Rows   []Row
	Cells  [][]string
}

// Build plans the listing of address a for variant v and resolves the tenant
// label of every flat. Each data row looks its tenants up once.
func Build(ctx context.Context, lookup TenantLookup, a *domain.Address, v Variant) (*Table, error) {
	t := &Table{Variant: v, Rows: Plan(a.Flats, v)}
	if v == DoorBoard {
		t.Legend = a.Key() + " portkodstavla"
	}

	t.Cells = make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		var label string
		if row.Kind == RowData && row.Flat != nil {
			var err error
			label, err = TenantLabel(ctx, lookup, row.Flat.Parameters)
			if err != nil {
				return nil, fmt.Errorf("listing.Build %s: %w", v, err)
			}
		}
		t.Cells = append(t.Cells, Cells(row, v, label))
	}
	return t, nil
}

// Document converts t into a docx document.
func (t *Table) Document() *docx.Document {
	return &docx.Document{Legend: t.Legend, Columns: t.Variant.Columns(), Rows: t.Cells}
}

// DataCells returns the cells of data rows only, without margins and separators.
func (t *Table) DataCells() [][]string {
	var out [][]string
	for i, row := range t.Rows {
		if row.Kind == RowData {
			out = append(out, t.Cells[i])
		}
	}
	return out
}

// WriteDocument builds variant v of the listing and writes it into dir under
// its variant filename. It returns the path of the written file.
func WriteDocument(ctx context.Context, lookup TenantLookup, a *domain.Address, v Variant, dir string) (string, error) {
	t, err := Build(ctx, lookup, a, v)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, v.FileName(a))
	if err := t.Document().WriteFile(path); err != nil {
		return "", fmt.Errorf("listing.WriteDocument %s: %w", v, err)
	}
	return path, nil
}
