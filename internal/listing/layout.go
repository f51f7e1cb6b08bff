// Package listing turns an address snapshot into the tenant listings posted
// in a building: the full listing, the compact A5 listing and the door-code
// board. It plans the rows, resolves tenant labels and fills the cells; the
// docx package writes the result to disk.
package listing

import (
	"fmt"
	"slices"

	"github.com/Liam44/Dios-sub002/internal/domain"
)

// Variant selects one of the three listing documents.
type Variant int

const (
	// Main lists floor, flat number and tenants.
	Main Variant = iota
	// Compact lists floor and tenants, for A5 prints.
	Compact
	// DoorBoard pairs entry door codes with tenants, in register order.
	DoorBoard
)

// Variants lists every document produced for one export, in write order.
var Variants = []Variant{Main, Compact, DoorBoard}

func (v Variant) String() string {
	switch v {
	case Main:
		return "main"
	case Compact:
		return "compact"
	case DoorBoard:
		return "door-board"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

type column int

const (
	columnFloor column = iota
	columnFlatNumber
	columnDoorCode
	columnTenant
)

// policy is the column set and grouping rule of a variant.
type policy struct {
	columns        []column
	groupByFloor   bool
	trailingMargin bool
	fileSuffix     string
}

var policies = map[Variant]policy{
	Main: {
		columns:      []column{columnFloor, columnFlatNumber, columnTenant},
		groupByFloor: true,
	},
	Compact: {
		columns:      []column{columnFloor, columnTenant},
		groupByFloor: true,
		fileSuffix:   " - A5",
	},
	DoorBoard: {
		columns:        []column{columnDoorCode, columnTenant},
		trailingMargin: true,
		fileSuffix:     " - Portkodstavla",
	},
}

func (v Variant) policy() policy {
	p, ok := policies[v]
	if !ok {
		panic("listing: unknown variant " + v.String())
	}
	return p
}

// Columns returns the number of table columns of v.
func (v Variant) Columns() int {
	return len(v.policy().columns)
}

// FileName returns the document filename of v for the given address.
func (v Variant) FileName(a *domain.Address) string {
	return a.Key() + v.policy().fileSuffix + ".docx"
}

// RowKind tags a planned row.
type RowKind int

const (
	// RowMargin is blank padding at the top (and, for the door board, bottom).
	RowMargin RowKind = iota
	// RowData shows one flat.
	RowData
	// RowSeparator is the blank row closing a floor group.
	RowSeparator
)

// Row is one planned table row.
type Row struct {
	Kind RowKind
	// Flat is the flat shown by a data row. It is nil for margin and
	// separator rows, and for data rows standing in for a hole.
	Flat *domain.Flat
	// FirstOfFloor marks the data row that opens its floor group and
	// therefore carries the floor label.
	FirstOfFloor bool
}

// Plan lays out the rows of variant v for flats.
//
// Main and Compact: a margin row, then every floor group in ascending floor
// order, each followed by a separator row. DoorBoard: a margin row, one data
// row per flat in register order, and a closing margin row.
func Plan(flats []*domain.Flat, v Variant) []Row {
	p := v.policy()
	rows := []Row{{Kind: RowMargin}}

	if !p.groupByFloor {
		for _, f := range flats {
			rows = append(rows, Row{Kind: RowData, Flat: f})
		}
	} else {
		for _, group := range floorGroups(flats) {
			for i, f := range group {
				rows = append(rows, Row{Kind: RowData, Flat: f, FirstOfFloor: i == 0})
			}
			rows = append(rows, Row{Kind: RowSeparator})
		}
	}

	if p.trailingMargin {
		rows = append(rows, Row{Kind: RowMargin})
	}
	return rows
}

// floorGroups buckets flats by floor, lowest floor first, keeping register
// order within a floor. A hole has no floor: each one becomes its own group,
// placed before every floor.
func floorGroups(flats []*domain.Flat) [][]*domain.Flat {
	var groups [][]*domain.Flat
	byFloor := make(map[int][]*domain.Flat)
	var floors []int

	for _, f := range flats {
		if f == nil {
			groups = append(groups, []*domain.Flat{nil})
			continue
		}
		if _, seen := byFloor[f.Floor]; !seen {
			floors = append(floors, f.Floor)
		}
		byFloor[f.Floor] = append(byFloor[f.Floor], f)
	}

	slices.Sort(floors)
	for _, floor := range floors {
		groups = append(groups, byFloor[floor])
	}
	return groups
}

// Cells returns the text of every column of row for variant v.
// Margin and separator rows, and holes, are all blank.
func Cells(row Row, v Variant, tenantLabel string) []string {
	cols := v.policy().columns
	cells := make([]string, len(cols))
	if row.Kind != RowData || row.Flat == nil {
		return cells
	}

	for i, c := range cols {
		switch c {
		case columnFloor:
			if row.FirstOfFloor {
				cells[i] = FloorLabel(row.Flat.Floor)
			}
		case columnFlatNumber:
			cells[i] = FlatLabel(row.Flat.Number)
		case columnDoorCode:
			cells[i] = row.Flat.EntryDoorCode
		case columnTenant:
			cells[i] = tenantLabel
		}
	}
	return cells
}

// FloorLabel formats a floor cell: "Vån 2".
func FloorLabel(floor int) string {
	return fmt.Sprintf("Vån %d", floor)
}

// FlatLabel formats a flat number cell: "L. 1101".
func FlatLabel(number string) string {
	return "L. " + number
}
