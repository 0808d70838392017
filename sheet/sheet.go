// Package sheet reads and writes the spreadsheet representation of a
// schema tree.
//
// Input workbooks carry one definition sheet with an element-name column
// and a type column; nesting is encoded in the element cells (see the token
// package). [Read] extracts the ordered row pairs the parser consumes;
// [WriteTree] is the inverse export.
package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rowtree/rowtree/parse"
)

// Read loads the configured sheet of an .xlsx/.xls workbook and returns its
// (element, type) row pairs in sheet order, starting after the header rows,
// with missing cells normalized to empty strings. A missing workbook or
// sheet is a document-level error.
func Read(path string, opts ...Option) ([]parse.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrWorkbook, path, err)
	}
	defer f.Close()
	return ReadWorkbook(f, opts...)
}

// ReadWorkbook is Read over an already-open workbook.
func ReadWorkbook(f *excelize.File, opts ...Option) ([]parse.Row, error) {
	o := makeOpts(opts)
	cells, err := f.GetRows(o.sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %v", ErrSheet, o.sheet, err)
	}
	var rows []parse.Row
	for ri, r := range cells {
		if ri < o.headerRows {
			continue
		}
		row := parse.Row{
			Name: cellAt(r, o.nameCol),
			Type: cellAt(r, o.typeCol),
		}
		if strings.TrimSpace(row.Name) == "" && strings.TrimSpace(row.Type) == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cellAt guards against short rows: excelize trims trailing empty cells.
func cellAt(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}
