package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rowtree/rowtree/encode"
	"github.com/rowtree/rowtree/ir"
)

const (
	StructureSheet = "Structure"
	LeavesSheet    = "Leaves"
)

// WriteTree exports a tree and its leaf list as a workbook: a Structure
// sheet of marker-indented element rows and a Leaves sheet, both with
// styled headers.
func WriteTree(path string, nodes []*ir.Node, leaves []string, opts ...Option) error {
	o := makeOpts(opts)
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", StructureSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(LeavesSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(StructureSheet, "A1", &[]any{"element", "type"}); err != nil {
		return err
	}
	for i, row := range encode.Rows(nodes, o.marker) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(StructureSheet, cell, &[]any{row.Name, row.Type}); err != nil {
			return err
		}
	}
	if err := f.SetCellValue(LeavesSheet, "A1", "leaf"); err != nil {
		return err
	}
	for i, leaf := range leaves {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(LeavesSheet, cell, leaf); err != nil {
			return err
		}
	}

	style, err := HeaderStyle(f)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(StructureSheet, "A1", "B1", style); err != nil {
		return err
	}
	if err := f.SetCellStyle(LeavesSheet, "A1", "A1", style); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: save %q: %v", ErrWorkbook, path, err)
	}
	return nil
}

// HeaderStyle returns the shared header style: bold black on a yellow fill.
func HeaderStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "000000"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFD966"}, Pattern: 1},
	})
}
