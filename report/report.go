// Package report renders artifact scan results as a workbook.
package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rowtree/rowtree/resolve"
	"github.com/rowtree/rowtree/sheet"
)

const (
	MappingSheet = "Mapping"
	ErrorsSheet  = "Errors"
)

// Write saves a scan report: a Mapping sheet of per-file suite and case
// references and an Errors sheet of unresolved ones. Empty reference lists
// render as "-".
func Write(path string, rep *resolve.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", MappingSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(ErrorsSheet); err != nil {
		return err
	}

	if err := f.SetSheetRow(MappingSheet, "A1", &[]any{"filename", "suites", "cases"}); err != nil {
		return err
	}
	for i, row := range rep.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		vals := []any{row.File, joinOrDash(row.Suites), joinOrDash(row.Cases)}
		if err := f.SetSheetRow(MappingSheet, cell, &vals); err != nil {
			return err
		}
	}

	if err := f.SetSheetRow(ErrorsSheet, "A1", &[]any{"parent", "lkpath", "missing_part", "checked_path"}); err != nil {
		return err
	}
	for i, e := range rep.Errors {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		vals := []any{e.Parent, e.LKPath, e.Missing, e.Checked}
		if err := f.SetSheetRow(ErrorsSheet, cell, &vals); err != nil {
			return err
		}
	}

	style, err := sheet.HeaderStyle(f)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(MappingSheet, "A1", "C1", style); err != nil {
		return err
	}
	if err := f.SetCellStyle(ErrorsSheet, "A1", "D1", style); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report %q: %w", path, err)
	}
	return nil
}

func joinOrDash(vs []string) string {
	if len(vs) == 0 {
		return "-"
	}
	return strings.Join(vs, ",")
}
