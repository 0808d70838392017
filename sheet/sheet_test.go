package sheet

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/rowtree/rowtree/ir"
	"github.com/rowtree/rowtree/parse"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatal(err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRead(t *testing.T) {
	path := writeWorkbook(t, DefaultSheet, [][]any{
		{"", "Response Element Name", "Type"},
		{"", "", ""},
		{"", "Acct", "AcctType"},
		{"", ">Id", "xs:string"},
		{"", ">Name", ""},
	})
	rows, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []parse.Row{
		{Name: "Acct", Type: "AcctType"},
		{Name: ">Id", Type: "xs:string"},
		{Name: ">Name", Type: ""},
	}
	if d := cmp.Diff(want, rows); d != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", d)
	}
}

func TestReadMissingSheet(t *testing.T) {
	path := writeWorkbook(t, "Other", [][]any{{"x"}})
	_, err := Read(path)
	if !errors.Is(err, ErrSheet) {
		t.Errorf("err = %v, want ErrSheet", err)
	}
}

func TestReadMissingWorkbook(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.xlsx"))
	if !errors.Is(err, ErrWorkbook) {
		t.Errorf("err = %v, want ErrWorkbook", err)
	}
}

func TestReadCustomLayout(t *testing.T) {
	path := writeWorkbook(t, "Defs", [][]any{
		{"name", "type"},
		{"a", "t"},
		{">b", ""},
	})
	rows, err := Read(path, Sheet("Defs"), HeaderRows(1), Columns(0, 1))
	if err != nil {
		t.Fatal(err)
	}
	want := []parse.Row{
		{Name: "a", Type: "t"},
		{Name: ">b", Type: ""},
	}
	if d := cmp.Diff(want, rows); d != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", d)
	}
}

func TestWriteTreeRoundTrip(t *testing.T) {
	tree := []*ir.Node{
		ir.Leaf("a"),
		ir.Group("b", ir.Leaf("c")),
	}
	leaves := ir.Leaves(tree)
	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteTree(path, tree, leaves); err != nil {
		t.Fatal(err)
	}

	rows, err := Read(path, Sheet(StructureSheet), HeaderRows(1), Columns(0, 1))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(tree, parse.Parse(rows)); d != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", d)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := f.GetRows(LeavesSheet)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"leaf"}, {"a"}, {"c"}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("leaves sheet mismatch (-want +got):\n%s", d)
	}
}
