package report

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/rowtree/rowtree/resolve"
)

func TestWrite(t *testing.T) {
	rep := &resolve.Report{
		Rows: []resolve.MappingRow{
			{File: "root", Suites: []string{"a", "b"}, Cases: []string{"c"}},
			{File: "empty"},
		},
		Errors: []resolve.ErrorRow{
			{Parent: "root", LKPath: "x/y", Missing: "y", Checked: "/base/x/y"},
		},
	}
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := Write(path, rep); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	mapping, err := f.GetRows(MappingSheet)
	if err != nil {
		t.Fatal(err)
	}
	wantMapping := [][]string{
		{"filename", "suites", "cases"},
		{"root", "a,b", "c"},
		{"empty", "-", "-"},
	}
	if d := cmp.Diff(wantMapping, mapping); d != "" {
		t.Errorf("mapping mismatch (-want +got):\n%s", d)
	}

	errs, err := f.GetRows(ErrorsSheet)
	if err != nil {
		t.Fatal(err)
	}
	wantErrs := [][]string{
		{"parent", "lkpath", "missing_part", "checked_path"},
		{"root", "x/y", "y", "/base/x/y"},
	}
	if d := cmp.Diff(wantErrs, errs); d != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", d)
	}
}
