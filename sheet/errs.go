package sheet

import "errors"

var (
	// ErrWorkbook wraps failures opening or saving a workbook file.
	ErrWorkbook = errors.New("workbook error")
	// ErrSheet wraps failures reading the configured sheet.
	ErrSheet = errors.New("sheet error")
)
