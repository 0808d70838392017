package sheet

// Defaults match the source workbooks: definitions live on the
// "Message Response" sheet, two header rows, element names in column B and
// types in column C.
const (
	DefaultSheet      = "Message Response"
	DefaultHeaderRows = 2
	DefaultNameCol    = 1
	DefaultTypeCol    = 2
)

type sheetOpts struct {
	sheet      string
	headerRows int
	nameCol    int
	typeCol    int
	marker     string
}

type Option func(*sheetOpts)

func makeOpts(opts []Option) *sheetOpts {
	o := &sheetOpts{
		sheet:      DefaultSheet,
		headerRows: DefaultHeaderRows,
		nameCol:    DefaultNameCol,
		typeCol:    DefaultTypeCol,
		marker:     ">",
	}
	for _, f := range opts {
		f(o)
	}
	return o
}

// Sheet overrides the sheet name to read or write.
func Sheet(name string) Option {
	return func(o *sheetOpts) { o.sheet = name }
}

// HeaderRows overrides how many leading rows are skipped.
func HeaderRows(n int) Option {
	return func(o *sheetOpts) { o.headerRows = n }
}

// Columns overrides the zero-based element-name and type column indexes.
func Columns(name, typ int) Option {
	return func(o *sheetOpts) {
		o.nameCol = name
		o.typeCol = typ
	}
}

// Marker sets the single marker character WriteTree indents with.
func Marker(m string) Option {
	return func(o *sheetOpts) { o.marker = m }
}
