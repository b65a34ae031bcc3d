// Package export renders rectangular result sets into downloadable
// byte streams. Callers hand in display-ready strings; nothing here
// formats dates, times or labels.
package export

// Format tags accepted on export endpoints.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// Dataset is an ordered rectangular result set.
type Dataset struct {
	Title   string
	Period  string
	Columns []string
	Rows    [][]string
}

// Group is one date block of a detailed report.
type Group struct {
	Heading string
	Columns []string
	Rows    [][]string
}

// Extension returns the filename extension for a format tag, or "" when
// the tag is unknown.
func Extension(format string) string {
	switch format {
	case FormatCSV:
		return ".csv"
	case FormatXLSX:
		return ".xlsx"
	case FormatPDF:
		return ".pdf"
	default:
		return ""
	}
}

// ContentType returns the MIME type for a format tag.
func ContentType(format string) string {
	switch format {
	case FormatCSV:
		return ContentTypeCSV
	case FormatXLSX:
		return ContentTypeXLSX
	case FormatPDF:
		return ContentTypePDF
	default:
		return "application/octet-stream"
	}
}
