package export

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

func newA4() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()
	return pdf
}

func pageContentWidth(pdf *fpdf.Fpdf) float64 {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	return pageW - left - right
}

func writeTitle(pdf *fpdf.Fpdf, title, period string) {
	w := pageContentWidth(pdf)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(w, 8, title, "", 1, "C", false, 0, "")
	if period != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(w, 6, period, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)
}

func writeTable(pdf *fpdf.Fpdf, columns []string, rows [][]string) {
	w := pageContentWidth(pdf)
	colW := w / float64(len(columns))

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(220, 230, 241)
	for _, col := range columns {
		pdf.CellFormat(colW, 7, col, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range rows {
		for i := 0; i < len(columns); i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			// Truncate long notes so the grid stays rectangular
			if len(cell) > 40 {
				cell = cell[:39] + "…"
			}
			pdf.CellFormat(colW, 6, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// PDFTable renders a dataset as a titled grid table.
func PDFTable(d Dataset) ([]byte, error) {
	pdf := newA4()
	writeTitle(pdf, d.Title, d.Period)
	writeTable(pdf, d.Columns, d.Rows)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PDFDetailed renders one heading plus table per date group.
func PDFDetailed(title, period string, groups []Group) ([]byte, error) {
	pdf := newA4()
	writeTitle(pdf, title, period)

	for _, g := range groups {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(pageContentWidth(pdf), 7, g.Heading, "", 1, "L", false, 0, "")
		pdf.Ln(1)

		writeTable(pdf, g.Columns, g.Rows)
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
