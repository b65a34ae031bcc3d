package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"go-ponto/internal/export"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func sampleDataset() export.Dataset {
	return export.Dataset{
		Title:   "Histórico de Pontos",
		Period:  "Período: 01-09-2026 a 30-09-2026",
		Columns: []string{"Data", "Funcionário", "Tipo de Ponto"},
		Rows: [][]string{
			{"01-09-2026", "Ana", "Entrada"},
			{"01-09-2026", "Ana", "Saída Final"},
		},
	}
}

func TestCSV_StartsWithBOM(t *testing.T) {
	out, err := export.CSV(sampleDataset())
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))
}

func TestCSV_RoundTripsRows(t *testing.T) {
	out, err := export.CSV(sampleDataset())
	assert.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(out, []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, []string{"Data", "Funcionário", "Tipo de Ponto"}, records[0])
	assert.Equal(t, []string{"01-09-2026", "Ana", "Entrada"}, records[1])
}

func TestXLSX_WritesHeaderAndRows(t *testing.T) {
	out, err := export.XLSX(sampleDataset())
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Dados")
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"Data", "Funcionário", "Tipo de Ponto"}, rows[0])
	assert.Equal(t, []string{"01-09-2026", "Ana", "Saída Final"}, rows[2])
}

func TestXLSXGrouped_PrependsHeading(t *testing.T) {
	groups := []export.Group{
		{
			Heading: "01-09-2026",
			Columns: []string{"Tipo de Ponto", "Horário"},
			Rows:    [][]string{{"Entrada", "08:00"}},
		},
		{
			Heading: "02-09-2026",
			Columns: []string{"Tipo de Ponto", "Horário"},
			Rows:    [][]string{{"Entrada", "08:10"}},
		},
	}

	out, err := export.XLSXGrouped([]string{"Data", "Tipo de Ponto", "Horário"}, groups)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Dados")
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"01-09-2026", "Entrada", "08:00"}, rows[1])
	assert.Equal(t, []string{"02-09-2026", "Entrada", "08:10"}, rows[2])
}

func TestPDFTable_ProducesPDF(t *testing.T) {
	out, err := export.PDFTable(sampleDataset())
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPDFDetailed_ProducesPDF(t *testing.T) {
	out, err := export.PDFDetailed("Relatório Detalhado - Ana", "Período: 01-09-2026 a 30-09-2026", []export.Group{
		{
			Heading: "01-09-2026",
			Columns: []string{"Tipo de Ponto", "Horário", "Observação"},
			Rows:    [][]string{{"Entrada", "08:00", "-"}},
		},
	})
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestExtensionAndContentType(t *testing.T) {
	assert.Equal(t, ".csv", export.Extension(export.FormatCSV))
	assert.Equal(t, ".xlsx", export.Extension(export.FormatXLSX))
	assert.Equal(t, ".pdf", export.Extension(export.FormatPDF))
	assert.Equal(t, "", export.Extension("doc"))

	assert.Equal(t, export.ContentTypePDF, export.ContentType(export.FormatPDF))
	assert.Equal(t, "application/octet-stream", export.ContentType("doc"))
}
