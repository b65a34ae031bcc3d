package export

import (
	"bytes"
	"encoding/csv"
)

// utf8BOM keeps accented column headers readable when the file is
// opened directly in Excel.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSV renders a dataset as a BOM-prefixed UTF-8 CSV file.
func CSV(d Dataset) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(d.Columns); err != nil {
		return nil, err
	}
	for _, row := range d.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
