package etl

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for any file extension other than
// .xlsx or .csv.
var ErrUnsupportedFormat = errors.New("unsupported file format, only .xlsx and .csv are supported")

// Table is a parsed tabular file: a header row and one string map per row.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// ReadTable parses an uploaded file into a Table based on its extension.
func ReadTable(fileName string, data []byte) (*Table, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx":
		return readXLSX(data)
	case ".csv":
		return readCSV(data)
	}
	return nil, ErrUnsupportedFormat
}

func readXLSX(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("error reading file: workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return tableFromRows(rows), nil
}

func readCSV(data []byte) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return tableFromRows(rows), nil
}

func tableFromRows(rows [][]string) *Table {
	t := &Table{}
	if len(rows) == 0 {
		return t
	}
	for _, h := range rows[0] {
		t.Columns = append(t.Columns, strings.TrimSpace(h))
	}
	for _, raw := range rows[1:] {
		row := make(map[string]string, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(raw) {
				row[col] = raw[i]
			} else {
				row[col] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
