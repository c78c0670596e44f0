package decode

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"vdat/internal"
)

func DecodeSpreadsheet(blob []byte, filename string) ([]internal.Sheet, error) {
	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".csv") || strings.HasSuffix(lower, ".txt") {
		grid, err := decodeDelimited(blob)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", filename, err)
		}
		return []internal.Sheet{{Name: "Sheet1", Grid: grid}}, nil
	}

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	defer f.Close()

	sheets := make([]internal.Sheet, 0, len(f.GetSheetList()))
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		sheets = append(sheets, internal.Sheet{Name: name, Grid: rows})
	}
	return sheets, nil
}

func decodeDelimited(blob []byte) (internal.RawGrid, error) {
	grid, err := readCSV(blob, ',')
	if err == nil && maxColumns(grid) > 1 {
		return grid, nil
	}
	retry, retryErr := readCSV(blob, ';')
	if retryErr == nil && maxColumns(retry) > 1 {
		return retry, nil
	}
	if err != nil {
		return nil, err
	}
	return grid, nil
}

func readCSV(blob []byte, delimiter rune) (internal.RawGrid, error) {
	r := csv.NewReader(bytes.NewReader(blob))
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return internal.RawGrid(rows), nil
}

func maxColumns(grid internal.RawGrid) int {
	max := 0
	for _, row := range grid {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}
