package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"vdat/internal"
)

var exportHeaders = []string{"VIN", "BRAND", "MODEL", "MODELTYPE", "CUSTOMER", "POA", "DTMASSIGNEDDATE"}

const illegalSheetChars = `\/*?:[]`

const maxSheetNameLen = 31

func SanitizeSheetName(batchRef string) string {
	var b strings.Builder
	for _, r := range batchRef {
		if !strings.ContainsRune(illegalSheetChars, r) {
			b.WriteRune(r)
		}
	}
	runes := []rune(b.String())
	if len(runes) > maxSheetNameLen {
		runes = runes[:maxSheetNameLen]
	}
	return string(runes)
}

func ExportFilename(customerCode, poaCode string, at time.Time) string {
	return fmt.Sprintf("VDAT_%s_%s_%s.xlsx", customerCode, poaCode, at.Format("20060102_1504"))
}

func ExportRecordsToXLSX(records []internal.ExportRecord, batchRef, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SanitizeSheetName(batchRef)
	if sheet == "" {
		sheet = "VDAT"
	}
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return err
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, rec := range records {
		r := i + 2
		set := func(col int, value string) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}
		set(1, rec.VIN)
		set(2, rec.Brand)
		set(3, rec.Model)
		set(4, rec.ModelType)
		set(5, rec.Customer)
		set(6, rec.POA)
		set(7, rec.AssignedDate)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
