package pipeline

import (
	"fmt"

	"vdat/internal"
	"vdat/internal/util"
)

func (n *Normalizer) ProcessSheet(name string, grid internal.RawGrid, scanLimit int) (result internal.SheetResult) {
	result = internal.SheetResult{SheetName: name, HeaderRow: -1}
	defer func() {
		if r := recover(); r != nil {
			result.Outcome = internal.SheetCrashed
			result.Err = fmt.Sprintf("%v", r)
			result.Records = nil
		}
	}()

	if isEmptyGrid(grid) {
		result.Outcome = internal.SheetEmpty
		return result
	}

	headerIdx := n.FindHeaderRow(grid, scanLimit)
	if headerIdx < 0 {
		result.Outcome = internal.SheetNoHeader
		return result
	}
	result.HeaderRow = headerIdx

	labels := UniqueLabels(grid[headerIdx])
	mapped := StandardizeColumns(labels, grid[headerIdx+1:])

	records := make([]internal.VehicleRecord, 0, len(mapped))
	for _, rec := range mapped {
		rec.Model = n.CleanModel(rec.Brand, rec.Model)

		cleanVIN, status := CheckVIN(rec.VIN)
		if !status.Valid {
			result.Dropped = append(result.Dropped, internal.DroppedRow{VIN: rec.VIN, Reason: status.Reason})
			continue
		}
		if util.UpperTrim(rec.Brand) == "" {
			result.Dropped = append(result.Dropped, internal.DroppedRow{VIN: cleanVIN, Reason: "Empty Brand"})
			continue
		}

		rec.VIN = cleanVIN
		rec.Brand = n.MapBrand(rec.Brand)
		rec.Source = internal.ChannelSpreadsheet
		records = append(records, rec)
	}

	result.Outcome = internal.SheetProcessed
	result.Records = records
	return result
}

func isEmptyGrid(grid internal.RawGrid) bool {
	for _, row := range grid {
		for _, cell := range row {
			if util.UpperTrim(cell) != "" {
				return false
			}
		}
	}
	return true
}
