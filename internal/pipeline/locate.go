package pipeline

import (
	"strings"

	"vdat/internal"
	"vdat/internal/util"
)

const DefaultScanLimit = 50

// Pivot exports restate "VIN" inside aggregate headers like "Count of VIN".
const pivotGuard = "COUNT OF"

func (n *Normalizer) FindHeaderRow(grid internal.RawGrid, scanLimit int) int {
	if scanLimit <= 0 {
		scanLimit = DefaultScanLimit
	}
	limit := len(grid)
	if scanLimit < limit {
		limit = scanLimit
	}

rows:
	for i := 0; i < limit; i++ {
		labels := make([]string, len(grid[i]))
		for j, cell := range grid[i] {
			labels[j] = util.UpperTrim(cell)
		}

		hasVIN := false
		for _, label := range labels {
			if strings.Contains(label, pivotGuard) {
				continue rows
			}
			if strings.Contains(label, "VIN") {
				hasVIN = true
			}
		}
		if !hasVIN {
			continue
		}

		for _, label := range labels {
			for _, kw := range n.tables.ContextKeywords {
				if strings.Contains(label, kw) {
					return i
				}
			}
		}
	}
	return -1
}
