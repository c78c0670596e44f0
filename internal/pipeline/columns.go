package pipeline

import (
	"fmt"
	"strings"

	"vdat/internal"
	"vdat/internal/util"
)

var brandLabelKeywords = []string{"MAKE", "BRAND", "OEM", "MAKER"}

func UniqueLabels(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = fmt.Sprintf("%s_%d", strings.TrimSpace(h), i)
	}
	return out
}

type columnMap struct {
	vin   int
	brand int
	model int
}

func mapColumns(labels []string) columnMap {
	cm := columnMap{vin: -1, brand: -1, model: -1}
	claimed := make(map[int]bool, 3)

	for i, label := range labels {
		if strings.Contains(util.UpperTrim(label), "VIN") {
			cm.vin = i
			claimed[i] = true
			break
		}
	}
	for i, label := range labels {
		if claimed[i] {
			continue
		}
		up := util.UpperTrim(label)
		for _, kw := range brandLabelKeywords {
			if strings.Contains(up, kw) {
				cm.brand = i
				claimed[i] = true
				break
			}
		}
		if cm.brand >= 0 {
			break
		}
	}
	for i, label := range labels {
		if claimed[i] {
			continue
		}
		if strings.Contains(util.UpperTrim(label), "MODEL") {
			cm.model = i
			break
		}
	}
	return cm
}

func StandardizeColumns(labels []string, rows internal.RawGrid) []internal.VehicleRecord {
	cm := mapColumns(labels)
	out := make([]internal.VehicleRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, internal.VehicleRecord{
			VIN:   cellAt(row, cm.vin),
			Brand: cellAt(row, cm.brand),
			Model: cellAt(row, cm.model),
		})
	}
	return out
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
