package pipeline

import (
	"time"

	"vdat/internal"
)

type BatchMeta struct {
	CustomerCode string
	POACode      string
	AssignedAt   time.Time
}

const assignedDateFormat = "02/01/2006"

// First occurrence of a VIN wins; callers pass channels in priority order.
func MergeChannels(meta BatchMeta, channels ...[]internal.VehicleRecord) internal.MergeResult {
	seen := map[string]bool{}
	result := internal.MergeResult{Records: []internal.ExportRecord{}}
	date := meta.AssignedAt.Format(assignedDateFormat)

	for _, channel := range channels {
		for _, rec := range channel {
			if seen[rec.VIN] {
				result.Discarded++
				continue
			}
			seen[rec.VIN] = true
			result.Records = append(result.Records, internal.ExportRecord{
				VIN:          rec.VIN,
				Brand:        rec.Brand,
				Model:        rec.Model,
				ModelType:    rec.Model,
				Customer:     meta.CustomerCode,
				POA:          meta.POACode,
				AssignedDate: date,
			})
		}
	}
	return result
}
