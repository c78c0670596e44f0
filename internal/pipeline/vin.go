package pipeline

import (
	"fmt"

	"vdat/internal"
	"vdat/internal/util"
)

const vinLength = 17

func CheckVIN(raw string) (string, internal.VINStatus) {
	if raw == "" {
		return "", internal.VINStatus{Valid: false, Reason: "Empty"}
	}
	v := util.StripNonAlnum(raw)
	if v == "" {
		return "", internal.VINStatus{Valid: false, Reason: "Empty"}
	}
	if len(v) != vinLength {
		return v, internal.VINStatus{Valid: false, Reason: fmt.Sprintf("Invalid Length (%d)", len(v))}
	}
	suffix := v[vinLength-6:]
	if !util.AllDigits(suffix) {
		return v, internal.VINStatus{Valid: false, Reason: fmt.Sprintf("Suffix Not Numeric (%s)", suffix)}
	}
	return v, internal.VINStatus{Valid: true}
}
