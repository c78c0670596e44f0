package pipeline

import (
	"testing"

	"vdat/internal"
	"vdat/internal/lookup"
)

func TestProcessSheetPivotAndCleaning(t *testing.T) {
	n := NewNormalizer(lookup.Defaults())

	grid := internal.RawGrid{
		{"Count of VIN", "5"},
		{"VIN", "MAKE", "MODEL"},
		{"VF1AB123456789012", "PEUGEOT", "P208"},
	}

	res := n.ProcessSheet("manifest", grid, DefaultScanLimit)
	if res.Outcome != internal.SheetProcessed {
		t.Fatalf("outcome=%s err=%s", res.Outcome, res.Err)
	}
	if res.HeaderRow != 1 {
		t.Fatalf("header row=%d want 1", res.HeaderRow)
	}
	if len(res.Records) != 1 {
		t.Fatalf("records=%d", len(res.Records))
	}
	rec := res.Records[0]
	if rec.VIN != "VF1AB123456789012" || rec.Brand != "PEUG" || rec.Model != "208" {
		t.Fatalf("record=%+v", rec)
	}
	if rec.Source != internal.ChannelSpreadsheet {
		t.Fatalf("source=%s", rec.Source)
	}
}

func TestProcessSheetFiltering(t *testing.T) {
	n := NewNormalizer(lookup.Defaults())

	grid := internal.RawGrid{
		{"VIN", "BRAND", "MODEL"},
		{"VF1AB123456789012", "OPEL", "CORSA"},
		{"SHORT", "OPEL", "CORSA"},
		{"W0LAB123456789013", "", "CORSA"},
		{"VF1AB12345678901X", "FIAT", "500"},
		{"W0LAB123456789014", "Lada", "NIVA"},
	}

	res := n.ProcessSheet("filter", grid, DefaultScanLimit)
	if res.Outcome != internal.SheetProcessed {
		t.Fatalf("outcome=%s err=%s", res.Outcome, res.Err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("records=%d want 2", len(res.Records))
	}
	if res.Records[1].Brand != "LADA" {
		t.Fatalf("unknown brand should pass through, got %q", res.Records[1].Brand)
	}
	if len(res.Dropped) != 3 {
		t.Fatalf("dropped=%d want 3", len(res.Dropped))
	}
	reasons := map[string]bool{}
	for _, d := range res.Dropped {
		reasons[d.Reason] = true
	}
	if !reasons["Invalid Length (5)"] || !reasons["Empty Brand"] || !reasons["Suffix Not Numeric (78901X)"] {
		t.Fatalf("reasons=%v", res.Dropped)
	}
}

func TestProcessSheetTerminalStates(t *testing.T) {
	n := NewNormalizer(lookup.Defaults())

	empty := n.ProcessSheet("empty", internal.RawGrid{{"", ""}, {}}, DefaultScanLimit)
	if empty.Outcome != internal.SheetEmpty {
		t.Fatalf("outcome=%s", empty.Outcome)
	}

	noHeader := n.ProcessSheet("summary", internal.RawGrid{{"Totals", "42"}}, DefaultScanLimit)
	if noHeader.Outcome != internal.SheetNoHeader {
		t.Fatalf("outcome=%s", noHeader.Outcome)
	}
	if len(noHeader.Records) != 0 {
		t.Fatalf("no-header sheet emitted records")
	}
}

func TestProcessSheetPreservesRowOrder(t *testing.T) {
	n := NewNormalizer(lookup.Defaults())

	grid := internal.RawGrid{
		{"VIN", "MAKE"},
		{"VF1AB123456789012", "PEUGEOT"},
		{"W0LAB123456789013", "OPEL"},
		{"ZFAAB123456789014", "FIAT"},
	}
	res := n.ProcessSheet("order", grid, DefaultScanLimit)
	want := []string{"VF1AB123456789012", "W0LAB123456789013", "ZFAAB123456789014"}
	if len(res.Records) != len(want) {
		t.Fatalf("records=%d", len(res.Records))
	}
	for i, vin := range want {
		if res.Records[i].VIN != vin {
			t.Fatalf("row %d: got %s want %s", i, res.Records[i].VIN, vin)
		}
	}
}
