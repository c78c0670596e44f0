package lookup

import "testing"

func TestCustomerCode(t *testing.T) {
	tables := Defaults()

	code, ok := tables.CustomerCode("Hoedlmayr")
	if !ok || code != "HOD" {
		t.Fatalf("got %q ok=%v", code, ok)
	}
	code, ok = tables.CustomerCode("HOD")
	if !ok || code != "HOD" {
		t.Fatalf("got %q ok=%v", code, ok)
	}
	if _, ok = tables.CustomerCode("Unknown Shipper"); ok {
		t.Fatal("expected miss")
	}
}

func TestPOACode(t *testing.T) {
	tables := Defaults()

	code, ok := tables.POACode("Grimsby")
	if !ok || code != "GRIM" {
		t.Fatalf("got %q ok=%v", code, ok)
	}
	if _, ok = tables.POACode("Atlantis"); ok {
		t.Fatal("expected miss")
	}
}

func TestBrandCodes(t *testing.T) {
	tables := Defaults()
	codes := tables.BrandCodes()

	if len(codes) != len(tables.Brands) {
		t.Fatalf("len=%d want %d", len(codes), len(tables.Brands))
	}
	cases := map[string]string{
		"VAUXHALL": "OPEL",
		"OPEL":     "OPEL",
		"PEUG":     "PEUG",
		"PEUGEOT":  "PEUG",
		"JLR":      "JLR",
	}
	for alias, want := range cases {
		if got := codes[alias]; got != want {
			t.Fatalf("codes[%q]=%q want %q", alias, got, want)
		}
	}
	if _, ok := codes["LADA"]; ok {
		t.Fatal("unexpected alias")
	}
}
