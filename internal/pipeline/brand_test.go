package pipeline

import (
	"testing"

	"vdat/internal/lookup"
)

func TestMapBrand(t *testing.T) {
	n := NewNormalizer(lookup.Defaults())

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "exact alias", input: "PEUGEOT", want: "PEUG"},
		{name: "exact short alias", input: "CITR", want: "CITR"},
		{name: "case and spacing", input: "  peugeot ", want: "PEUG"},
		{name: "substring match", input: "OPEL (STELLANTIS)", want: "OPEL"},
		{name: "substring jlr", input: "NEPTUNE JLR UK", want: "JLR"},
		{name: "vauxhall maps to opel", input: "VAUXHALL", want: "OPEL"},
		{name: "unknown passes through uppercased", input: "Lada", want: "LADA"},
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.MapBrand(tc.input); got != tc.want {
				t.Fatalf("MapBrand(%q)=%q want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestMapBrandTableOrder(t *testing.T) {
	tables := lookup.Defaults()
	tables.Brands = []lookup.BrandAlias{
		{Alias: "JAGUAR LANDROVER", Code: "JLR"},
		{Alias: "JAGUAR", Code: "JAG"},
	}
	n := NewNormalizer(tables)

	if got := n.MapBrand("EX JAGUAR LANDROVER PLANT"); got != "JLR" {
		t.Fatalf("got %q want JLR", got)
	}
}

func TestCleanModel(t *testing.T) {
	n := NewNormalizer(lookup.Defaults())

	cases := []struct {
		name  string
		brand string
		model string
		want  string
	}{
		{name: "brand name prefix stripped", brand: "PEUGEOT", model: "PEUGEOT 208", want: "208"},
		{name: "legacy letter prefix stripped", brand: "PEUGEOT", model: "P208", want: "208"},
		{name: "letter prefix citroen", brand: "CITROEN", model: "C3 AIRCROSS", want: "3 AIRCROSS"},
		{name: "letter prefix only not stripped", brand: "FIAT", model: "F", want: "F"},
		{name: "no rule fires", brand: "JEEP", model: "AVENGER", want: "AVENGER"},
		{name: "empty brand is passthrough", brand: "", model: " 208 gt ", want: "208 GT"},
		{name: "empty model", brand: "OPEL", model: "", want: ""},
		{name: "brand prefix beats letter rule", brand: "OPEL", model: "OPEL CORSA", want: "CORSA"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.CleanModel(tc.brand, tc.model); got != tc.want {
				t.Fatalf("CleanModel(%q, %q)=%q want %q", tc.brand, tc.model, got, tc.want)
			}
		})
	}
}
