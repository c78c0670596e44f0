package util

import (
	"reflect"
	"testing"
)

func TestStripNonAlnum(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: " vf1ab 12345 6789012 ", want: "VF1AB123456789012"},
		{input: "VF1-AB/123.456", want: "VF1AB123456"},
		{input: "---", want: ""},
		{input: "", want: ""},
	}
	for _, tc := range cases {
		if got := StripNonAlnum(tc.input); got != tc.want {
			t.Fatalf("StripNonAlnum(%q)=%q want %q", tc.input, got, tc.want)
		}
	}
}

func TestStripToAlnumSpace(t *testing.T) {
	if got := StripToAlnumSpace("Brand: Peugeot, 208!"); got != "BRAND PEUGEOT 208" {
		t.Fatalf("got %q", got)
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\r\n\r\n b \nc\n")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestAllDigits(t *testing.T) {
	if !AllDigits("789012") {
		t.Fatal("789012 should be all digits")
	}
	if AllDigits("78901A") || AllDigits("") {
		t.Fatal("non-digit input accepted")
	}
}
