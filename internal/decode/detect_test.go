package decode

import "testing"

func TestDetectManifest(t *testing.T) {
	positive := DetectManifest(
		"Load list voyage 2215",
		"VIN list attached\nVF1AB123456789012\nW0LAB123456789013",
		[]string{"manifest.xlsx"},
	)
	if !positive.IsManifest {
		t.Fatalf("expected manifest: %+v", positive)
	}

	negative := DetectManifest("Lunch on Friday?", "See you at noon.", nil)
	if negative.IsManifest {
		t.Fatalf("expected non-manifest: %+v", negative)
	}
	if negative.Reason != "rules_negative" {
		t.Fatalf("reason=%q", negative.Reason)
	}
}
