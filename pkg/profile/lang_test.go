package profile

import "testing"

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"Basic":        Basic,
		"intermediate": Intermediate,
		" Fluent ":     Fluent,
		"":             Basic,
		"unknown":      Basic,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDots(t *testing.T) {
	if Basic.Dots() != 1 || Intermediate.Dots() != 2 || Fluent.Dots() != 3 {
		t.Fatalf("unexpected dot counts: %d %d %d", Basic.Dots(), Intermediate.Dots(), Fluent.Dots())
	}
}

func TestFlag(t *testing.T) {
	if Flag("Dutch") != "🇳🇱" {
		t.Fatalf("unexpected flag for Dutch: %q", Flag("Dutch"))
	}
	if Flag("nederlands") != "🇳🇱" {
		t.Fatalf("alternative spelling not mapped")
	}
	if Flag("klingon") != "🌐" {
		t.Fatalf("unknown language should map to globe")
	}
	if Flag("") != "🌐" {
		t.Fatalf("empty language should map to globe")
	}
}
