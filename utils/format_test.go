package utils

import "testing"

func TestThousands(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		250000:   "250,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for in, want := range cases {
		if got := Thousands(in); got != want {
			t.Errorf("Thousands(%d): got %q, want %q", in, got, want)
		}
	}
}

func TestEok(t *testing.T) {
	if got := Eok(250000); got != "25.0억원" {
		t.Errorf("Eok(250000): got %q", got)
	}
	if got := Eok(185500); got != "18.6억원" {
		t.Errorf("Eok(185500): got %q", got)
	}
}

func TestSortedCounts(t *testing.T) {
	got := SortedCounts(map[string]int{"b": 2, "a": 2, "c": 5})
	if got[0].Key != "c" || got[1].Key != "a" || got[2].Key != "b" {
		t.Errorf("order: %+v", got)
	}
}
