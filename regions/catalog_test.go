package regions

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	names := c.Names()
	if len(names) != 13 {
		t.Fatalf("regions: got %d, want 13", len(names))
	}
	if names[0] != "강남구" {
		t.Errorf("first region: got %q, want 강남구", names[0])
	}
	for _, name := range names {
		r, err := c.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if err := validate(r); err != nil {
			t.Errorf("built-in %s invalid: %v", name, err)
		}
	}
}

func TestLookupTrimsAndFails(t *testing.T) {
	c := Default()
	r, err := c.Lookup("  서초구 ")
	if err != nil {
		t.Fatalf("Lookup with spaces: %v", err)
	}
	if r.CortarNo != "1165000000" {
		t.Errorf("CortarNo: got %q", r.CortarNo)
	}

	_, err = c.Lookup("강남")
	if !errors.Is(err, ErrRegionNotFound) {
		t.Fatalf("partial name should not match, got %v", err)
	}
	if !strings.Contains(err.Error(), "강남구") {
		t.Errorf("error should list supported regions: %v", err)
	}
}

func TestByProvince(t *testing.T) {
	provinces, groups := Default().ByProvince()
	want := []string{"서울", "부산", "대구", "경기", "인천"}
	if strings.Join(provinces, ",") != strings.Join(want, ",") {
		t.Errorf("provinces: got %v, want %v", provinces, want)
	}
	if len(groups["서울"]) != 6 {
		t.Errorf("서울 regions: got %d, want 6", len(groups["서울"]))
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regions.yaml")
	content := `regions:
  - name: 분당구
    province: 경기
    cortarNo: "4113500000"
    centerLat: 37.38
    centerLon: 127.12
    bounds:
      northLat: 37.41
      southLat: 37.34
      eastLon: 127.16
      westLon: 127.08
    keywords: [분당, 정자]
    excludeKeywords: [수지]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c := Default()
	if err := c.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	r, err := c.Lookup("분당구")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if r.Bounds.North != 37.41 || r.Keywords[1] != "정자" {
		t.Errorf("decoded region: %+v", r)
	}
	if len(c.Names()) != 14 {
		t.Errorf("names: got %d, want 14", len(c.Names()))
	}
}

func TestLoadFileRejectsInvertedBounds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	content := `regions:
  - name: 거꾸로
    cortarNo: "1"
    bounds: {northLat: 37.0, southLat: 37.5, eastLon: 127.1, westLon: 127.0}
    keywords: [x]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c := Default()
	if err := c.LoadFile(path); err == nil {
		t.Fatal("expected error for north <= south")
	}
	if _, err := c.Lookup("거꾸로"); err == nil {
		t.Error("invalid region should not be merged")
	}
}
