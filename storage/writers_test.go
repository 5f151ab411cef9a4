package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"land-collector/models"
)

func sampleResult(t *testing.T) *models.CollectionResult {
	t.Helper()
	var decoded models.Complex
	raw := `{"complexNo":"7","complexName":"역삼래미안","latitude":37.5,"longitude":127.03,"medianDealPrice":250000,"markerId":"m7"}`
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatal(err)
	}

	return &models.CollectionResult{
		RunID:          uuid.New(),
		CollectionTime: time.Date(2025, 9, 1, 3, 4, 5, 6_000_000, time.UTC),
		Region:         "강남구",
		Location:       "강남구 지역",
		Method:         models.CollectionMethod,
		FetchedCount:   5,
		Complexes: []models.Complex{
			decoded,
			{Name: "도곡렉슬", Latitude: models.Float(37.48), Longitude: models.Float(127.05),
				TotalHouseholdCount: models.Int(3002), DealCount: models.Int(0)},
		},
		Statistics: &models.Statistics{TotalComplexes: 2, AverageDealPrice: 250000},
	}
}

func TestBaseName(t *testing.T) {
	at := time.Date(2025, 9, 1, 3, 4, 5, 6_000_000, time.UTC)
	got := BaseName("out", "강남 구/1", at)
	want := filepath.Join("out", "강남_구_1_data_2025-09-01T03-04-05-006Z")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCSVWriterEmptyCells(t *testing.T) {
	dir := t.TempDir()
	path, err := NewCSVWriter().Write(sampleResult(t), filepath.Join(dir, "r"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("rows: got %d, want header + 2", len(rows))
	}
	if len(rows[0]) != 16 || rows[0][0] != "단지명" || rows[0][15] != "월세매물수" {
		t.Errorf("header: %v", rows[0])
	}
	if rows[1][9] != "250000" {
		t.Errorf("median deal: got %q", rows[1][9])
	}
	if rows[1][6] != "" {
		t.Errorf("unset households should be empty, got %q", rows[1][6])
	}
	if rows[2][6] != "3002" || rows[2][13] != "0" {
		t.Errorf("row 2: %v", rows[2])
	}
}

func TestJSONWriterKeepsRawFields(t *testing.T) {
	dir := t.TempDir()
	path, err := NewJSONWriter().Write(sampleResult(t), filepath.Join(dir, "r"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	for _, key := range []string{"runId", "collectionTime", "region", "location", "method", "fetchedCount", "complexes", "statistics"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	if _, ok := doc["developmentPlans"]; ok {
		t.Error("developmentPlans should be omitted when not collected")
	}
	first := doc["complexes"].([]any)[0].(map[string]any)
	if first["markerId"] != "m7" {
		t.Errorf("raw portal field lost: %v", first)
	}
}

func TestJSONWriterNullStatistics(t *testing.T) {
	r := sampleResult(t)
	r.Complexes = []models.Complex{}
	r.Statistics = nil

	path, err := NewJSONWriter().Write(r, filepath.Join(t.TempDir(), "r"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"statistics": null`) {
		t.Errorf("expected null statistics:\n%s", data)
	}
}

func TestMarkdownTopComplexes(t *testing.T) {
	r := sampleResult(t)
	for i := 0; i < 12; i++ {
		r.Complexes = append(r.Complexes, models.Complex{
			Name:            fmt.Sprintf("단지%02d", i),
			MedianDealPrice: models.Int(int64(1000 * (i + 1))),
		})
	}

	region := models.Region{Name: "강남구", CenterLat: 37.5172, CenterLon: 127.0473,
		Bounds: models.Bounds{North: 37.555, South: 37.47, East: 127.085, West: 127.005}}
	md := NewMarkdownWriter(region).Render(r)

	if !strings.Contains(md, "### 1. 역삼래미안") {
		t.Error("highest median deal price should rank first")
	}
	if !strings.Contains(md, "### 10. 단지03") {
		t.Error("tenth entry should be 단지03")
	}
	if strings.Contains(md, "### 11.") {
		t.Error("report should list at most 10 complexes")
	}
	if !strings.Contains(md, "25.0억원") {
		t.Error("price should also be shown in 억원")
	}
	if !strings.Contains(md, "중심 좌표: 37.5172, 127.0473") {
		t.Error("region centre missing")
	}
	if r.Complexes[0].Name != "역삼래미안" || r.Complexes[2].Name != "단지00" {
		t.Error("Render must not reorder the result")
	}
}

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	paths, err := WriteAll(sampleResult(t), dir, NewJSONWriter(), NewCSVWriter(), NewMarkdownWriter())
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("paths: %v", paths)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("%s: %v", p, err)
		}
		if !strings.Contains(filepath.Base(p), "강남구_data_") {
			t.Errorf("unexpected name %s", p)
		}
	}
}
