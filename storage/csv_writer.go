package storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"land-collector/models"
)

var csvHeader = []string{
	"단지명", "위도", "경도", "부동산타입", "준공년월", "총동수", "총세대수",
	"최소매매가", "최대매매가", "중간매매가", "최소전세가", "최대전세가",
	"중간전세가", "매매매물수", "전세매물수", "월세매물수",
}

// CSVWriter writes the kept complexes as a flat table. Unset fields are
// empty cells.
type CSVWriter struct{}

// NewCSVWriter returns a CSVWriter.
func NewCSVWriter() *CSVWriter { return &CSVWriter{} }

// Write renders result to base+".csv".
func (w *CSVWriter) Write(result *models.CollectionResult, base string) (string, error) {
	path := base + ".csv"

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(csvHeader); err != nil {
		return "", fmt.Errorf("csv: write header: %w", err)
	}
	for _, c := range result.Complexes {
		if err := cw.Write(csvRow(c)); err != nil {
			return "", fmt.Errorf("csv: write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("csv: flush: %w", err)
	}

	if err := writeFile(path, buf.Bytes()); err != nil {
		return "", fmt.Errorf("csv: write file %q: %w", path, err)
	}
	return path, nil
}

func csvRow(c models.Complex) []string {
	return []string{
		c.Name,
		floatCell(c.Latitude),
		floatCell(c.Longitude),
		c.RealEstateTypeName,
		c.CompletionYearMonth,
		intCell(c.TotalDongCount),
		intCell(c.TotalHouseholdCount),
		intCell(c.MinDealPrice),
		intCell(c.MaxDealPrice),
		intCell(c.MedianDealPrice),
		intCell(c.MinLeasePrice),
		intCell(c.MaxLeasePrice),
		intCell(c.MedianLeasePrice),
		intCell(c.DealCount),
		intCell(c.LeaseCount),
		intCell(c.RentCount),
	}
}

func intCell(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
