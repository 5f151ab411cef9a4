package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Complex is one apartment complex marker returned by the portal.
// Numeric fields are nil when the portal omitted them or sent a value of
// an unexpected type; prices are in units of 10,000 KRW (만원).
type Complex struct {
	ComplexNo           string
	Name                string
	Latitude            *float64
	Longitude           *float64
	RealEstateTypeName  string
	CompletionYearMonth string
	TotalDongCount      *int64
	TotalHouseholdCount *int64
	MinDealPrice        *int64
	MaxDealPrice        *int64
	MedianDealPrice     *int64
	MinLeasePrice       *int64
	MaxLeasePrice       *int64
	MedianLeasePrice    *int64
	DealCount           *int64
	LeaseCount          *int64
	RentCount           *int64

	raw json.RawMessage
}

// complexJSON is the portal's field naming, used when a Complex was built
// in code rather than decoded.
type complexJSON struct {
	ComplexNo           string   `json:"complexNo,omitempty"`
	Name                string   `json:"complexName"`
	Latitude            *float64 `json:"latitude,omitempty"`
	Longitude           *float64 `json:"longitude,omitempty"`
	RealEstateTypeName  string   `json:"realEstateTypeName,omitempty"`
	CompletionYearMonth string   `json:"completionYearMonth,omitempty"`
	TotalDongCount      *int64   `json:"totalDongCount,omitempty"`
	TotalHouseholdCount *int64   `json:"totalHouseholdCount,omitempty"`
	MinDealPrice        *int64   `json:"minDealPrice,omitempty"`
	MaxDealPrice        *int64   `json:"maxDealPrice,omitempty"`
	MedianDealPrice     *int64   `json:"medianDealPrice,omitempty"`
	MinLeasePrice       *int64   `json:"minLeasePrice,omitempty"`
	MaxLeasePrice       *int64   `json:"maxLeasePrice,omitempty"`
	MedianLeasePrice    *int64   `json:"medianLeasePrice,omitempty"`
	DealCount           *int64   `json:"dealCount,omitempty"`
	LeaseCount          *int64   `json:"leaseCount,omitempty"`
	RentCount           *int64   `json:"rentCount,omitempty"`
}

// UnmarshalJSON decodes a portal object field by field. A field with an
// unexpected type is left unset instead of failing the whole record.
func (c *Complex) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*c = Complex{
		ComplexNo:           rawString(fields["complexNo"]),
		Name:                rawString(fields["complexName"]),
		Latitude:            rawFloat(fields["latitude"]),
		Longitude:           rawFloat(fields["longitude"]),
		RealEstateTypeName:  rawString(fields["realEstateTypeName"]),
		CompletionYearMonth: rawString(fields["completionYearMonth"]),
		TotalDongCount:      rawInt(fields["totalDongCount"]),
		TotalHouseholdCount: rawInt(fields["totalHouseholdCount"]),
		MinDealPrice:        rawInt(fields["minDealPrice"]),
		MaxDealPrice:        rawInt(fields["maxDealPrice"]),
		MedianDealPrice:     rawInt(fields["medianDealPrice"]),
		MinLeasePrice:       rawInt(fields["minLeasePrice"]),
		MaxLeasePrice:       rawInt(fields["maxLeasePrice"]),
		MedianLeasePrice:    rawInt(fields["medianLeasePrice"]),
		DealCount:           rawInt(fields["dealCount"]),
		LeaseCount:          rawInt(fields["leaseCount"]),
		RentCount:           rawInt(fields["rentCount"]),
	}
	c.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON re-emits the portal object verbatim when the record was
// decoded, so fields this package does not model are kept.
func (c Complex) MarshalJSON() ([]byte, error) {
	if len(c.raw) > 0 {
		return c.raw, nil
	}
	return json.Marshal(complexJSON{
		ComplexNo:           c.ComplexNo,
		Name:                c.Name,
		Latitude:            c.Latitude,
		Longitude:           c.Longitude,
		RealEstateTypeName:  c.RealEstateTypeName,
		CompletionYearMonth: c.CompletionYearMonth,
		TotalDongCount:      c.TotalDongCount,
		TotalHouseholdCount: c.TotalHouseholdCount,
		MinDealPrice:        c.MinDealPrice,
		MaxDealPrice:        c.MaxDealPrice,
		MedianDealPrice:     c.MedianDealPrice,
		MinLeasePrice:       c.MinLeasePrice,
		MaxLeasePrice:       c.MaxLeasePrice,
		MedianLeasePrice:    c.MedianLeasePrice,
		DealCount:           c.DealCount,
		LeaseCount:          c.LeaseCount,
		RentCount:           c.RentCount,
	})
}

// Int returns a pointer to v.
func Int(v int64) *int64 { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// IntValue returns *p, or 0 when p is nil.
func IntValue(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func rawString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func rawFloat(raw json.RawMessage) *float64 {
	s := numericText(raw)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func rawInt(raw json.RawMessage) *int64 {
	s := numericText(raw)
	if s == "" {
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	n := int64(math.Round(f))
	return &n
}

// numericText accepts a JSON number or a string holding one ("12,300" included).
func numericText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	}
	return ""
}
