package utils

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// Thousands formats n with comma grouping (1234567 -> "1,234,567").
func Thousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if n < 0 {
		neg = true
		s = s[1:]
	}

	out := make([]byte, 0, len(s)+len(s)/3+1)
	if neg {
		out = append(out, '-')
	}
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return string(out)
}

// Eok converts a price in 만원 to 억원 with one decimal place (250000 -> "25.0억원").
func Eok(manwon int64) string {
	return decimal.NewFromInt(manwon).Div(decimal.NewFromInt(10000)).StringFixed(1) + "억원"
}

// KeyCount is one entry of a count map.
type KeyCount struct {
	Key   string
	Count int
}

// SortedCounts orders a count map by count descending, then key.
func SortedCounts(m map[string]int) []KeyCount {
	out := make([]KeyCount, 0, len(m))
	for k, v := range m {
		out = append(out, KeyCount{k, v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}
