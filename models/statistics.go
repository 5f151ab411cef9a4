package models

// OtherGroup is the distribution bucket for names matching no keyword.
const OtherGroup = "other"

// PriceRange holds min/max deal and lease prices in 만원.
type PriceRange struct {
	MinDeal  int64 `json:"minDeal"`
	MaxDeal  int64 `json:"maxDeal"`
	MinLease int64 `json:"minLease"`
	MaxLease int64 `json:"maxLease"`
}

// RecentComplex is a complex completed in or after RecentYear.
type RecentComplex struct {
	Name           string `json:"name"`
	CompletionDate string `json:"completionDate"`
	Households     *int64 `json:"households"`
	Dong           string `json:"dong"`
}

// RecentYear is the first completion year counted as recent.
const RecentYear = 2020

// Statistics summarises the complexes kept for one region.
type Statistics struct {
	TotalComplexes    int             `json:"totalComplexes"`
	TotalHouseholds   int64           `json:"totalHouseholds"`
	AverageDealPrice  int64           `json:"averageDealPrice"`
	AverageLeasePrice int64           `json:"averageLeasePrice"`
	PriceRange        PriceRange      `json:"priceRange"`
	ComplexesByType   map[string]int  `json:"complexesByType"`
	DongDistribution  map[string]int  `json:"dongDistribution"`
	RecentComplexes   []RecentComplex `json:"recentComplexes"`
}

// Empty reports whether s is the no-data sentinel.
func (s *Statistics) Empty() bool {
	return s == nil
}
