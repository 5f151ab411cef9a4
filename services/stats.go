package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"land-collector/models"
	"land-collector/utils"
)

type StatsService struct {
	logger *utils.Logger
}

func NewStatsService(logger *utils.Logger) *StatsService {
	return &StatsService{logger: logger}
}

// Generate summarises records for region. It returns nil for empty input.
func (s *StatsService) Generate(records []models.Complex, region models.Region) *models.Statistics {
	if len(records) == 0 {
		return nil
	}

	stats := &models.Statistics{
		TotalComplexes:   len(records),
		ComplexesByType:  make(map[string]int),
		DongDistribution: make(map[string]int),
		RecentComplexes:  []models.RecentComplex{},
	}

	deal := newPriceAccumulator()
	lease := newPriceAccumulator()

	for _, c := range records {
		stats.TotalHouseholds += models.IntValue(c.TotalHouseholdCount)

		kind := c.RealEstateTypeName
		if kind == "" {
			kind = models.OtherGroup
		}
		stats.ComplexesByType[kind]++

		group := Group(c.Name, region.Keywords)
		stats.DongDistribution[group]++

		deal.add(c.MedianDealPrice, c.MinDealPrice, c.MaxDealPrice)
		lease.add(c.MedianLeasePrice, c.MinLeasePrice, c.MaxLeasePrice)

		if year, ok := completionYear(c.CompletionYearMonth); ok && year >= models.RecentYear {
			stats.RecentComplexes = append(stats.RecentComplexes, models.RecentComplex{
				Name:           c.Name,
				CompletionDate: c.CompletionYearMonth,
				Households:     c.TotalHouseholdCount,
				Dong:           group,
			})
		}
	}

	stats.AverageDealPrice = deal.average()
	stats.AverageLeasePrice = lease.average()
	stats.PriceRange = models.PriceRange{
		MinDeal:  deal.minimum(),
		MaxDeal:  deal.max,
		MinLease: lease.minimum(),
		MaxLease: lease.max,
	}

	s.logger.Debug("[stats] %s: %d complexes, %d priced for sale, %d priced for lease",
		region.Name, stats.TotalComplexes, deal.count, lease.count)
	return stats
}

// priceAccumulator sums median prices of records that have one and tracks
// the range of their min/max prices.
type priceAccumulator struct {
	sum   decimal.Decimal
	count int64
	min   int64
	max   int64
}

func newPriceAccumulator() *priceAccumulator {
	return &priceAccumulator{sum: decimal.Zero, min: math.MaxInt64}
}

// add ignores the record entirely when median is unset or zero.
func (a *priceAccumulator) add(median, min, max *int64) {
	if median == nil || *median == 0 {
		return
	}
	a.sum = a.sum.Add(decimal.NewFromInt(*median))
	a.count++
	if min != nil && *min != 0 && *min < a.min {
		a.min = *min
	}
	if max != nil && *max > a.max {
		a.max = *max
	}
}

func (a *priceAccumulator) average() int64 {
	if a.count == 0 {
		return 0
	}
	return a.sum.Div(decimal.NewFromInt(a.count)).Round(0).IntPart()
}

func (a *priceAccumulator) minimum() int64 {
	if a.min == math.MaxInt64 {
		return 0
	}
	return a.min
}

// completionYear reads the leading year of a "YYYYMM" value.
func completionYear(ym string) (int, bool) {
	if len(ym) > 4 {
		ym = ym[:4]
	}
	end := 0
	for end < len(ym) && ym[end] >= '0' && ym[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	year, err := strconv.Atoi(ym[:end])
	if err != nil {
		return 0, false
	}
	return year, true
}

// Print writes a console summary of one region run.
func (s *StatsService) Print(result *models.CollectionResult) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  🏙  %s 수집 결과\033[0m\n", result.Region)
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Fetched from portal : \033[1m%d\033[0m\n", result.FetchedCount)
	fmt.Printf("  Inside %-12s : \033[1m%d\033[0m\n", result.Region, len(result.Complexes))
	fmt.Println()

	st := result.Statistics
	if st.Empty() {
		fmt.Printf("  No complexes matched the region\n")
		fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
		return
	}

	fmt.Printf("\033[1;33m  Prices (만원)\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Total households : \033[1m%s\033[0m\n", utils.Thousands(st.TotalHouseholds))
	fmt.Printf("  Avg deal price   : \033[1;32m%s\033[0m\n", utils.Thousands(st.AverageDealPrice))
	fmt.Printf("  Avg lease price  : \033[1;32m%s\033[0m\n", utils.Thousands(st.AverageLeasePrice))
	fmt.Printf("  Deal range       : %s ~ %s\n",
		utils.Thousands(st.PriceRange.MinDeal), utils.Thousands(st.PriceRange.MaxDeal))
	fmt.Printf("  Lease range      : %s ~ %s\n",
		utils.Thousands(st.PriceRange.MinLease), utils.Thousands(st.PriceRange.MaxLease))
	fmt.Println()

	fmt.Printf("\033[1;33m  Distribution\033[0m\n")
	fmt.Printf("  %s\n", thin)
	for _, gc := range utils.SortedCounts(st.DongDistribution) {
		bar := strings.Repeat("█", gc.Count)
		fmt.Printf("  %s %s (%d)\n", padRight(truncate(gc.Key, 12), 14), bar, gc.Count)
	}

	if result.DevelopmentPlans != nil {
		p := result.DevelopmentPlans
		fmt.Println()
		fmt.Printf("\033[1;33m  Development plans\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  road %d | rail %d | jigu %d\n", len(p.Road), len(p.Rail), len(p.Jigu))
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-1]) + "…"
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
