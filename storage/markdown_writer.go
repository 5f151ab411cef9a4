package storage

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"land-collector/models"
	"land-collector/utils"
)

const topComplexCount = 10

// MarkdownWriter renders a human-readable Korean report.
type MarkdownWriter struct {
	regions map[string]models.Region
}

// NewMarkdownWriter returns a MarkdownWriter. Descriptors are used for the
// centre and bounds lines; a result for an unknown region omits them.
func NewMarkdownWriter(regions ...models.Region) *MarkdownWriter {
	m := make(map[string]models.Region, len(regions))
	for _, r := range regions {
		m[r.Name] = r
	}
	return &MarkdownWriter{regions: m}
}

// Write renders result to base+".md".
func (w *MarkdownWriter) Write(result *models.CollectionResult, base string) (string, error) {
	path := base + ".md"
	if err := writeFile(path, []byte(w.Render(result))); err != nil {
		return "", fmt.Errorf("markdown: write file %q: %w", path, err)
	}
	return path, nil
}

// Render builds the report text.
func (w *MarkdownWriter) Render(result *models.CollectionResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s 부동산 데이터 분석 리포트\n\n", result.Region)

	b.WriteString("## 수집 정보\n")
	fmt.Fprintf(&b, "- 실행 ID: %s\n", result.RunID)
	fmt.Fprintf(&b, "- 수집 일시: %s\n", result.CollectionTime.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "- 지역: %s\n", result.Location)
	if r, ok := w.regions[result.Region]; ok {
		fmt.Fprintf(&b, "- 중심 좌표: %s, %s\n", num(r.CenterLat), num(r.CenterLon))
		fmt.Fprintf(&b, "- 필터링 범위: 위도 %s~%s, 경도 %s~%s\n",
			num(r.Bounds.South), num(r.Bounds.North), num(r.Bounds.West), num(r.Bounds.East))
	}
	fmt.Fprintf(&b, "- 조회 단지: %d개 → 지역 내 %d개\n", result.FetchedCount, len(result.Complexes))

	b.WriteString("\n## 통계 요약\n")
	if st := result.Statistics; st.Empty() {
		b.WriteString("\n지역 내 단지가 없습니다.\n")
	} else {
		fmt.Fprintf(&b, "\n- 총 단지 수: %d개\n", st.TotalComplexes)
		fmt.Fprintf(&b, "- 총 세대 수: %s세대\n", utils.Thousands(st.TotalHouseholds))
		fmt.Fprintf(&b, "- 평균 매매가: %s만원 (%s)\n", utils.Thousands(st.AverageDealPrice), utils.Eok(st.AverageDealPrice))
		fmt.Fprintf(&b, "- 평균 전세가: %s만원 (%s)\n", utils.Thousands(st.AverageLeasePrice), utils.Eok(st.AverageLeasePrice))
		fmt.Fprintf(&b, "- 매매가 범위: %s ~ %s만원\n", utils.Thousands(st.PriceRange.MinDeal), utils.Thousands(st.PriceRange.MaxDeal))
		fmt.Fprintf(&b, "- 전세가 범위: %s ~ %s만원\n", utils.Thousands(st.PriceRange.MinLease), utils.Thousands(st.PriceRange.MaxLease))

		b.WriteString("\n### 부동산 타입별 분포\n")
		for _, kc := range utils.SortedCounts(st.ComplexesByType) {
			fmt.Fprintf(&b, "- %s: %d개\n", kc.Key, kc.Count)
		}

		b.WriteString("\n### 동별 분포\n")
		for _, kc := range utils.SortedCounts(st.DongDistribution) {
			fmt.Fprintf(&b, "- %s: %d개\n", kc.Key, kc.Count)
		}

		if len(st.RecentComplexes) > 0 {
			fmt.Fprintf(&b, "\n### 최근 준공 단지 (%d년 이후)\n", models.RecentYear)
			for _, rc := range st.RecentComplexes {
				fmt.Fprintf(&b, "- %s (%s, %s세대, %s)\n", rc.Name, rc.CompletionDate, optInt(rc.Households), rc.Dong)
			}
		}
	}

	if p := result.DevelopmentPlans; p != nil {
		b.WriteString("\n## 개발 계획\n")
		fmt.Fprintf(&b, "- 도로 개발: %d건\n", len(p.Road))
		fmt.Fprintf(&b, "- 철도 개발: %d건\n", len(p.Rail))
		fmt.Fprintf(&b, "- 지구 개발: %d건\n", len(p.Jigu))
	}

	fmt.Fprintf(&b, "\n## 주요 단지 정보 (%s 내)\n", result.Region)
	for i, c := range topByMedianDeal(result.Complexes, topComplexCount) {
		fmt.Fprintf(&b, "\n### %d. %s\n", i+1, c.Name)
		fmt.Fprintf(&b, "- 위치: 위도 %s, 경도 %s\n", optFloat(c.Latitude), optFloat(c.Longitude))
		fmt.Fprintf(&b, "- 세대수: %s세대\n", optInt(c.TotalHouseholdCount))
		fmt.Fprintf(&b, "- 동수: %s동\n", optInt(c.TotalDongCount))
		fmt.Fprintf(&b, "- 준공: %s\n", orMissing(c.CompletionYearMonth))
		fmt.Fprintf(&b, "- 매매 중간가: %s\n", priceLine(c.MedianDealPrice))
		fmt.Fprintf(&b, "- 전세 중간가: %s\n", priceLine(c.MedianLeasePrice))
		fmt.Fprintf(&b, "- 매물 수: 매매 %d건, 전세 %d건, 월세 %d건\n",
			models.IntValue(c.DealCount), models.IntValue(c.LeaseCount), models.IntValue(c.RentCount))
	}

	return b.String()
}

// topByMedianDeal returns up to n complexes ordered by median deal price,
// highest first, without reordering the input.
func topByMedianDeal(complexes []models.Complex, n int) []models.Complex {
	sorted := append([]models.Complex(nil), complexes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return models.IntValue(sorted[i].MedianDealPrice) > models.IntValue(sorted[j].MedianDealPrice)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func optFloat(v *float64) string {
	if v == nil {
		return "정보없음"
	}
	return num(*v)
}

func optInt(v *int64) string {
	if v == nil {
		return "정보없음"
	}
	return utils.Thousands(*v)
}

func orMissing(s string) string {
	if s == "" {
		return "정보없음"
	}
	return s
}

func priceLine(v *int64) string {
	if v == nil || *v == 0 {
		return "정보없음"
	}
	return utils.Thousands(*v) + "만원 (" + utils.Eok(*v) + ")"
}
