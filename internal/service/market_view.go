package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/krishimitra/krishimitra/internal/domain"
)

// AllDistricts is the district selector value meaning "no district filter".
const AllDistricts = "all"

// Sortable column keys.
const (
	SortByCrop   = "crop_name"
	SortByMandi  = "mandi_name"
	SortByPrice  = "price_per_quintal"
	SortByChange = "price_change_percentage"
)

// MarketView is the session-scoped state of the price table: one unfiltered
// fetch, then purely local filter/sort/export recomputation.
type MarketView struct {
	prices   []domain.MarketPrice
	filtered []domain.MarketPrice
	search   string
	district string
	sortKey  string
	sortAsc  bool
}

// NewMarketView takes the unfiltered price list in fetch order (newest
// first).
func NewMarketView(prices []domain.MarketPrice) *MarketView {
	v := &MarketView{
		prices:   append([]domain.MarketPrice(nil), prices...),
		district: AllDistricts,
	}
	v.refilter()
	return v
}

func (v *MarketView) SetSearch(term string) {
	v.search = term
	v.refilter()
}

func (v *MarketView) SetDistrict(district string) {
	v.district = district
	v.refilter()
}

// refilter rebuilds the visible rows and drops sort state: the sort applies
// to the current filtered view only and does not survive a filter change.
func (v *MarketView) refilter() {
	v.filtered = FilterPrices(v.prices, v.search, v.district)
	v.sortKey = ""
	v.sortAsc = false
}

// FilterPrices keeps rows passing both predicates: case-insensitive substring
// match on crop name, and exact district match unless district is empty or
// AllDistricts. Input order is preserved.
func FilterPrices(prices []domain.MarketPrice, crop, district string) []domain.MarketPrice {
	crop = strings.ToLower(strings.TrimSpace(crop))
	filtered := make([]domain.MarketPrice, 0, len(prices))
	for _, p := range prices {
		if crop != "" && !strings.Contains(strings.ToLower(p.CropName), crop) {
			continue
		}
		if district != "" && district != AllDistricts && p.District != district {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// ToggleSort sorts the filtered view by key, ascending on the first click and
// flipping direction on repeated clicks of the same column. The sort is
// stable. Unknown keys leave the view untouched.
func (v *MarketView) ToggleSort(key string) {
	less := lessFunc(key)
	if less == nil {
		return
	}
	asc := true
	if v.sortKey == key && v.sortAsc {
		asc = false
	}
	v.sortKey = key
	v.sortAsc = asc

	sort.SliceStable(v.filtered, func(i, j int) bool {
		a, b := &v.filtered[i], &v.filtered[j]
		if !asc {
			a, b = b, a
		}
		return less(a, b)
	})
}

func lessFunc(key string) func(a, b *domain.MarketPrice) bool {
	switch key {
	case SortByCrop:
		return func(a, b *domain.MarketPrice) bool { return a.CropName < b.CropName }
	case SortByMandi:
		return func(a, b *domain.MarketPrice) bool { return a.MandiName < b.MandiName }
	case SortByPrice:
		return func(a, b *domain.MarketPrice) bool { return a.PricePerQuintal < b.PricePerQuintal }
	case SortByChange:
		return func(a, b *domain.MarketPrice) bool { return a.PriceChangePercentage < b.PriceChangePercentage }
	default:
		return nil
	}
}

// Filtered returns a copy of the current visible rows.
func (v *MarketView) Filtered() []domain.MarketPrice {
	return append([]domain.MarketPrice(nil), v.filtered...)
}

// TopDeals returns the 3 rows with the highest price change within the
// current filtered view, recomputed on every call.
func (v *MarketView) TopDeals() []domain.MarketPrice {
	deals := append([]domain.MarketPrice(nil), v.filtered...)
	sort.SliceStable(deals, func(i, j int) bool {
		return deals[i].PriceChangePercentage > deals[j].PriceChangePercentage
	})
	if len(deals) > 3 {
		deals = deals[:3]
	}
	return deals
}

// ChartPoint is one point of the price trend chart.
type ChartPoint struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ChartData bins the first 10 records of the unfiltered set. The table
// honours the active filter but the chart intentionally does not; changing
// that is a product decision.
func (v *MarketView) ChartData() []ChartPoint {
	n := len(v.prices)
	if n > 10 {
		n = 10
	}
	points := make([]ChartPoint, 0, n)
	for _, p := range v.prices[:n] {
		points = append(points, ChartPoint{Name: truncate(p.CropName, 8), Price: p.PricePerQuintal})
	}
	return points
}

// Districts lists the distinct districts of the unfiltered set in first-seen
// order, for the selector.
func (v *MarketView) Districts() []string {
	seen := make(map[string]bool)
	var districts []string
	for _, p := range v.prices {
		if !seen[p.District] {
			seen[p.District] = true
			districts = append(districts, p.District)
		}
	}
	return districts
}

// ExportCSV serializes the current filtered view.
func (v *MarketView) ExportCSV() string {
	return ExportCSV(v.filtered)
}

// ExportCSV writes the five table columns with a literal header row and a %
// suffix on the change column. Field values are not delimiter-escaped, which
// is acceptable for this numeric/short-string data.
func ExportCSV(prices []domain.MarketPrice) string {
	var b strings.Builder
	b.WriteString("Crop,Mandi,District,Price,Change")
	for _, p := range prices {
		b.WriteString("\n")
		b.WriteString(p.CropName)
		b.WriteString(",")
		b.WriteString(p.MandiName)
		b.WriteString(",")
		b.WriteString(p.District)
		b.WriteString(",")
		b.WriteString(formatNumber(p.PricePerQuintal))
		b.WriteString(",")
		b.WriteString(formatNumber(p.PriceChangePercentage))
		b.WriteString("%")
	}
	return b.String()
}

// formatNumber renders a price the way the table shows it: no exponent, no
// trailing zeros.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
