package menurec

import (
	"sort"

	"github.com/selera/menurec/core"
)

// Stats summarizes the active catalog snapshot.
type Stats struct {
	TotalRecords int
	Available    int
	Unavailable  int

	// Tag distributions extracted from the record texts. A record with
	// several detected tags counts once per tag.
	ByProtein  map[string]int
	ByDishType map[string]int

	// Price figures over records with a parseable positive price.
	PricedRecords int
	PriceMin      int
	PriceMax      int
	PriceAvg      float64
	PriceMedian   float64

	Metadata core.SnapshotMetadata
}

// Stats computes catalog statistics over the active snapshot.
func (r *Recommender) Stats() (*Stats, error) {
	snapshot := r.snapshot.Load()
	if snapshot == nil {
		return nil, ErrNoSnapshot
	}

	stats := &Stats{
		TotalRecords: len(snapshot.Records),
		ByProtein:    make(map[string]int),
		ByDishType:   make(map[string]int),
		Metadata:     snapshot.Metadata,
	}

	var prices []int
	for i := range snapshot.Records {
		record := &snapshot.Records[i]
		if record.Available {
			stats.Available++
		} else {
			stats.Unavailable++
		}

		features := r.extractor.Extract(record.FullText())
		for _, tag := range features[core.CategoryProtein] {
			stats.ByProtein[tag]++
		}
		for _, tag := range features[core.CategoryDishType] {
			stats.ByDishType[tag]++
		}

		if record.NumericPrice > 0 {
			prices = append(prices, record.NumericPrice)
		}
	}

	if len(prices) > 0 {
		sort.Ints(prices)
		stats.PricedRecords = len(prices)
		stats.PriceMin = prices[0]
		stats.PriceMax = prices[len(prices)-1]

		sum := 0
		for _, price := range prices {
			sum += price
		}
		stats.PriceAvg = float64(sum) / float64(len(prices))

		mid := len(prices) / 2
		if len(prices)%2 == 0 {
			stats.PriceMedian = float64(prices[mid-1]+prices[mid]) / 2
		} else {
			stats.PriceMedian = float64(prices[mid])
		}
	}

	return stats, nil
}
