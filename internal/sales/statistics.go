package sales

import (
	"sort"
	"time"

	"eczane-backend/internal/models"
)

type ProductCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type BucketCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type Statistics struct {
	TopProducts []ProductCount `json:"top_products"`
	Daily       []BucketCount  `json:"daily"`   // son 7 gün, eskiden yeniye
	Monthly     []BucketCount  `json:"monthly"` // son 6 ay, eskiden yeniye
}

// Aggregate tüm satış log'u üzerinden istatistikleri yeniden hesaplar.
// Saf fonksiyondur; "bugün" dışarıdan verilir ki testler deterministik olsun.
// Tarihsiz kayıtlar zaman bazlı grafiklere girmez ama ürün sıralamasına sayılır.
func Aggregate(records []models.Sale, now time.Time) Statistics {
	// Ürün adı bazında sayım; eşitlikte girdideki ilk görülme sırası korunur
	counts := make(map[string]int)
	var order []string
	for _, s := range records {
		if _, ok := counts[s.ProductName]; !ok {
			order = append(order, s.ProductName)
		}
		counts[s.ProductName]++
	}

	top := make([]ProductCount, 0, len(order))
	for _, name := range order {
		top = append(top, ProductCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > 5 {
		top = top[:5]
	}

	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	daily := make([]BucketCount, 7)
	for i := range daily {
		daily[i] = BucketCount{Label: today.AddDate(0, 0, i-6).Format("2006-01-02")}
	}

	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	monthly := make([]BucketCount, 6)
	for i := range monthly {
		monthly[i] = BucketCount{Label: thisMonth.AddDate(0, i-5, 0).Format("2006-01")}
	}

	for _, s := range records {
		if s.SoldAt.IsZero() {
			continue
		}
		t := s.SoldAt.In(loc)

		day := t.Format("2006-01-02")
		for i := range daily {
			if daily[i].Label == day {
				daily[i].Count++
				break
			}
		}

		month := t.Format("2006-01")
		for i := range monthly {
			if monthly[i].Label == month {
				monthly[i].Count++
				break
			}
		}
	}

	return Statistics{TopProducts: top, Daily: daily, Monthly: monthly}
}
