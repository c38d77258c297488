package sales

import (
	"testing"
	"time"

	"eczane-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleAt(name string, soldAt time.Time) models.Sale {
	return models.Sale{ProductName: name, SoldAt: soldAt}
}

func TestAggregate_TopProductsSortedAndTruncated(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)

	var records []models.Sale
	// 3 Parol, 2 Aspirin, 2 Majezik; ardından 4 tekil ürün (toplam 7 isim)
	for i := 0; i < 3; i++ {
		records = append(records, saleAt("Parol", now))
	}
	records = append(records,
		saleAt("Aspirin", now), saleAt("Aspirin", now),
		saleAt("Majezik", now), saleAt("Majezik", now),
		saleAt("Nurofen", now), saleAt("Arveles", now),
		saleAt("Dolorex", now), saleAt("Vermidon", now),
	)

	stats := Aggregate(records, now)

	require.Len(t, stats.TopProducts, 5)
	assert.Equal(t, ProductCount{Name: "Parol", Count: 3}, stats.TopProducts[0])
	// Eşit sayıda satılanlar girdideki ilk görülme sırasını korur
	assert.Equal(t, ProductCount{Name: "Aspirin", Count: 2}, stats.TopProducts[1])
	assert.Equal(t, ProductCount{Name: "Majezik", Count: 2}, stats.TopProducts[2])
	assert.Equal(t, ProductCount{Name: "Nurofen", Count: 1}, stats.TopProducts[3])
	assert.Equal(t, ProductCount{Name: "Arveles", Count: 1}, stats.TopProducts[4])
}

func TestAggregate_DailyWindowExcludesOldRecords(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)

	records := []models.Sale{
		saleAt("Parol", now),                      // bugün
		saleAt("Parol", now.AddDate(0, 0, -6)),    // pencerenin ilk günü
		saleAt("Aspirin", now.AddDate(0, 0, -10)), // pencere dışı
	}

	stats := Aggregate(records, now)

	require.Len(t, stats.Daily, 7)
	assert.Equal(t, "2025-03-09", stats.Daily[0].Label)
	assert.Equal(t, "2025-03-15", stats.Daily[6].Label)
	assert.Equal(t, 1, stats.Daily[0].Count)
	assert.Equal(t, 1, stats.Daily[6].Count)

	total := 0
	for _, b := range stats.Daily {
		total += b.Count
	}
	assert.Equal(t, 2, total)

	// Pencere dışı kayıt yine de ürün sıralamasına sayılır
	assert.Contains(t, stats.TopProducts, ProductCount{Name: "Aspirin", Count: 1})
}

func TestAggregate_MonthlyBuckets(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)

	records := []models.Sale{
		saleAt("Parol", now),
		saleAt("Parol", time.Date(2025, 1, 2, 9, 0, 0, 0, time.Local)),
		saleAt("Parol", time.Date(2024, 10, 20, 9, 0, 0, 0, time.Local)),
		saleAt("Parol", time.Date(2024, 8, 1, 9, 0, 0, 0, time.Local)), // pencere dışı
	}

	stats := Aggregate(records, now)

	require.Len(t, stats.Monthly, 6)
	assert.Equal(t, "2024-10", stats.Monthly[0].Label)
	assert.Equal(t, "2025-03", stats.Monthly[5].Label)
	assert.Equal(t, 1, stats.Monthly[0].Count)
	assert.Equal(t, 1, stats.Monthly[3].Count) // 2025-01
	assert.Equal(t, 1, stats.Monthly[5].Count)
}

func TestAggregate_MissingTimestampOnlyCountsForTopProducts(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)

	records := []models.Sale{
		{ProductName: "Parol"}, // SoldAt sıfır
		saleAt("Parol", now),
	}

	stats := Aggregate(records, now)

	assert.Equal(t, ProductCount{Name: "Parol", Count: 2}, stats.TopProducts[0])

	total := 0
	for _, b := range stats.Daily {
		total += b.Count
	}
	assert.Equal(t, 1, total)
}
