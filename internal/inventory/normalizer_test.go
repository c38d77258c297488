package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_DialectsProduceSameProduct(t *testing.T) {
	english := map[string]any{
		"name":        "Parol 500mg",
		"stockCode":   "PRL-500",
		"barcode":     "8690000000001",
		"quantity":    float64(12),
		"price":       45.5,
		"brand":       "Atabay",
		"description": "Ağrı kesici",
		"imageUrl":    "https://example.com/parol.png",
	}
	turkish := map[string]any{
		"urun_adi":        "Parol 500mg",
		"stok_kodu":       "PRL-500",
		"barkod_kodu":     "8690000000001",
		"stok_miktari":    float64(12),
		"fiyat":           45.5,
		"urun_markasi":    "Atabay",
		"urun_aciklamasi": "Ağrı kesici",
		"urun_resmi_url":  "https://example.com/parol.png",
	}
	mixed := map[string]any{
		"name":           "Parol 500mg",
		"stok_kodu":      "PRL-500",
		"barcode":        "8690000000001",
		"stok_miktari":   float64(12),
		"price":          45.5,
		"urun_markasi":   "Atabay",
		"description":    "Ağrı kesici",
		"urun_resmi_url": "https://example.com/parol.png",
	}

	fromEnglish := Normalize(1, english)
	fromTurkish := Normalize(1, turkish)
	fromMixed := Normalize(1, mixed)

	assert.Equal(t, fromEnglish, fromTurkish)
	assert.Equal(t, fromEnglish, fromMixed)
	assert.Equal(t, "Parol 500mg", fromEnglish.Name)
	assert.Equal(t, 12, fromEnglish.Quantity)
	assert.Equal(t, 45.5, fromEnglish.Price)
}

func TestNormalize_EnglishKeyWinsWhenBothPresent(t *testing.T) {
	p := Normalize(1, map[string]any{
		"name":         "Aspirin",
		"urun_adi":     "Eski Ad",
		"quantity":     float64(3),
		"stok_miktari": float64(99),
	})

	assert.Equal(t, "Aspirin", p.Name)
	assert.Equal(t, 3, p.Quantity)
}

func TestNormalize_Defaults(t *testing.T) {
	p := Normalize(7, map[string]any{})

	assert.Equal(t, uint(7), p.ID)
	assert.Equal(t, "", p.Name)
	assert.Equal(t, "", p.StockCode)
	assert.Equal(t, 0, p.Quantity)
	assert.Equal(t, 0.0, p.Price)
	assert.Equal(t, "1", p.ShelfRow)
	assert.Equal(t, "A", p.ShelfColumn)
}

func TestNormalize_IntQuantityFromMemory(t *testing.T) {
	// jsonb'den float64, bellekten int gelir; ikisi de kabul edilmeli
	p := Normalize(1, map[string]any{"quantity": 5})
	assert.Equal(t, 5, p.Quantity)
}
