package inventory

// Ürün belgeleri iki paralel alan adlandırmasıyla kaydedilmiş durumda: eski
// kayıtlar Türkçe anahtarlar, yenileri İngilizce anahtarlar kullanıyor ve
// bazı kayıtlarda ikisi birden var. Anahtar bilgisi SADECE bu dosyada yaşar;
// diğer bileşenler yalnızca kanonik Product ile çalışır.
const (
	KeyName          = "name"
	KeyNameTR        = "urun_adi"
	KeyStockCode     = "stockCode"
	KeyStockCodeTR   = "stok_kodu"
	KeyBarcode       = "barcode"
	KeyBarcodeTR     = "barkod_kodu"
	KeyQuantity      = "quantity"
	KeyQuantityTR    = "stok_miktari"
	KeyPrice         = "price"
	KeyPriceTR       = "fiyat"
	KeyBrand         = "brand"
	KeyBrandTR       = "urun_markasi"
	KeyDescription   = "description"
	KeyDescriptionTR = "urun_aciklamasi"
	KeyImageURL      = "imageUrl"
	KeyImageURLTR    = "urun_resmi_url"
	KeyShelfRow      = "shelfRow"
	KeyShelfColumn   = "shelfColumn"
)

// Product ham belgeden türetilen, dialect bağımsız ürün temsili.
type Product struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	StockCode   string  `json:"stock_code"`
	Barcode     string  `json:"barcode"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Brand       string  `json:"brand"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	ShelfRow    string  `json:"shelf_row"`
	ShelfColumn string  `json:"shelf_column"`
}

// Normalize ham ürün belgesini kanonik Product'a çevirir. Her alan için önce
// İngilizce anahtara, yoksa Türkçe anahtara bakılır; ikisi de yoksa tipe uygun
// boş değer kullanılır. Saf fonksiyondur: I/O yapmaz, girdiyi değiştirmez.
func Normalize(id uint, data map[string]any) Product {
	return Product{
		ID:          id,
		Name:        stringField(data, KeyName, KeyNameTR, ""),
		StockCode:   stringField(data, KeyStockCode, KeyStockCodeTR, ""),
		Barcode:     stringField(data, KeyBarcode, KeyBarcodeTR, ""),
		Quantity:    intField(data, KeyQuantity, KeyQuantityTR),
		Price:       floatField(data, KeyPrice, KeyPriceTR),
		Brand:       stringField(data, KeyBrand, KeyBrandTR, ""),
		Description: stringField(data, KeyDescription, KeyDescriptionTR, ""),
		ImageURL:    stringField(data, KeyImageURL, KeyImageURLTR, ""),
		ShelfRow:    stringField(data, KeyShelfRow, "", "1"),
		ShelfColumn: stringField(data, KeyShelfColumn, "", "A"),
	}
}

func stringField(data map[string]any, enKey, trKey, def string) string {
	for _, key := range []string{enKey, trKey} {
		if key == "" {
			continue
		}
		if v, ok := data[key]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return def
}

// intField jsonb'den gelen sayı tiplerini (float64) ve bellekten gelenleri
// (int, int64) kabul eder.
func intField(data map[string]any, enKey, trKey string) int {
	for _, key := range []string{enKey, trKey} {
		if v, ok := data[key]; ok {
			switch n := v.(type) {
			case float64:
				return int(n)
			case int:
				return n
			case int64:
				return int(n)
			}
		}
	}
	return 0
}

func floatField(data map[string]any, enKey, trKey string) float64 {
	for _, key := range []string{enKey, trKey} {
		if v, ok := data[key]; ok {
			switch n := v.(type) {
			case float64:
				return n
			case int:
				return float64(n)
			case int64:
				return float64(n)
			}
		}
	}
	return 0
}
