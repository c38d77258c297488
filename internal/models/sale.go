package models

import "time"

// Sale teslim edilen her ürün için bir kez yazılır ve sonradan asla
// değiştirilmez veya silinmez. Ürün bilgileri satış anında snapshot olarak
// kopyalanır; ürün daha sonra düzenlense ya da silinse bile satış geçmişi
// olduğu gibi kalır.
type Sale struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Ürün referansı ve satış anındaki snapshot alanları
	ProductID       uint   `gorm:"index" json:"product_id"`
	ProductName     string `gorm:"size:255" json:"product_name"`
	StockCode       string `gorm:"size:100" json:"stock_code"`
	Barcode         string `gorm:"size:100" json:"barcode"`
	ProductImageURL string `gorm:"size:500" json:"product_image_url"`

	// Müşteri bilgileri (satış anında serbest metin olarak alınır)
	CustomerName       string `gorm:"size:100" json:"customer_name"`
	CustomerNationalID string `gorm:"size:11" json:"customer_national_id"`
	CustomerPhone      string `gorm:"size:20" json:"customer_phone"`

	// Sunucu tarafından atanan satış zamanı
	SoldAt time.Time `gorm:"index" json:"sold_at"`

	// İşlemi yapan personel
	SoldByID uint   `json:"sold_by_id"`
	SoldBy   string `gorm:"size:100" json:"sold_by"` // e-posta (denormalize)

	// İstemci nonce'u: aynı nonce ile tekrar gönderilen istek yeni kayıt
	// oluşturmaz, mevcut satışı döndürür
	Nonce string `gorm:"size:64;uniqueIndex" json:"nonce"`
}
