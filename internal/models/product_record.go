package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProductRecord bir ürün belgesinin ham halidir. Alan adları belge içinde yaşar,
// kolon olarak değil: eski kayıtlar Türkçe anahtarlar (urun_adi, stok_miktari...),
// yenileri İngilizce anahtarlar (name, quantity...) kullanır ve ikisi aynı
// tabloda yan yana durur. Anahtar öncelik kuralı tek yerde, inventory.Normalize
// içinde uygulanır.
type ProductRecord struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Data      datatypes.JSONMap `gorm:"type:jsonb;not null" json:"data"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
