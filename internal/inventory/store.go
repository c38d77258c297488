package inventory

import (
	"context"
	"errors"
)

// ErrNotFound kayıt yok demektir; bir hata durumu değil geçerli bir sonuçtur
// ve bağlantı hatalarından (ErrStoreUnavailable) ayrı tutulur.
var (
	ErrNotFound         = errors.New("kayıt bulunamadı")
	ErrStoreUnavailable = errors.New("veri deposuna ulaşılamadı")
)

// Record bir ürün belgesinin ham hali: id + anahtar/değer verisi.
type Record struct {
	ID   uint
	Data map[string]any
}

// Store ürün belgelerinin dar erişim arayüzü. Tüm metodlar kayıt yoksa
// ErrNotFound, depoya ulaşılamazsa ErrStoreUnavailable sarmalanmış hata döner.
type Store interface {
	GetByID(ctx context.Context, id uint) (*Record, error)

	// FindFirstByField verilen belge alanı value'ya eşit olan kayıtlardan
	// deponun kendi sırasındaki (artan id) İLKİNİ döndürür. Stok kodu ve
	// barkod için uniqueness garanti edilmediğinden ilk eşleşme kazanır.
	FindFirstByField(ctx context.Context, field, value string) (*Record, error)

	List(ctx context.Context) ([]Record, error)
	Create(ctx context.Context, data map[string]any) (*Record, error)

	// UpdateFields verilen alanları mevcut belgeye merge eder; belgedeki
	// diğer alanlar olduğu gibi kalır.
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error

	Delete(ctx context.Context, id uint) error

	// DecrementQuantity tek atomik depo işlemi içinde güncel kaydı okur,
	// max(0, mevcut-1) hesaplar ve sonucu belgede zaten var olan dialect
	// alan(lar)ına yazar. Yeni stok miktarını döndürür.
	DecrementQuantity(ctx context.Context, id uint) (int, error)
}

// dialectUpdateField bir kanonik alanın güncellemesini doğru anahtarlara
// yönlendirir: belgede hangi dialect anahtarı varsa ona yazılır, hiçbiri
// yoksa İngilizce anahtar kullanılır.
func dialectUpdateField(data map[string]any, enKey, trKey string, value any, updates map[string]any) {
	wrote := false
	if _, ok := data[enKey]; ok {
		updates[enKey] = value
		wrote = true
	}
	if trKey != "" {
		if _, ok := data[trKey]; ok {
			updates[trKey] = value
			wrote = true
		}
	}
	if !wrote {
		updates[enKey] = value
	}
}

// decrementQuantityInData stok düşümünü belge üzerinde uygular ve yazılacak
// alanları döndürür. Hangi dialect anahtarı belgede varsa ona yazılır; hiçbiri
// yoksa iki anahtar birden yazılır ve kayıt dialect açısından tamamlanmış olur.
func decrementQuantityInData(data map[string]any) (map[string]any, int) {
	newQty := intField(data, KeyQuantity, KeyQuantityTR) - 1
	if newQty < 0 {
		newQty = 0
	}

	updates := make(map[string]any)
	if _, ok := data[KeyQuantity]; ok {
		updates[KeyQuantity] = newQty
	}
	if _, ok := data[KeyQuantityTR]; ok {
		updates[KeyQuantityTR] = newQty
	}
	if len(updates) == 0 {
		updates[KeyQuantity] = newQty
		updates[KeyQuantityTR] = newQty
	}
	return updates, newQty
}
