package inventory

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

// Resolver barkod okuyucudan ya da elle girilen koddan tek bir ürünü bulur.
// Kullanıcı stok kodu da barkod da okutabilir ve eski kayıtlar Türkçe alan
// adlarıyla durduğu için arama sıralı fallback ile yapılır.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// resolveFields sorgulanacak belge alanları, öncelik sırasıyla.
var resolveFields = []string{KeyStockCode, KeyStockCodeTR, KeyBarcode, KeyBarcodeTR}

// Resolve kodu şu sırayla dener ve ilk eşleşmede durur:
//  1. doğrudan kayıt id'si (ucuz ve kesin olduğu için her zaman önce)
//  2. İngilizce stok kodu alanı
//  3. Türkçe stok kodu alanı
//  4. İngilizce barkod alanı
//  5. Türkçe barkod alanı
//
// Hiçbiri eşleşmezse ErrNotFound döner; bu bir hata değil "katalogda yok"
// sonucudur. Depo hataları ise olduğu gibi yukarı taşınır.
func (r *Resolver) Resolve(ctx context.Context, code string) (*Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrNotFound
	}

	if id64, err := strconv.ParseUint(code, 10, 32); err == nil {
		rec, err := r.store.GetByID(ctx, uint(id64))
		if err == nil {
			p := Normalize(rec.ID, rec.Data)
			return &p, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	for _, field := range resolveFields {
		rec, err := r.store.FindFirstByField(ctx, field, code)
		if err == nil {
			p := Normalize(rec.ID, rec.Data)
			return &p, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	return nil, ErrNotFound
}
