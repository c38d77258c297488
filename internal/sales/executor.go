package sales

import (
	"context"
	"errors"
	"fmt"

	"eczane-backend/internal/inventory"
	"eczane-backend/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrOutOfStock ön koşul sağlanmadı: hiçbir yazma yapılmadı, işlem
	// baştan güvenle tekrarlanabilir.
	ErrOutOfStock = errors.New("ürün stokta yok")

	// ErrPartialWrite satış kaydı yazıldı ama stok düşümü başarısız oldu.
	// Kayıt geri alınmaz; mutabakat manuel yapılır. Çağıran taraf bu
	// hatadan sonra isteği körlemesine TEKRARLAMAMALIDIR — aynı nonce ile
	// yapılan çağrı mevcut satışı döndürür, yenisini yazmaz.
	ErrPartialWrite = errors.New("satış kaydedildi ancak stok düşülemedi")
)

type Customer struct {
	Name       string
	NationalID string
	Phone      string
}

type Actor struct {
	ID    uint
	Email string
}

// Executor teslim işlemini yürütür: ön koşul kontrolü, satış kaydı, stok
// düşümü. İşlemi yapan kullanıcı her zaman parametre olarak gelir.
type Executor struct {
	products inventory.Store
	sales    Store
}

func NewExecutor(products inventory.Store, sales Store) *Executor {
	return &Executor{products: products, sales: sales}
}

// Dispense bir ürünün tek adedini müşteriye teslim eder.
//
// Sıra: (1) nonce daha önce işlendiyse mevcut satış döndürülür — replay
// hiçbir ön koşula takılmamalı, ilk teslim son adedi tüketmiş olsa bile;
// (2) stok > 0 ön koşulu — sağlanmazsa hiçbir yazma olmadan ErrOutOfStock;
// (3) snapshot alanlarıyla satış kaydı append edilir; (4) güncel kayıt
// üzerinden stok tek atomik depo işlemiyle düşülür. Satış kaydı ile düşüm
// tek transaction DEĞİLDİR: düşüm başarısız olursa satış kaydı durur ve
// ErrPartialWrite döner. Bu tasarım, düşüm hatasında satış kaydını
// kaybetmemeyi tercih eder.
func (e *Executor) Dispense(ctx context.Context, product *inventory.Product, customer Customer, actor Actor, nonce string) (*models.Sale, error) {
	if nonce == "" {
		nonce = uuid.NewString()
	} else {
		existing, err := e.sales.GetByNonce(ctx, nonce)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, inventory.ErrNotFound) {
			return nil, err
		}
	}

	if product.Quantity <= 0 {
		return nil, ErrOutOfStock
	}

	sale := &models.Sale{
		ProductID:          product.ID,
		ProductName:        product.Name,
		StockCode:          product.StockCode,
		Barcode:            product.Barcode,
		ProductImageURL:    product.ImageURL,
		CustomerName:       customer.Name,
		CustomerNationalID: customer.NationalID,
		CustomerPhone:      customer.Phone,
		SoldByID:           actor.ID,
		SoldBy:             actor.Email,
		Nonce:              nonce,
	}

	if err := e.sales.Append(ctx, sale); err != nil {
		return nil, err
	}

	if _, err := e.products.DecrementQuantity(ctx, product.ID); err != nil {
		return sale, fmt.Errorf("%w: %v", ErrPartialWrite, err)
	}

	return sale, nil
}
