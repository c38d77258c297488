package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eczane-backend/internal/inventory"
	"eczane-backend/internal/models"

	"gorm.io/gorm"
)

// Store append-only satış log'u. Kayıtlar yazıldıktan sonra asla güncellenmez
// veya silinmez; zaman damgasını depo atar.
type Store interface {
	// Append satışı kaydeder ve SoldAt'ı sunucu saatiyle doldurur.
	Append(ctx context.Context, sale *models.Sale) error

	// GetByNonce idempotency kontrolü için; kayıt yoksa inventory.ErrNotFound.
	GetByNonce(ctx context.Context, nonce string) (*models.Sale, error)

	// ListAll tüm log'u satış zamanına göre azalan sırada döndürür.
	ListAll(ctx context.Context) ([]models.Sale, error)
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return inventory.ErrNotFound
	}
	return fmt.Errorf("%w: %v", inventory.ErrStoreUnavailable, err)
}

func (s *GormStore) Append(ctx context.Context, sale *models.Sale) error {
	sale.SoldAt = time.Now()
	if err := s.db.WithContext(ctx).Create(sale).Error; err != nil {
		return translateErr(err)
	}
	return nil
}

func (s *GormStore) GetByNonce(ctx context.Context, nonce string) (*models.Sale, error) {
	var sale models.Sale
	if err := s.db.WithContext(ctx).Where("nonce = ?", nonce).First(&sale).Error; err != nil {
		return nil, translateErr(err)
	}
	return &sale, nil
}

func (s *GormStore) ListAll(ctx context.Context) ([]models.Sale, error) {
	var list []models.Sale
	if err := s.db.WithContext(ctx).Order("sold_at desc").Find(&list).Error; err != nil {
		return nil, translateErr(err)
	}
	return list, nil
}
