package inventory

import (
	"context"
	"errors"
	"fmt"

	"eczane-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore ürün belgelerini Postgres'te tek bir jsonb kolonunda tutar.
// Böylece Türkçe ve İngilizce alan adları aynı tabloda yan yana yaşayabilir.
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
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func (s *GormStore) GetByID(ctx context.Context, id uint) (*Record, error) {
	var rec models.ProductRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &Record{ID: rec.ID, Data: map[string]any(rec.Data)}, nil
}

func (s *GormStore) FindFirstByField(ctx context.Context, field, value string) (*Record, error) {
	var rec models.ProductRecord
	err := s.db.WithContext(ctx).
		Where("data->>? = ?", field, value).
		Order("id asc").
		First(&rec).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &Record{ID: rec.ID, Data: map[string]any(rec.Data)}, nil
}

func (s *GormStore) List(ctx context.Context) ([]Record, error) {
	var recs []models.ProductRecord
	if err := s.db.WithContext(ctx).Order("id asc").Find(&recs).Error; err != nil {
		return nil, translateErr(err)
	}

	out := make([]Record, 0, len(recs))
	for _, rec := range recs {
		out = append(out, Record{ID: rec.ID, Data: map[string]any(rec.Data)})
	}
	return out, nil
}

func (s *GormStore) Create(ctx context.Context, data map[string]any) (*Record, error) {
	rec := models.ProductRecord{Data: datatypes.JSONMap(data)}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, translateErr(err)
	}
	return &Record{ID: rec.ID, Data: map[string]any(rec.Data)}, nil
}

func (s *GormStore) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec models.ProductRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rec, "id = ?", id).Error; err != nil {
			return err
		}
		if rec.Data == nil {
			rec.Data = datatypes.JSONMap{}
		}
		for k, v := range fields {
			rec.Data[k] = v
		}
		return tx.Model(&models.ProductRecord{}).Where("id = ?", id).Update("data", rec.Data).Error
	})
	return translateErr(err)
}

func (s *GormStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.ProductRecord{}, "id = ?", id)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DecrementQuantity okuma, hesap ve yazmayı satır kilidi altında tek
// transaction'da yapar: aynı ürüne eş zamanlı iki teslim işlemi son adedi
// iki kez düşemez.
func (s *GormStore) DecrementQuantity(ctx context.Context, id uint) (int, error) {
	var newQty int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec models.ProductRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rec, "id = ?", id).Error; err != nil {
			return err
		}

		data := map[string]any(rec.Data)
		if data == nil {
			data = make(map[string]any)
		}

		updates, q := decrementQuantityInData(data)
		newQty = q
		for k, v := range updates {
			data[k] = v
		}

		return tx.Model(&models.ProductRecord{}).Where("id = ?", id).
			Update("data", datatypes.JSONMap(data)).Error
	})
	if err != nil {
		return 0, translateErr(err)
	}
	return newQty, nil
}
