package sales

import (
	"context"
	"sort"
	"sync"
	"time"

	"eczane-backend/internal/inventory"
	"eczane-backend/internal/models"
)

// MemoryStore Store'un bellek içi implementasyonu; testlerde ve Postgres
// olmadan yerel çalıştırmada kullanılır.
type MemoryStore struct {
	mu    sync.RWMutex
	seq   uint
	sales []models.Sale
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(ctx context.Context, sale *models.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	sale.ID = s.seq
	sale.SoldAt = time.Now()
	s.sales = append(s.sales, *sale)
	return nil
}

func (s *MemoryStore) GetByNonce(ctx context.Context, nonce string) (*models.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.sales {
		if s.sales[i].Nonce == nonce {
			sale := s.sales[i]
			return &sale, nil
		}
	}
	return nil, inventory.ErrNotFound
}

func (s *MemoryStore) ListAll(ctx context.Context) ([]models.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Sale, len(s.sales))
	copy(out, s.sales)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SoldAt.After(out[j].SoldAt) })
	return out, nil
}
