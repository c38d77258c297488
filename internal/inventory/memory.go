package inventory

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore Store'un bellek içi implementasyonu; testlerde ve Postgres
// olmadan yerel çalıştırmada kullanılır. "Depo sırası" artan id'dir.
type MemoryStore struct {
	mu      sync.RWMutex
	seq     uint
	records map[uint]map[string]any
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[uint]map[string]any)}
}

func copyData(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}

func (s *MemoryStore) sortedIDs() []uint {
	ids := make([]uint, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *MemoryStore) GetByID(ctx context.Context, id uint) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &Record{ID: id, Data: copyData(data)}, nil
}

func (s *MemoryStore) FindFirstByField(ctx context.Context, field, value string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.sortedIDs() {
		if v, ok := s.records[id][field]; ok {
			if str, ok := v.(string); ok && str == value {
				return &Record{ID: id, Data: copyData(s.records[id])}, nil
			}
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) List(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.records))
	for _, id := range s.sortedIDs() {
		out = append(out, Record{ID: id, Data: copyData(s.records[id])})
	}
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, data map[string]any) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.records[s.seq] = copyData(data)
	return &Record{ID: s.seq, Data: copyData(data)}, nil
}

func (s *MemoryStore) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.records[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		data[k] = v
	}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}

func (s *MemoryStore) DecrementQuantity(ctx context.Context, id uint) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.records[id]
	if !ok {
		return 0, ErrNotFound
	}

	updates, newQty := decrementQuantityInData(data)
	for k, v := range updates {
		data[k] = v
	}
	return newQty, nil
}
