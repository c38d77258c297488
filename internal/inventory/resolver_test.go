package inventory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupResolver(t *testing.T) (*MemoryStore, *Resolver) {
	t.Helper()
	store := NewMemoryStore()
	return store, NewResolver(store)
}

func TestResolve_ByIDWinsOverStockCodeCollision(t *testing.T) {
	ctx := context.Background()
	store, resolver := setupResolver(t)

	first, err := store.Create(ctx, map[string]any{"name": "Parol", "stockCode": "PRL"})
	require.NoError(t, err)

	// İkinci ürünün stok kodu, ilk ürünün id'siyle çakışıyor; id yolu kazanmalı
	_, err = store.Create(ctx, map[string]any{"name": "Aspirin", "stockCode": "1"})
	require.NoError(t, err)

	p, err := resolver.Resolve(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, p.ID)
	assert.Equal(t, "Parol", p.Name)
}

func TestResolve_TurkishStockCodeFallback(t *testing.T) {
	ctx := context.Background()
	store, resolver := setupResolver(t)

	rec, err := store.Create(ctx, map[string]any{"urun_adi": "Majezik", "stok_kodu": "MJZ-100"})
	require.NoError(t, err)

	p, err := resolver.Resolve(ctx, "MJZ-100")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, p.ID)
	assert.Equal(t, "Majezik", p.Name)
}

func TestResolve_BarcodeFallbacks(t *testing.T) {
	ctx := context.Background()
	store, resolver := setupResolver(t)

	en, err := store.Create(ctx, map[string]any{"name": "Nurofen", "barcode": "8690001"})
	require.NoError(t, err)
	tr, err := store.Create(ctx, map[string]any{"urun_adi": "Arveles", "barkod_kodu": "8690002"})
	require.NoError(t, err)

	p, err := resolver.Resolve(ctx, "8690001")
	require.NoError(t, err)
	assert.Equal(t, en.ID, p.ID)

	p, err = resolver.Resolve(ctx, "8690002")
	require.NoError(t, err)
	assert.Equal(t, tr.ID, p.ID)
}

func TestResolve_EnglishFieldTriedBeforeTurkish(t *testing.T) {
	ctx := context.Background()
	store, resolver := setupResolver(t)

	// Aynı kod hem bir kaydın Türkçe alanında hem başka kaydın İngilizce
	// alanında: İngilizce alan önce sorgulandığı için o kayıt bulunmalı
	_, err := store.Create(ctx, map[string]any{"urun_adi": "Eski", "stok_kodu": "X-1"})
	require.NoError(t, err)
	enRec, err := store.Create(ctx, map[string]any{"name": "Yeni", "stockCode": "X-1"})
	require.NoError(t, err)

	p, err := resolver.Resolve(ctx, "X-1")
	require.NoError(t, err)
	assert.Equal(t, enRec.ID, p.ID)
}

func TestResolve_FirstMatchWinsOnDuplicateCodes(t *testing.T) {
	ctx := context.Background()
	store, resolver := setupResolver(t)

	first, err := store.Create(ctx, map[string]any{"name": "Birinci", "stockCode": "DUP"})
	require.NoError(t, err)
	_, err = store.Create(ctx, map[string]any{"name": "İkinci", "stockCode": "DUP"})
	require.NoError(t, err)

	p, err := resolver.Resolve(ctx, "DUP")
	require.NoError(t, err)
	assert.Equal(t, first.ID, p.ID)
}

// unavailableStore tüm okuma yollarında bağlantı hatası döndürür
type unavailableStore struct {
	*MemoryStore
}

func (s *unavailableStore) GetByID(ctx context.Context, id uint) (*Record, error) {
	return nil, fmt.Errorf("%w: bağlantı koptu", ErrStoreUnavailable)
}

func (s *unavailableStore) FindFirstByField(ctx context.Context, field, value string) (*Record, error) {
	return nil, fmt.Errorf("%w: bağlantı koptu", ErrStoreUnavailable)
}

func TestResolve_StoreFailureNotMappedToNotFound(t *testing.T) {
	ctx := context.Background()
	resolver := NewResolver(&unavailableStore{NewMemoryStore()})

	// Alan sorgusu yolu: depo hatası olduğu gibi yukarı taşınmalı,
	// "katalogda yok" sonucuna çevrilmemeli
	_, err := resolver.Resolve(ctx, "PRL-500")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrNotFound)

	// id yolu da aynı şekilde
	_, err = resolver.Resolve(ctx, "1")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestResolve_NotFound(t *testing.T) {
	ctx := context.Background()
	store, resolver := setupResolver(t)

	_, err := store.Create(ctx, map[string]any{"name": "Parol", "stockCode": "PRL"})
	require.NoError(t, err)

	_, err = resolver.Resolve(ctx, "YOK-123")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = resolver.Resolve(ctx, "   ")
	assert.ErrorIs(t, err, ErrNotFound)
}
