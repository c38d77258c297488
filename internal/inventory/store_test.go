package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecrementQuantity_PreservesEnglishDialect(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	rec, err := store.Create(ctx, map[string]any{"name": "Parol", "quantity": 3})
	require.NoError(t, err)

	newQty, err := store.DecrementQuantity(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, newQty)

	got, err := store.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Data["quantity"])
	assert.NotContains(t, got.Data, "stok_miktari")
}

func TestDecrementQuantity_PreservesTurkishDialect(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	rec, err := store.Create(ctx, map[string]any{"urun_adi": "Majezik", "stok_miktari": 1})
	require.NoError(t, err)

	newQty, err := store.DecrementQuantity(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, newQty)

	got, err := store.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Data["stok_miktari"])
	assert.NotContains(t, got.Data, "quantity")
}

func TestDecrementQuantity_WritesBothDialectsWhenNeitherExists(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	rec, err := store.Create(ctx, map[string]any{"name": "Aspirin"})
	require.NoError(t, err)

	newQty, err := store.DecrementQuantity(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, newQty)

	got, err := store.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Data["quantity"])
	assert.Equal(t, 0, got.Data["stok_miktari"])
}

func TestDecrementQuantity_FlooredAtZero(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	rec, err := store.Create(ctx, map[string]any{"name": "Parol", "quantity": 0})
	require.NoError(t, err)

	newQty, err := store.DecrementQuantity(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, newQty)
}

func TestUpdateFields_MergesWithoutDroppingOtherKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	rec, err := store.Create(ctx, map[string]any{"urun_adi": "Majezik", "stok_kodu": "MJZ", "stok_miktari": 4})
	require.NoError(t, err)

	require.NoError(t, store.UpdateFields(ctx, rec.ID, map[string]any{"stok_miktari": 9}))

	got, err := store.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Data["stok_miktari"])
	assert.Equal(t, "Majezik", got.Data["urun_adi"])
	assert.Equal(t, "MJZ", got.Data["stok_kodu"])
}

func TestMemoryStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.GetByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.Delete(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
