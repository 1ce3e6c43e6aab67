package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecofinds_backend/models"
)

func TestMemoryStoreCreate(t *testing.T) {
	store := NewMemoryStore()

	created, err := store.Create(models.Product{
		OwnerID:   "u1",
		Title:     "Lamp",
		Price:     20,
		Category:  "Furniture",
		Condition: models.DefaultCondition,
		Status:    models.StatusAvailable,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "u1", created.OwnerID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.Before(created.CreatedAt))

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := store.Create(models.Product{OwnerID: "u1", Title: "   "})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("ids are unique", func(t *testing.T) {
		other, err := store.Create(models.Product{OwnerID: "u1", Title: "Chair"})
		require.NoError(t, err)
		assert.NotEqual(t, created.ID, other.ID)

		require.NoError(t, store.Delete(other.ID))
		again, err := store.Create(models.Product{OwnerID: "u1", Title: "Chair"})
		require.NoError(t, err)
		assert.NotEqual(t, other.ID, again.ID)
	})
}

func TestMemoryStoreUpdate(t *testing.T) {
	store := NewMemoryStore()
	created, err := store.Create(models.Product{OwnerID: "u1", Title: "Lamp", Price: 20})
	require.NoError(t, err)

	t.Run("merges patch fields", func(t *testing.T) {
		price := 25.0
		desc := "barely used"
		updated, err := store.Update(created.ID, Patch{Price: &price, Description: &desc})

		require.NoError(t, err)
		assert.Equal(t, 25.0, updated.Price)
		assert.Equal(t, "barely used", updated.Description)
		assert.Equal(t, "Lamp", updated.Title)
		assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
	})

	t.Run("never touches id, owner or createdAt", func(t *testing.T) {
		title := "Desk Lamp"
		updated, err := store.Update(created.ID, Patch{Title: &title})

		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.OwnerID, updated.OwnerID)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.Update("missing", Patch{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	created, err := store.Create(models.Product{OwnerID: "u1", Title: "Lamp"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(created.ID))

	_, err = store.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Delete(created.ID), ErrNotFound)
}

func TestMemoryStoreListKeepsCreationOrder(t *testing.T) {
	store := NewMemoryStore()
	for _, title := range []string{"a", "b", "c"} {
		_, err := store.Create(models.Product{OwnerID: "u1", Title: title})
		require.NoError(t, err)
	}

	all, err := store.List()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Title)
	assert.Equal(t, "b", all[1].Title)
	assert.Equal(t, "c", all[2].Title)
}
