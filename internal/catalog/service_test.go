package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecofinds_backend/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewMemoryStore())
}

func TestServiceCreate(t *testing.T) {
	svc := newTestService(t)

	t.Run("applies defaults", func(t *testing.T) {
		p, err := svc.Create(CreateInput{OwnerID: "u1", Title: "  Lamp  "})

		require.NoError(t, err)
		assert.Equal(t, "Lamp", p.Title)
		assert.Equal(t, models.DefaultCategory, p.Category)
		assert.Equal(t, models.DefaultCondition, p.Condition)
		assert.Equal(t, models.StatusAvailable, p.Status)
		assert.Equal(t, 0.0, p.Price)
	})

	t.Run("rejects missing owner", func(t *testing.T) {
		_, err := svc.Create(CreateInput{Title: "Lamp"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := svc.Create(CreateInput{OwnerID: "u1", Title: ""})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := svc.Create(CreateInput{OwnerID: "u1", Title: "Lamp", Price: -1})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("validation failures do not mutate the store", func(t *testing.T) {
		before, err := svc.List(Query{})
		require.NoError(t, err)

		_, err = svc.Create(CreateInput{OwnerID: "u1", Title: "Bad", Price: -5})
		require.ErrorIs(t, err, ErrValidation)

		after, err := svc.List(Query{})
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})
}

func TestServiceOwnership(t *testing.T) {
	svc := newTestService(t)

	lamp, err := svc.Create(CreateInput{OwnerID: "u1", Title: "Lamp", Price: 20})
	require.NoError(t, err)
	_, err = svc.Create(CreateInput{OwnerID: "u2", Title: "Desk Lamp", Price: 45})
	require.NoError(t, err)

	t.Run("query scenario", func(t *testing.T) {
		got, err := svc.List(Query{Search: "lamp", SortBy: "price", SortOrder: "asc"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Lamp", got[0].Title)
		assert.Equal(t, "Desk Lamp", got[1].Title)
	})

	t.Run("non-owner update is forbidden and changes nothing", func(t *testing.T) {
		price := 99.0
		_, err := svc.Update(lamp.ID, "u2", Patch{Price: &price})
		assert.ErrorIs(t, err, ErrForbidden)

		unchanged, err := svc.Get(lamp.ID)
		require.NoError(t, err)
		assert.Equal(t, 20.0, unchanged.Price)
	})

	t.Run("non-owner delete is forbidden", func(t *testing.T) {
		err := svc.Delete(lamp.ID, "u2")
		assert.ErrorIs(t, err, ErrForbidden)

		_, err = svc.Get(lamp.ID)
		assert.NoError(t, err)
	})

	t.Run("owner update succeeds", func(t *testing.T) {
		status := models.StatusSold
		updated, err := svc.Update(lamp.ID, "u1", Patch{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, models.StatusSold, updated.Status)
	})

	t.Run("missing id beats forbidden", func(t *testing.T) {
		_, err := svc.Update("missing", "u2", Patch{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestServiceUpdateValidation(t *testing.T) {
	svc := newTestService(t)
	lamp, err := svc.Create(CreateInput{OwnerID: "u1", Title: "Lamp", Price: 20})
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(lamp.ID, "u1", Patch{Title: &empty})
	assert.ErrorIs(t, err, ErrValidation)

	negative := -3.0
	_, err = svc.Update(lamp.ID, "u1", Patch{Price: &negative})
	assert.ErrorIs(t, err, ErrValidation)

	bogus := "lost"
	_, err = svc.Update(lamp.ID, "u1", Patch{Status: &bogus})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestServiceDelete(t *testing.T) {
	svc := newTestService(t)
	lamp, err := svc.Create(CreateInput{OwnerID: "u1", Title: "Lamp"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(lamp.ID, "u1"))

	_, err = svc.Get(lamp.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceCategories(t *testing.T) {
	svc := newTestService(t)

	categories, err := svc.Categories()
	require.NoError(t, err)
	assert.Empty(t, categories)

	lamp, err := svc.Create(CreateInput{OwnerID: "u1", Title: "Lamp", Category: "Furniture"})
	require.NoError(t, err)
	_, err = svc.Create(CreateInput{OwnerID: "u1", Title: "Bike", Category: "Sports"})
	require.NoError(t, err)
	_, err = svc.Create(CreateInput{OwnerID: "u1", Title: "Chair", Category: "Furniture"})
	require.NoError(t, err)

	categories, err = svc.Categories()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Furniture", "Sports"}, categories)

	// Dropping the last product of a category drops the category with it.
	require.NoError(t, svc.Delete(lamp.ID, "u1"))
	chair, err := svc.List(Query{Category: "Furniture"})
	require.NoError(t, err)
	require.Len(t, chair, 1)
	require.NoError(t, svc.Delete(chair[0].ID, "u1"))

	categories, err = svc.Categories()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Sports"}, categories)
}

func TestServiceListByOwner(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(CreateInput{OwnerID: "u1", Title: "Lamp"})
	require.NoError(t, err)
	_, err = svc.Create(CreateInput{OwnerID: "u2", Title: "Bike"})
	require.NoError(t, err)
	_, err = svc.Create(CreateInput{OwnerID: "u1", Title: "Chair"})
	require.NoError(t, err)

	mine, err := svc.ListByOwner("u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, p := range mine {
		assert.Equal(t, "u1", p.OwnerID)
	}
}
