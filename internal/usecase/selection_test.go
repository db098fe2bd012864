package usecase

import (
	"testing"

	"github.com/cafevirtuel/backend/internal/domain"
	"github.com/cafevirtuel/backend/internal/infrastructure/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, family string) *domain.Product {
	t.Helper()
	cat, err := catalog.NewDefault()
	require.NoError(t, err)
	product, err := cat.Product(family)
	require.NoError(t, err)
	return product
}

func TestNewSelection_Defaults(t *testing.T) {
	tests := []struct {
		family string
		want   domain.SelectionSnapshot
	}{
		{
			family: catalog.FamilyCoffee,
			want: domain.SelectionSnapshot{
				"type":     {"espresso"},
				"toppings": {},
				"size":     {"medium"},
			},
		},
		{
			family: catalog.FamilyCake,
			want: domain.SelectionSnapshot{
				"type":     {"chocolate"},
				"frosting": {"buttercream"},
				"toppings": {},
				"size":     {"medium"},
			},
		},
		{
			family: catalog.FamilyIceCream,
			want:   domain.SelectionSnapshot{"type": {"vanilla"}},
		},
		{
			family: catalog.FamilyChocolate,
			want:   domain.SelectionSnapshot{"type": {"dark"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.family, func(t *testing.T) {
			sel := NewSelection(mustProduct(t, tt.family))
			assert.Equal(t, tt.want, sel.Snapshot())
		})
	}
}

func TestSelection_SelectSingle(t *testing.T) {
	t.Run("replaces the chosen option", func(t *testing.T) {
		sel := NewSelection(mustProduct(t, catalog.FamilyCoffee))

		require.NoError(t, sel.SelectSingle("type", "latte"))

		id, err := sel.SelectedID("type")
		require.NoError(t, err)
		assert.Equal(t, "latte", id)
	})

	t.Run("unknown option leaves state untouched", func(t *testing.T) {
		sel := NewSelection(mustProduct(t, catalog.FamilyCoffee))
		require.NoError(t, sel.SelectSingle("type", "mocha"))
		before := sel.Snapshot()

		err := sel.SelectSingle("type", "frappuccino")

		assert.ErrorIs(t, err, domain.ErrInvalidOption)
		assert.Equal(t, before, sel.Snapshot())
	})

	t.Run("unknown group is not found", func(t *testing.T) {
		sel := NewSelection(mustProduct(t, catalog.FamilyCoffee))
		err := sel.SelectSingle("milk", "oat")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("multiple group is rejected", func(t *testing.T) {
		sel := NewSelection(mustProduct(t, catalog.FamilyCoffee))
		err := sel.SelectSingle("toppings", "cream")
		assert.ErrorIs(t, err, domain.ErrInvalidOption)
	})
}

func TestSelection_ToggleMultiple(t *testing.T) {
	t.Run("adds and removes options", func(t *testing.T) {
		sel := NewSelection(mustProduct(t, catalog.FamilyCoffee))

		require.NoError(t, sel.ToggleMultiple("toppings", "caramel", true))
		require.NoError(t, sel.ToggleMultiple("toppings", "cream", true))

		ids, err := sel.CurrentSelection("toppings")
		require.NoError(t, err)
		assert.Equal(t, []string{"cream", "caramel"}, ids, "catalog order, not toggle order")

		require.NoError(t, sel.ToggleMultiple("toppings", "cream", false))
		ids, err = sel.CurrentSelection("toppings")
		require.NoError(t, err)
		assert.Equal(t, []string{"caramel"}, ids)
	})

	t.Run("adding twice keeps one entry", func(t *testing.T) {
		sel := NewSelection(mustProduct(t, catalog.FamilyCake))

		require.NoError(t, sel.ToggleMultiple("toppings", "nuts", true))
		require.NoError(t, sel.ToggleMultiple("toppings", "nuts", true))

		ids, err := sel.CurrentSelection("toppings")
		require.NoError(t, err)
		assert.Equal(t, []string{"nuts"}, ids)
	})

	t.Run("removing an absent option is a no-op", func(t *testing.T) {
		sel := NewSelection(mustProduct(t, catalog.FamilyCoffee))
		require.NoError(t, sel.ToggleMultiple("toppings", "cinnamon", true))
		before := sel.Snapshot()

		require.NoError(t, sel.ToggleMultiple("toppings", "cream", false))

		assert.Equal(t, before, sel.Snapshot())
		assert.Equal(t, "3.25", FormatPrice(sel.Total()))
	})

	t.Run("unknown option is rejected", func(t *testing.T) {
		sel := NewSelection(mustProduct(t, catalog.FamilyCoffee))

		assert.ErrorIs(t, sel.ToggleMultiple("toppings", "marshmallow", true), domain.ErrInvalidOption)
		assert.ErrorIs(t, sel.ToggleMultiple("toppings", "marshmallow", false), domain.ErrInvalidOption)

		ids, err := sel.CurrentSelection("toppings")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("single group is rejected", func(t *testing.T) {
		sel := NewSelection(mustProduct(t, catalog.FamilyCoffee))
		assert.ErrorIs(t, sel.ToggleMultiple("size", "large", true), domain.ErrInvalidOption)
	})
}

func TestSelection_TotalTracksMutations(t *testing.T) {
	sel := NewSelection(mustProduct(t, catalog.FamilyCoffee))
	assert.Equal(t, "3.00", FormatPrice(sel.Total()), "espresso + medium")

	require.NoError(t, sel.SelectSingle("size", "large"))
	assert.Equal(t, "3.50", FormatPrice(sel.Total()))

	require.NoError(t, sel.ToggleMultiple("toppings", "caramel", true))
	assert.Equal(t, "4.25", FormatPrice(sel.Total()))

	assert.Error(t, sel.SelectSingle("size", "venti"))
	assert.Equal(t, "4.25", FormatPrice(sel.Total()))

	config := sel.Configuration()
	size, ok := config.Single("size")
	require.True(t, ok)
	assert.Equal(t, "large", size.ID)
}

func TestRestoreSelection(t *testing.T) {
	product := mustProduct(t, catalog.FamilyCake)

	t.Run("round trip preserves every group", func(t *testing.T) {
		sel := NewSelection(product)
		require.NoError(t, sel.SelectSingle("type", "redvelvet"))
		require.NoError(t, sel.SelectSingle("frosting", "cream_cheese"))
		require.NoError(t, sel.ToggleMultiple("toppings", "fruits", true))
		require.NoError(t, sel.ToggleMultiple("toppings", "sprinkles", true))
		require.NoError(t, sel.SelectSingle("size", "small"))

		restored, err := RestoreSelection(product, sel.Snapshot())
		require.NoError(t, err)

		assert.Equal(t, sel.Snapshot(), restored.Snapshot())
		assert.True(t, sel.Total().Equal(restored.Total()))
	})

	t.Run("missing groups keep defaults", func(t *testing.T) {
		restored, err := RestoreSelection(product, domain.SelectionSnapshot{"type": {"lemon"}})
		require.NoError(t, err)

		size, err := restored.SelectedID("size")
		require.NoError(t, err)
		assert.Equal(t, "medium", size)
	})

	t.Run("unknown group fails", func(t *testing.T) {
		_, err := RestoreSelection(product, domain.SelectionSnapshot{"filling": {"jam"}})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("single group with two ids fails", func(t *testing.T) {
		_, err := RestoreSelection(product, domain.SelectionSnapshot{"type": {"lemon", "carrot"}})
		assert.ErrorIs(t, err, domain.ErrInvalidOption)
	})

	t.Run("unknown option fails", func(t *testing.T) {
		_, err := RestoreSelection(product, domain.SelectionSnapshot{"toppings": {"gold_leaf"}})
		assert.ErrorIs(t, err, domain.ErrInvalidOption)
	})
}

func TestSelection_Discard(t *testing.T) {
	sel := NewSelection(mustProduct(t, catalog.FamilyCoffee))
	sel.Discard()

	assert.True(t, sel.Discarded())
	assert.Nil(t, sel.Snapshot())
	assert.True(t, sel.Total().IsZero())
	assert.ErrorIs(t, sel.SelectSingle("type", "latte"), domain.ErrSelectionDiscarded)
	assert.ErrorIs(t, sel.ToggleMultiple("toppings", "cream", true), domain.ErrSelectionDiscarded)

	_, err := sel.CurrentSelection("type")
	assert.ErrorIs(t, err, domain.ErrSelectionDiscarded)
}
