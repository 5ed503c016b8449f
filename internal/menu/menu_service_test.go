package menu_test

import (
	"context"
	"testing"

	"go-japastel-api/internal/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuService_List(t *testing.T) {
	svc, err := menu.NewService(nil)
	require.NoError(t, err)

	items := svc.List(context.Background())
	assert.NotEmpty(t, items)

	for _, item := range items {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Name)
		assert.Greater(t, item.PriceCents, int64(0))
		assert.Contains(t, item.Price, "R$")
	}
}

func TestMenuService_Get(t *testing.T) {
	svc, err := menu.NewService(nil)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		item, err := svc.Get(ctx, "pastel-carne")
		assert.NoError(t, err)
		assert.Equal(t, "Pastel de Carne", item.Name)
		assert.Equal(t, int64(850), item.UnitPrice)
	})

	t.Run("error_unknown_item", func(t *testing.T) {
		_, err := svc.Get(ctx, "hamburguer")
		assert.ErrorIs(t, err, menu.ErrItemNotFound)
	})
}
