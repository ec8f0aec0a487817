package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-dynform/pkg/cart"
)

func product(t *testing.T, id int) cart.Product {
	t.Helper()
	p, ok := cart.Find(id)
	require.True(t, ok, "product %d", id)
	return p
}

func TestStore_AddIncrementsExistingLine(t *testing.T) {
	store := cart.NewStore()
	laptop := product(t, 1)

	store.Add(laptop)
	store.Add(product(t, 3))
	store.Add(laptop)

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, 3, store.Count())
	assert.InDelta(t, 2*999.99+199.99, store.Total(), 0.001)
}

func TestStore_UpdateQuantity(t *testing.T) {
	store := cart.NewStore()
	store.Add(product(t, 2))
	store.Add(product(t, 4))

	store.UpdateQuantity(2, 5)
	assert.Equal(t, 6, store.Count())

	store.UpdateQuantity(99, 3)
	assert.Equal(t, 6, store.Count())

	store.UpdateQuantity(4, 0)
	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Product.ID)
}

func TestStore_RemoveAndClear(t *testing.T) {
	store := cart.NewStore()
	store.Add(product(t, 1))
	store.Add(product(t, 5))

	store.Remove(1)
	assert.Equal(t, 1, store.Count())

	store.Clear()
	assert.Empty(t, store.Items())
	assert.Zero(t, store.Total())
}

func TestStore_SubscribePublishesChanges(t *testing.T) {
	store := cart.NewStore()
	ch, cancel := store.Subscribe()
	defer cancel()

	assert.Empty(t, <-ch)

	store.Add(product(t, 6))
	items := <-ch
	require.Len(t, items, 1)
	assert.Equal(t, "Camera", items[0].Product.Name)
}

func TestStore_ItemsAreCopies(t *testing.T) {
	store := cart.NewStore()
	store.Add(product(t, 1))

	items := store.Items()
	items[0].Quantity = 42

	assert.Equal(t, 1, store.Count())
}
