package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glow/internal/models"
)

func testProduct(id int, price float64) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Test Product",
		Brand:    "Test Brand",
		Price:    price,
		Category: "lipstick",
	}
}

func TestCartAddItem(t *testing.T) {
	cs := NewCartService(newMemStore())

	require.NoError(t, cs.AddItem("s1", testProduct(1, 5.00), 1))
	require.NoError(t, cs.AddItem("s1", testProduct(1, 5.00), 1))

	cart := cs.GetCart("s1")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 10.00, cart.Items[0].TotalPrice)
	assert.Equal(t, 2, cart.TotalItems)
	assert.Equal(t, 10.00, cart.TotalPrice)
}

func TestCartAddItemInvalidQuantity(t *testing.T) {
	cs := NewCartService(newMemStore())

	assert.Error(t, cs.AddItem("s1", testProduct(1, 5.00), 0))
	assert.Error(t, cs.AddItem("s1", testProduct(1, 5.00), -3))
	assert.Empty(t, cs.GetCart("s1").Items)
}

func TestCartSetQuantity(t *testing.T) {
	cs := NewCartService(newMemStore())
	require.NoError(t, cs.AddItem("s1", testProduct(1, 5.00), 2))

	cs.SetQuantity("s1", 1, 5)
	cart := cs.GetCart("s1")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 25.00, cart.TotalPrice)

	// Miktar 1'in altına düşünce satır kalkar
	cs.SetQuantity("s1", 1, 0)
	assert.Empty(t, cs.GetCart("s1").Items)

	// Sepette olmayan ürün sessizce yok sayılır
	cs.SetQuantity("s1", 42, 3)
	assert.Empty(t, cs.GetCart("s1").Items)
}

func TestCartRemoveItem(t *testing.T) {
	cs := NewCartService(newMemStore())
	require.NoError(t, cs.AddItem("s1", testProduct(1, 5.00), 1))
	require.NoError(t, cs.AddItem("s1", testProduct(2, 7.50), 1))

	cs.RemoveItem("s1", 1)
	cart := cs.GetCart("s1")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].ProductID)
	assert.Equal(t, 7.50, cart.TotalPrice)

	// Olmayan ürünü kaldırmak işlem yapmaz
	cs.RemoveItem("s1", 42)
	assert.Len(t, cs.GetCart("s1").Items, 1)
}

func TestCartClearPreservesOpenState(t *testing.T) {
	cs := NewCartService(newMemStore())
	require.NoError(t, cs.AddItem("s1", testProduct(1, 5.00), 3))
	cs.Open("s1")

	cs.Clear("s1")
	cart := cs.GetCart("s1")
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalItems)
	assert.Zero(t, cart.TotalPrice)
	assert.True(t, cart.IsOpen)
}

func TestCartOpenClose(t *testing.T) {
	cs := NewCartService(newMemStore())

	assert.False(t, cs.GetCart("s1").IsOpen)
	cs.Open("s1")
	assert.True(t, cs.GetCart("s1").IsOpen)
	cs.Close("s1")
	assert.False(t, cs.GetCart("s1").IsOpen)
}

func TestCartItemCount(t *testing.T) {
	cs := NewCartService(newMemStore())
	require.NoError(t, cs.AddItem("s1", testProduct(1, 5.00), 2))
	require.NoError(t, cs.AddItem("s1", testProduct(2, 3.00), 3))

	assert.Equal(t, 5, cs.ItemCount("s1"))
	assert.Zero(t, cs.ItemCount("other-session"))
}

func TestCartPersistsAcrossServices(t *testing.T) {
	store := newMemStore()

	first := NewCartService(store)
	require.NoError(t, first.AddItem("s1", testProduct(1, 5.00), 2))
	first.Open("s1")

	// Yeni servis örneği aynı depodan sepeti geri yükler
	second := NewCartService(store)
	cart := second.GetCart("s1")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.TotalItems)
	assert.True(t, cart.IsOpen)
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	cs := NewCartService(newMemStore())
	require.NoError(t, cs.AddItem("s1", testProduct(1, 5.00), 1))

	assert.Empty(t, cs.GetCart("s2").Items)
}
