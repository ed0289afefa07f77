package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glow/internal/models"
	"glow/internal/storage"
)

// newEmptyOrderService, demo siparişleri olmayan bir servis kurar.
func newEmptyOrderService(t *testing.T) *OrderService {
	t.Helper()
	store := newMemStore()
	require.NoError(t, storage.SetJSON(store, "orders", []models.Order{}))
	return NewOrderService(store)
}

func orderItem(id int, price float64, qty int) models.OrderItem {
	return models.OrderItem{
		ProductID:  id,
		Name:       fmt.Sprintf("Item %d", id),
		Brand:      "Glow",
		Price:      price,
		Quantity:   qty,
		TotalPrice: price * float64(qty),
	}
}

var testAddress = models.Address{
	FirstName: "Emma",
	LastName:  "Wilson",
	Address:   "123 Beauty Lane",
	City:      "Los Angeles",
	State:     "CA",
	ZipCode:   "90210",
	Country:   "USA",
}

var testPayment = models.PaymentMethod{Type: "credit_card", Last4: "4242", Brand: "Visa"}

func TestCreateOrderTotals(t *testing.T) {
	s := newEmptyOrderService(t)

	order, err := s.CreateOrder(1, []models.OrderItem{orderItem(1, 10.00, 2)}, testAddress, testAddress, testPayment)
	require.NoError(t, err)

	assert.Equal(t, 20.00, order.Subtotal)
	assert.Equal(t, 5.99, order.Shipping)
	assert.Equal(t, 1.60, order.Tax)
	assert.Equal(t, 27.59, order.Total)

	assert.Equal(t, models.OrderStatusPending, order.CurrentStatus)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, models.OrderStatusPending, order.StatusHistory[0].Status)

	assert.True(t, strings.HasPrefix(order.TrackingNumber, "TRK-"))
	assert.Len(t, order.TrackingNumber, 12)
	expectedDelivery := order.OrderDate.AddDate(0, 0, 5)
	assert.Equal(t, expectedDelivery, order.EstimatedDelivery)
}

func TestCreateOrderFreeShipping(t *testing.T) {
	s := newEmptyOrderService(t)

	order, err := s.CreateOrder(1, []models.OrderItem{orderItem(1, 25.00, 2)}, testAddress, testAddress, testPayment)
	require.NoError(t, err)

	assert.Equal(t, 50.00, order.Subtotal)
	assert.Zero(t, order.Shipping)
	assert.Equal(t, 4.00, order.Tax)
	assert.Equal(t, 54.00, order.Total)
}

func TestCreateOrderRequiresItems(t *testing.T) {
	s := newEmptyOrderService(t)

	_, err := s.CreateOrder(1, nil, testAddress, testAddress, testPayment)
	assert.Error(t, err)
}

func TestOrderIDSequence(t *testing.T) {
	s := newEmptyOrderService(t)
	year := time.Now().Year()

	first, err := s.CreateOrder(1, []models.OrderItem{orderItem(1, 10.00, 1)}, testAddress, testAddress, testPayment)
	require.NoError(t, err)
	second, err := s.CreateOrder(1, []models.OrderItem{orderItem(2, 10.00, 1)}, testAddress, testAddress, testPayment)
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("ORD-%d-001", year), first.ID)
	assert.Equal(t, fmt.Sprintf("ORD-%d-002", year), second.ID)
}

func TestCancelOrder(t *testing.T) {
	s := newEmptyOrderService(t)

	order, err := s.CreateOrder(1, []models.OrderItem{orderItem(1, 10.00, 1)}, testAddress, testAddress, testPayment)
	require.NoError(t, err)

	require.NoError(t, s.Cancel(order.ID))

	cancelled := s.GetByID(order.ID)
	require.NotNil(t, cancelled)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.CurrentStatus)
	require.Len(t, cancelled.StatusHistory, 2)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.StatusHistory[1].Status)

	// İptal edilmiş sipariş tekrar iptal edilemez, geçmiş değişmez
	assert.ErrorIs(t, s.Cancel(order.ID), ErrOrderNotCancellable)
	assert.Len(t, s.GetByID(order.ID).StatusHistory, 2)

	assert.ErrorIs(t, s.Cancel("ORD-1999-001"), ErrOrderNotFound)
}

func TestCancelNonPendingOrder(t *testing.T) {
	s := newEmptyOrderService(t)

	order, err := s.CreateOrder(1, []models.OrderItem{orderItem(1, 10.00, 1)}, testAddress, testAddress, testPayment)
	require.NoError(t, err)
	require.NoError(t, s.AppendStatus(order.ID, models.StatusEntry{Status: models.OrderStatusShipped}))

	assert.ErrorIs(t, s.Cancel(order.ID), ErrOrderNotCancellable)
	assert.Equal(t, models.OrderStatusShipped, s.GetByID(order.ID).CurrentStatus)
}

func TestAppendStatus(t *testing.T) {
	s := newEmptyOrderService(t)

	order, err := s.CreateOrder(1, []models.OrderItem{orderItem(1, 10.00, 1)}, testAddress, testAddress, testPayment)
	require.NoError(t, err)

	entry := models.StatusEntry{Status: models.OrderStatusConfirmed, Description: "Payment confirmed"}
	require.NoError(t, s.AppendStatus(order.ID, entry))

	updated := s.GetByID(order.ID)
	assert.Equal(t, models.OrderStatusConfirmed, updated.CurrentStatus)
	require.Len(t, updated.StatusHistory, 2)
	assert.False(t, updated.StatusHistory[1].Timestamp.IsZero(), "missing timestamp must be filled in")

	assert.ErrorIs(t, s.AppendStatus("ORD-1999-001", entry), ErrOrderNotFound)
}

func TestSeededOrders(t *testing.T) {
	s := NewOrderService(newMemStore())

	orders := s.GetByUser(1)
	require.Len(t, orders, 3)

	// En yeni sipariş başta
	assert.True(t, orders[0].OrderDate.After(orders[1].OrderDate))

	delivered := s.GetByID("ORD-2024-001")
	require.NotNil(t, delivered)
	assert.Equal(t, models.OrderStatusDelivered, delivered.CurrentStatus)

	assert.NotNil(t, s.GetByTracking(delivered.TrackingNumber))
	assert.Nil(t, s.GetByTracking("TRK-FFFFFFFF"))
}

func TestFindByReference(t *testing.T) {
	s := NewOrderService(newMemStore())

	// Harf duyarsız parça eşleşmesi
	order := s.FindByReference("ord-2024-001")
	require.NotNil(t, order)
	assert.Equal(t, "ORD-2024-001", order.ID)

	byTracking := s.GetByID("ORD-2024-002")
	require.NotNil(t, byTracking)
	partial := strings.ToLower(byTracking.TrackingNumber[4:10])
	found := s.FindByReference(partial)
	require.NotNil(t, found)
	assert.Equal(t, byTracking.ID, found.ID)

	assert.Nil(t, s.FindByReference(""))
	assert.Nil(t, s.FindByReference("no-such-order"))
}

func TestSearchOrders(t *testing.T) {
	s := newEmptyOrderService(t)

	_, err := s.CreateOrder(1, []models.OrderItem{orderItem(1, 10.00, 1)}, testAddress, testAddress, testPayment)
	require.NoError(t, err)
	other, err := s.CreateOrder(2, []models.OrderItem{orderItem(2, 15.00, 1)}, testAddress, testAddress, testPayment)
	require.NoError(t, err)

	// Öğe adıyla arama kullanıcıya göre daraltılır
	results := s.Search("item", 1)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].UserID)

	// userID 0 tüm kullanıcılarda arar
	assert.Len(t, s.Search("item", 0), 2)

	// Takip numarasıyla arama
	results = s.Search(strings.ToLower(other.TrackingNumber), 2)
	require.Len(t, results, 1)
	assert.Equal(t, other.ID, results[0].ID)

	assert.Empty(t, s.Search("nothing matches this", 1))
}

func TestAnalytics(t *testing.T) {
	s := newEmptyOrderService(t)

	// Siparişi olmayan kullanıcı için sıfır değerler
	empty := s.Analytics(7)
	assert.Zero(t, empty.TotalOrders)
	assert.Zero(t, empty.TotalSpent)
	assert.Zero(t, empty.AverageOrderValue)
	assert.Len(t, empty.OrdersByStatus, 6)

	first, err := s.CreateOrder(1, []models.OrderItem{orderItem(1, 10.00, 2)}, testAddress, testAddress, testPayment)
	require.NoError(t, err)
	second, err := s.CreateOrder(1, []models.OrderItem{orderItem(2, 25.00, 2)}, testAddress, testAddress, testPayment)
	require.NoError(t, err)
	require.NoError(t, s.AppendStatus(second.ID, models.StatusEntry{Status: models.OrderStatusShipped}))

	analytics := s.Analytics(1)
	assert.Equal(t, 2, analytics.TotalOrders)
	assert.Equal(t, round2(first.Total+second.Total), analytics.TotalSpent)
	assert.Equal(t, round2(analytics.TotalSpent/2), analytics.AverageOrderValue)
	assert.Equal(t, 1, analytics.OrdersByStatus[models.OrderStatusPending])
	assert.Equal(t, 1, analytics.OrdersByStatus[models.OrderStatusShipped])
	assert.Zero(t, analytics.OrdersByStatus[models.OrderStatusCancelled])
}

func TestOrdersPersistAcrossServices(t *testing.T) {
	store := newMemStore()
	require.NoError(t, storage.SetJSON(store, "orders", []models.Order{}))

	first := NewOrderService(store)
	order, err := first.CreateOrder(1, []models.OrderItem{orderItem(1, 10.00, 1)}, testAddress, testAddress, testPayment)
	require.NoError(t, err)

	second := NewOrderService(store)
	restored := second.GetByID(order.ID)
	require.NotNil(t, restored)
	assert.Equal(t, order.Total, restored.Total)
}
