package services

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"glow/internal/models"
	"glow/internal/storage"
)

// Ödeme dökümü sabitleri.
const (
	shippingFee           = 5.99
	freeShippingThreshold = 50.0
	taxRate               = 0.08
	deliveryEstimateDays  = 5
)

var (
	// ErrOrderNotFound, sipariş bulunamadığında döner.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderNotCancellable, yalnızca pending durumundaki siparişler iptal
	// edilebildiği için diğer durumlarda döner.
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")
)

// OrderService, sipariş kayıtlarını yönetir. Siparişler bellekte en yeniden
// eskiye sıralı tutulur ve her değişiklikte "orders" anahtarı altına yazılır.
// Durum geçmişi yalnızca sona ekleme kabul eder.
type OrderService struct {
	mu     sync.RWMutex
	store  storage.Store
	orders []models.Order
}

// NewOrderService, yeni bir OrderService örneği oluşturur. Depoda sipariş
// yoksa demo siparişleriyle başlar.
func NewOrderService(store storage.Store) *OrderService {
	os := &OrderService{store: store}

	if err := storage.GetJSON(store, "orders", &os.orders); err != nil {
		os.orders = seedOrders()
		os.persist()
		log.Printf("OrderService - Seeded %d demo orders", len(os.orders))
	} else {
		log.Printf("OrderService - Loaded %d orders from storage", len(os.orders))
	}

	return os
}

// CreateOrder, sepet satırlarından yeni bir sipariş oluşturur. Ara toplam
// satırlardan hesaplanır; 50 ve üzeri ara toplamda kargo ücretsizdir,
// vergi ara toplamın %8'idir. Geçmiş tek bir pending kaydıyla başlar.
func (s *OrderService) CreateOrder(userID int, items []models.OrderItem, shippingAddr, billingAddr models.Address, payment models.PaymentMethod) (*models.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := 0.0
	for _, item := range items {
		subtotal += item.TotalPrice
	}
	subtotal = round2(subtotal)

	shipping := shippingFee
	if subtotal >= freeShippingThreshold {
		shipping = 0
	}
	tax := round2(subtotal * taxRate)

	now := time.Now()
	order := models.Order{
		ID:       s.nextOrderID(now.Year()),
		UserID:   userID,
		Items:    items,
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    round2(subtotal + shipping + tax),
		StatusHistory: []models.StatusEntry{
			{
				Status:      models.OrderStatusPending,
				Timestamp:   now,
				Description: "Order placed successfully",
			},
		},
		CurrentStatus:     models.OrderStatusPending,
		OrderDate:         now,
		EstimatedDelivery: now.AddDate(0, 0, deliveryEstimateDays),
		TrackingNumber:    generateTrackingNumber(),
		ShippingAddress:   shippingAddr,
		BillingAddress:    billingAddr,
		PaymentMethod:     payment,
	}

	s.orders = append([]models.Order{order}, s.orders...)
	s.persist()

	log.Printf("OrderService.CreateOrder - Created order %s for user %d, total %.2f", order.ID, userID, order.Total)
	return copyOrder(&order), nil
}

// GetByUser, kullanıcıya ait siparişleri döndürür.
func (s *OrderService) GetByUser(userID int) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders []models.Order
	for i := range s.orders {
		if s.orders[i].UserID == userID {
			orders = append(orders, *copyOrder(&s.orders[i]))
		}
	}
	return orders
}

// GetByID, siparişi ID ile arar. Bulunamazsa nil döner.
func (s *OrderService) GetByID(orderID string) *models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			return copyOrder(&s.orders[i])
		}
	}
	return nil
}

// GetByTracking, siparişi takip numarasıyla arar. Bulunamazsa nil döner.
func (s *OrderService) GetByTracking(trackingNumber string) *models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].TrackingNumber == trackingNumber {
			return copyOrder(&s.orders[i])
		}
	}
	return nil
}

// FindByReference, sipariş ID'si veya takip numarası üzerinde harf duyarsız
// parça eşleşmesiyle tek sipariş arar. Takip sayfasının ?tracking= sorgu
// parametresi bu davranışı kullanır.
func (s *OrderService) FindByReference(ref string) *models.Order {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if strings.Contains(strings.ToLower(s.orders[i].ID), ref) ||
			strings.Contains(strings.ToLower(s.orders[i].TrackingNumber), ref) {
			return copyOrder(&s.orders[i])
		}
	}
	return nil
}

// Search, sipariş ID'si, takip numarası ve öğe adı/markası üzerinde harf
// duyarsız arama yapar. userID 0'dan büyükse sonuçlar o kullanıcıyla
// sınırlanır.
func (s *OrderService) Search(query string, userID int) []models.Order {
	query = strings.ToLower(strings.TrimSpace(query))

	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []models.Order
	for i := range s.orders {
		order := &s.orders[i]
		if userID > 0 && order.UserID != userID {
			continue
		}
		if matchesOrder(order, query) {
			results = append(results, *copyOrder(order))
		}
	}
	return results
}

func matchesOrder(order *models.Order, query string) bool {
	if strings.Contains(strings.ToLower(order.ID), query) ||
		strings.Contains(strings.ToLower(order.TrackingNumber), query) {
		return true
	}
	for _, item := range order.Items {
		if strings.Contains(strings.ToLower(item.Name), query) ||
			strings.Contains(strings.ToLower(item.Brand), query) {
			return true
		}
	}
	return false
}

// AppendStatus, sipariş geçmişine yeni bir durum kaydı ekler ve güncel
// durumu günceller. Sipariş yoksa ErrOrderNotFound döner.
func (s *OrderService) AppendStatus(orderID string, entry models.StatusEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if entry.Timestamp.IsZero() {
			entry.Timestamp = time.Now()
		}
		s.orders[i].StatusHistory = append(s.orders[i].StatusHistory, entry)
		s.orders[i].CurrentStatus = entry.Status
		s.persist()
		log.Printf("OrderService.AppendStatus - Order %s is now %s", orderID, entry.Status)
		return nil
	}
	return ErrOrderNotFound
}

// Cancel, siparişi iptal eder. Yalnızca pending durumundaki siparişler
// iptal edilebilir; diğer durumlarda geçmiş değişmeden ErrOrderNotCancellable
// döner.
func (s *OrderService) Cancel(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if s.orders[i].CurrentStatus != models.OrderStatusPending {
			return ErrOrderNotCancellable
		}
		s.orders[i].StatusHistory = append(s.orders[i].StatusHistory, models.StatusEntry{
			Status:      models.OrderStatusCancelled,
			Timestamp:   time.Now(),
			Description: "Order cancelled by customer",
		})
		s.orders[i].CurrentStatus = models.OrderStatusCancelled
		s.persist()
		log.Printf("OrderService.Cancel - Order %s cancelled", orderID)
		return nil
	}
	return ErrOrderNotFound
}

// Analytics, kullanıcının sipariş istatistiklerini döndürür. Hiç sipariş
// yoksa ortalama sıfırdır.
func (s *OrderService) Analytics(userID int) models.OrderAnalytics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	analytics := models.OrderAnalytics{
		OrdersByStatus: map[models.OrderStatus]int{
			models.OrderStatusPending:    0,
			models.OrderStatusConfirmed:  0,
			models.OrderStatusProcessing: 0,
			models.OrderStatusShipped:    0,
			models.OrderStatusDelivered:  0,
			models.OrderStatusCancelled:  0,
		},
	}

	for i := range s.orders {
		if s.orders[i].UserID != userID {
			continue
		}
		analytics.TotalOrders++
		analytics.TotalSpent += s.orders[i].Total
		analytics.OrdersByStatus[s.orders[i].CurrentStatus]++
	}

	analytics.TotalSpent = round2(analytics.TotalSpent)
	if analytics.TotalOrders > 0 {
		analytics.AverageOrderValue = round2(analytics.TotalSpent / float64(analytics.TotalOrders))
	}
	return analytics
}

// nextOrderID, ORD-<yıl>-<sıra> biçiminde yeni bir sipariş numarası üretir.
// Sıra, aynı yıl içindeki en yüksek numaranın bir fazlasıdır. Çağıran
// kilidi tutmalıdır.
func (s *OrderService) nextOrderID(year int) string {
	maxSeq := 0
	for i := range s.orders {
		var y, seq int
		if _, err := fmt.Sscanf(s.orders[i].ID, "ORD-%d-%d", &y, &seq); err == nil && y == year && seq > maxSeq {
			maxSeq = seq
		}
	}
	return fmt.Sprintf("ORD-%d-%03d", year, maxSeq+1)
}

func generateTrackingNumber() string {
	return "TRK-" + strings.ToUpper(uuid.New().String()[:8])
}

func (s *OrderService) persist() {
	if err := storage.SetJSON(s.store, "orders", s.orders); err != nil {
		log.Printf("OrderService.persist - Error saving orders: %v", err)
	}
}

func copyOrder(order *models.Order) *models.Order {
	o := *order
	o.Items = make([]models.OrderItem, len(order.Items))
	copy(o.Items, order.Items)
	o.StatusHistory = make([]models.StatusEntry, len(order.StatusHistory))
	copy(o.StatusHistory, order.StatusHistory)
	return &o
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
