package models

import "time"

// OrderStatus, sipariş durumunu temsil eder.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// StatusEntry, sipariş durum geçmişindeki tek bir kaydı temsil eder.
// Geçmiş yalnızca sona eklenir; kayıtlar düzenlenmez ve silinmez.
type StatusEntry struct {
	Status      OrderStatus `json:"status"`
	Timestamp   time.Time   `json:"timestamp"`
	Description string      `json:"description"`
	Location    string      `json:"location,omitempty"`
}

// OrderItem, sipariş öğesini temsil eder. Fiyat sipariş anında kopyalanır,
// katalogdaki ürüne bağlı kalmaz.
type OrderItem struct {
	ProductID     int     `json:"product_id"`
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Image         string  `json:"image"`
	Quantity      int     `json:"quantity"`
	TotalPrice    float64 `json:"total_price"`
}

// Address, teslimat ve fatura adresini temsil eder.
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
	Phone     string `json:"phone,omitempty"`
}

// PaymentMethod, ödeme yöntemi tanımlayıcısını temsil eder.
type PaymentMethod struct {
	Type  string `json:"type"` // credit_card, paypal, apple_pay
	Last4 string `json:"last4,omitempty"`
	Brand string `json:"brand,omitempty"`
}

// Order, siparişi temsil eder. Durum geçmişine ekleme dışında sipariş
// oluşturulduktan sonra değiştirilmez. Total = Subtotal + Shipping + Tax.
type Order struct {
	ID                string        `json:"id"` // ORD-<yıl>-<sıra>
	UserID            int           `json:"user_id"`
	Items             []OrderItem   `json:"items"`
	Subtotal          float64       `json:"subtotal"`
	Shipping          float64       `json:"shipping"`
	Tax               float64       `json:"tax"`
	Total             float64       `json:"total"`
	StatusHistory     []StatusEntry `json:"status"`
	CurrentStatus     OrderStatus   `json:"current_status"` // her zaman geçmişteki son kaydın durumu
	OrderDate         time.Time     `json:"order_date"`
	EstimatedDelivery time.Time     `json:"estimated_delivery,omitempty"`
	TrackingNumber    string        `json:"tracking_number,omitempty"`
	ShippingAddress   Address       `json:"shipping_address"`
	BillingAddress    Address       `json:"billing_address"`
	PaymentMethod     PaymentMethod `json:"payment_method"`
}

// OrderAnalytics, bir kullanıcının sipariş istatistiklerini temsil eder.
type OrderAnalytics struct {
	TotalOrders       int                 `json:"total_orders"`
	TotalSpent        float64             `json:"total_spent"`
	AverageOrderValue float64             `json:"average_order_value"`
	OrdersByStatus    map[OrderStatus]int `json:"orders_by_status"`
}

// CheckoutForm, ödeme formu verilerini temsil eder.
type CheckoutForm struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Address        string `json:"address" binding:"required"`
	City           string `json:"city" binding:"required"`
	State          string `json:"state"`
	ZipCode        string `json:"zip_code" binding:"required"`
	Country        string `json:"country" binding:"required"`
	Phone          string `json:"phone"`
	PaymentType    string `json:"payment_type" binding:"required"`
	CardLast4      string `json:"card_last4"`
	CardBrand      string `json:"card_brand"`
	BillingSame    bool   `json:"billing_same"`
	BillingAddress string `json:"billing_address"`
	BillingCity    string `json:"billing_city"`
	BillingState   string `json:"billing_state"`
	BillingZipCode string `json:"billing_zip_code"`
	BillingCountry string `json:"billing_country"`
}
