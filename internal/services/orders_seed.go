package services

import (
	"time"

	"glow/internal/models"
)

// seedOrders, depo boşken kullanılan demo siparişlerini üretir. Takip
// sayfasının ilk açılışta gösterecek verisi olsun diye 1 numaralı demo
// kullanıcısına bağlıdırlar.
func seedOrders() []models.Order {
	address := models.Address{
		FirstName: "Emma",
		LastName:  "Wilson",
		Address:   "124 Rosewood Avenue",
		City:      "Los Angeles",
		State:     "CA",
		ZipCode:   "90028",
		Country:   "USA",
		Phone:     "+1 (555) 012-7788",
	}
	billing := address
	billing.Phone = ""

	delivered := models.Order{
		ID:     "ORD-2024-001",
		UserID: 1,
		Items: []models.OrderItem{
			{
				ProductID:     1,
				Name:          "Velvet Matte Lipstick - Ruby Red",
				Brand:         "Glamour Pro",
				Price:         24.99,
				OriginalPrice: 29.99,
				Image:         "/static/img/products/velvet-matte-lipstick.jpg",
				Quantity:      2,
				TotalPrice:    49.98,
			},
			{
				ProductID:  4,
				Name:       "Volume Boost Mascara",
				Brand:      "Lash Perfect",
				Price:      18.50,
				Image:      "/static/img/placeholder.svg",
				Quantity:   1,
				TotalPrice: 18.50,
			},
		},
		Subtotal: 68.48,
		Shipping: 0,
		Tax:      5.48,
		Total:    73.96,
		StatusHistory: []models.StatusEntry{
			{Status: models.OrderStatusPending, Timestamp: date(2024, 11, 2, 9, 14), Description: "Order placed successfully"},
			{Status: models.OrderStatusConfirmed, Timestamp: date(2024, 11, 2, 10, 5), Description: "Payment confirmed"},
			{Status: models.OrderStatusProcessing, Timestamp: date(2024, 11, 3, 8, 30), Description: "Order is being prepared", Location: "Fulfillment Center, Ontario CA"},
			{Status: models.OrderStatusShipped, Timestamp: date(2024, 11, 4, 16, 45), Description: "Package handed to carrier", Location: "Ontario, CA"},
			{Status: models.OrderStatusDelivered, Timestamp: date(2024, 11, 7, 13, 20), Description: "Delivered to front door", Location: "Los Angeles, CA"},
		},
		CurrentStatus:     models.OrderStatusDelivered,
		OrderDate:         date(2024, 11, 2, 9, 14),
		EstimatedDelivery: date(2024, 11, 7, 0, 0),
		TrackingNumber:    "TRK-9F4A21C8",
		ShippingAddress:   address,
		BillingAddress:    billing,
		PaymentMethod:     models.PaymentMethod{Type: "credit_card", Last4: "4242", Brand: "Visa"},
	}

	shipped := models.Order{
		ID:     "ORD-2024-002",
		UserID: 1,
		Items: []models.OrderItem{
			{
				ProductID:     3,
				Name:          "Sunset Eyeshadow Palette",
				Brand:         "Color Dreams",
				Price:         35.99,
				OriginalPrice: 45.99,
				Image:         "/static/img/products/sunset-eyeshadow-palette.jpg",
				Quantity:      1,
				TotalPrice:    35.99,
			},
		},
		Subtotal: 35.99,
		Shipping: 5.99,
		Tax:      2.88,
		Total:    44.86,
		StatusHistory: []models.StatusEntry{
			{Status: models.OrderStatusPending, Timestamp: date(2024, 12, 18, 19, 2), Description: "Order placed successfully"},
			{Status: models.OrderStatusConfirmed, Timestamp: date(2024, 12, 18, 19, 40), Description: "Payment confirmed"},
			{Status: models.OrderStatusProcessing, Timestamp: date(2024, 12, 19, 9, 10), Description: "Order is being prepared", Location: "Fulfillment Center, Ontario CA"},
			{Status: models.OrderStatusShipped, Timestamp: date(2024, 12, 20, 15, 25), Description: "Package handed to carrier", Location: "Ontario, CA"},
		},
		CurrentStatus:     models.OrderStatusShipped,
		OrderDate:         date(2024, 12, 18, 19, 2),
		EstimatedDelivery: date(2024, 12, 24, 0, 0),
		TrackingNumber:    "TRK-31B7E0D5",
		ShippingAddress:   address,
		BillingAddress:    billing,
		PaymentMethod:     models.PaymentMethod{Type: "paypal"},
	}

	pending := models.Order{
		ID:     "ORD-2025-001",
		UserID: 1,
		Items: []models.OrderItem{
			{
				ProductID:  5,
				Name:       "Natural Glow Blush",
				Brand:      "Rosy Cheeks",
				Price:      22.00,
				Image:      "/static/img/products/natural-glow-blush.jpg",
				Quantity:   1,
				TotalPrice: 22.00,
			},
		},
		Subtotal: 22.00,
		Shipping: 5.99,
		Tax:      1.76,
		Total:    29.75,
		StatusHistory: []models.StatusEntry{
			{Status: models.OrderStatusPending, Timestamp: date(2025, 1, 6, 11, 48), Description: "Order placed successfully"},
		},
		CurrentStatus:     models.OrderStatusPending,
		OrderDate:         date(2025, 1, 6, 11, 48),
		EstimatedDelivery: date(2025, 1, 11, 0, 0),
		TrackingNumber:    "TRK-C2A90F17",
		ShippingAddress:   address,
		BillingAddress:    billing,
		PaymentMethod:     models.PaymentMethod{Type: "apple_pay"},
	}

	// En yeni sipariş başta tutulur.
	return []models.Order{pending, shipped, delivered}
}

func date(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}
