package models

import (
	"time"
)

// Cart, sepet modelini temsil eder
type Cart struct {
	SessionID  string     `json:"session_id"`
	Items      []CartItem `json:"items"`
	IsOpen     bool       `json:"is_open"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CartItem, sepet öğesini temsil eder. Aynı ürün için en fazla bir satır
// bulunur; tekrar eklemek miktarı artırır.
type CartItem struct {
	ProductID  int     `json:"product_id"`
	Name       string  `json:"name"`
	Brand      string  `json:"brand"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}
