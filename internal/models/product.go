package models

// Product, katalogdaki bir ürünü temsil eder. Katalog yüklendikten sonra
// ürünler değişmez; sepet ve siparişler kendi kopyalarını tutar.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"` // sadece indirimli ürünlerde dolu, Price'tan küçük olamaz
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	Rating        float64 `json:"rating"` // 0.0 - 5.0
	IsNew         bool    `json:"isNew,omitempty"`
	IsSale        bool    `json:"isSale,omitempty"`
}

// Category, ürün kategorisini temsil eder. Count alanı katalogdaki gerçek
// ürün sayısından sapabilir; etiket olarak kullanılır, yeniden hesaplanmaz.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	Icon  string `json:"icon"`
}
