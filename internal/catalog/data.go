package catalog

import "glow/internal/models"

// Sabit kategoriler. Count değerleri etikettir, katalogdan yeniden
// hesaplanmaz.
var defaultCategories = []models.Category{
	{ID: "all", Name: "All Products", Count: 24, Icon: "✨"},
	{ID: "lipstick", Name: "Lipstick", Count: 8, Icon: "💋"},
	{ID: "foundation", Name: "Foundation", Count: 6, Icon: "🤍"},
	{ID: "eyeshadow", Name: "Eyeshadow", Count: 5, Icon: "👁️"},
	{ID: "mascara", Name: "Mascara", Count: 3, Icon: "👀"},
	{ID: "blush", Name: "Blush", Count: 2, Icon: "🌸"},
}

var defaultProducts = []models.Product{
	{
		ID:            1,
		Name:          "Velvet Matte Lipstick - Ruby Red",
		Brand:         "Glamour Pro",
		Price:         24.99,
		OriginalPrice: 29.99,
		Image:         "/static/img/products/velvet-matte-lipstick.jpg",
		Category:      "lipstick",
		Rating:        4.8,
		IsNew:         true,
		IsSale:        true,
	},
	{
		ID:       2,
		Name:     "Flawless Coverage Foundation",
		Brand:    "Beauty Base",
		Price:    42.00,
		Image:    "/static/img/products/flawless-coverage-foundation.jpg",
		Category: "foundation",
		Rating:   4.6,
	},
	{
		ID:            3,
		Name:          "Sunset Eyeshadow Palette",
		Brand:         "Color Dreams",
		Price:         35.99,
		OriginalPrice: 45.99,
		Image:         "/static/img/products/sunset-eyeshadow-palette.jpg",
		Category:      "eyeshadow",
		Rating:        4.9,
		IsSale:        true,
	},
	{
		ID:       4,
		Name:     "Volume Boost Mascara",
		Brand:    "Lash Perfect",
		Price:    18.50,
		Image:    "/static/img/placeholder.svg",
		Category: "mascara",
		Rating:   4.7,
	},
	{
		ID:       5,
		Name:     "Natural Glow Blush",
		Brand:    "Rosy Cheeks",
		Price:    22.00,
		Image:    "/static/img/products/natural-glow-blush.jpg",
		Category: "blush",
		Rating:   4.5,
		IsNew:    true,
	},
	{
		ID:       6,
		Name:     "Classic Red Lipstick",
		Brand:    "Timeless Beauty",
		Price:    28.99,
		Image:    "/static/img/placeholder.svg",
		Category: "lipstick",
		Rating:   4.8,
	},
	{
		ID:            7,
		Name:          "HD Foundation Stick",
		Brand:         "Pro Makeup",
		Price:         38.00,
		OriginalPrice: 42.00,
		Image:         "/static/img/products/hd-foundation-stick.jpg",
		Category:      "foundation",
		Rating:        4.4,
		IsSale:        true,
	},
	{
		ID:       8,
		Name:     "Smoky Eye Palette",
		Brand:    "Night Glam",
		Price:    32.99,
		Image:    "/static/img/products/smoky-eye-palette.jpg",
		Category: "eyeshadow",
		Rating:   4.6,
		IsNew:    true,
	},
}
