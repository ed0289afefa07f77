package catalog

import (
	"glow/internal/models"
)

// Catalog, ürün kataloğunu tutar. Veri uygulama açılışında yüklenir ve
// sonrasında değişmez; okuyanlara her zaman kopya döndürülür.
type Catalog struct {
	products   []models.Product
	categories []models.Category
}

// New, varsayılan veri setiyle yeni bir Catalog örneği oluşturur.
func New() *Catalog {
	return &Catalog{
		products:   defaultProducts,
		categories: defaultCategories,
	}
}

// Products, tüm ürünlerin kopyasını katalog sırasıyla döndürür.
func (c *Catalog) Products() []models.Product {
	products := make([]models.Product, len(c.products))
	copy(products, c.products)
	return products
}

// ProductByID, belirli bir ID'ye sahip ürünü döndürür. Ürün yoksa nil döner.
func (c *Catalog) ProductByID(id int) *models.Product {
	for _, p := range c.products {
		if p.ID == id {
			product := p
			return &product
		}
	}
	return nil
}

// Categories, tüm kategorilerin kopyasını döndürür. "all" kategorisi
// filtrelemeyi atlayan özel kayıttır.
func (c *Catalog) Categories() []models.Category {
	categories := make([]models.Category, len(c.categories))
	copy(categories, c.categories)
	return categories
}
