package catalog

import (
	"sort"
	"strconv"
	"strings"

	"glow/internal/models"
)

// DefaultPageSize, sayfa başına ürün sayısıdır.
const DefaultPageSize = 12

// Sıralama anahtarları.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// FilterOptions, katalog filtreleme yapılandırmasını temsil eder. Boş
// alanlar ilgili filtreyi devre dışı bırakır.
type FilterOptions struct {
	Category   string  // "all" veya boş: filtre yok
	Query      string  // isim, marka ve kategoride harf duyarsız arama
	PriceRange string  // "min-max" veya "min+", sınırlar dahil
	MinRating  float64 // rating >= MinRating
	SortBy     string  // price-low, price-high, rating, newest; boş: katalog sırası
}

// Filter, ürün listesini verilen yapılandırmaya göre daraltır ve sıralar.
// Girdi değiştirilmez; her zaman yeni bir dilim döner. Bozuk fiyat aralığı
// hata üretmez, filtre uygulanmamış sayılır.
func Filter(products []models.Product, opts FilterOptions) []models.Product {
	filtered := make([]models.Product, 0, len(products))

	min, max, hasPriceRange := parsePriceRange(opts.PriceRange)
	query := strings.ToLower(strings.TrimSpace(opts.Query))

	for _, p := range products {
		if opts.Category != "" && opts.Category != "all" && p.Category != opts.Category {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if hasPriceRange && (p.Price < min || p.Price > max) {
			continue
		}
		if opts.MinRating > 0 && p.Rating < opts.MinRating {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, opts.SortBy)
	return filtered
}

// Paginate, filtrelenmiş listeden istenen sayfayı keser. Sayfa numarası
// 1'den başlar; aralık dışı sayfa istekleri hata yerine boş sayfa döndürür.
func Paginate(products []models.Product, page, perPage int) []models.Product {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * perPage
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + perPage
	if end > len(products) {
		end = len(products)
	}

	result := make([]models.Product, end-start)
	copy(result, products[start:end])
	return result
}

// TotalPages, toplam sayfa sayısını döndürür.
func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

func matchesQuery(p models.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Brand), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}

// parsePriceRange, "min-max" veya "min+" biçimindeki aralığı çözer.
// Çözümlenemeyen girdi için ok=false döner ve filtre uygulanmaz.
func parsePriceRange(s string) (min, max float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, false
	}

	if strings.HasSuffix(s, "+") {
		min, err := strconv.ParseFloat(strings.TrimSuffix(s, "+"), 64)
		if err != nil {
			return 0, 0, false
		}
		return min, maxPrice, true
	}

	parts := strings.SplitN(s, "-", 2)
	min, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, false
	}
	if len(parts) == 1 || parts[1] == "" {
		return min, maxPrice, true
	}
	max, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, false
	}
	return min, max, true
}

// maxPrice, üst sınırsız aralıklar için kullanılan tavandır.
const maxPrice = 1e12

func sortProducts(products []models.Product, sortBy string) {
	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	}
}
