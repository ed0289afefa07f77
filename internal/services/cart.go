package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"glow/internal/models"
	"glow/internal/storage"
)

// CartService, sepet işlemlerini yönetir. Her oturumun kendi sepeti vardır;
// sepetler bellekte tutulur ve her değişiklikte depoya yazılır.
type CartService struct {
	mu    sync.RWMutex
	store storage.Store
	carts map[string]*models.Cart
}

// NewCartService, yeni bir CartService örneği oluşturur.
func NewCartService(store storage.Store) *CartService {
	return &CartService{
		store: store,
		carts: make(map[string]*models.Cart),
	}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// getOrCreate, oturumun sepetini bellekten veya depodan getirir; yoksa yeni
// oluşturur. Çağıran kilidi tutmalıdır.
func (cs *CartService) getOrCreate(sessionID string) *models.Cart {
	if cart, ok := cs.carts[sessionID]; ok {
		return cart
	}

	cart := &models.Cart{
		SessionID: sessionID,
		Items:     []models.CartItem{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := storage.GetJSON(cs.store, cartKey(sessionID), cart); err == nil {
		log.Printf("CartService.getOrCreate - Restored cart for session %s with %d items", sessionID, len(cart.Items))
	}
	cs.carts[sessionID] = cart
	return cart
}

// GetCart, oturumun sepetinin kopyasını döndürür.
func (cs *CartService) GetCart(sessionID string) *models.Cart {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return copyCart(cs.getOrCreate(sessionID))
}

// AddItem, sepete ürün ekler. Ürün zaten sepetteyse yeni satır açmak yerine
// miktarı artırır.
func (cs *CartService) AddItem(sessionID string, product models.Product, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("invalid quantity: %d", quantity)
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	cart := cs.getOrCreate(sessionID)
	for i := range cart.Items {
		if cart.Items[i].ProductID == product.ID {
			cart.Items[i].Quantity += quantity
			cart.Items[i].TotalPrice = float64(cart.Items[i].Quantity) * cart.Items[i].Price
			cs.updateCartTotals(cart)
			log.Printf("CartService.AddItem - Product %d merged, quantity now %d", product.ID, cart.Items[i].Quantity)
			return nil
		}
	}

	cart.Items = append(cart.Items, models.CartItem{
		ProductID:  product.ID,
		Name:       product.Name,
		Brand:      product.Brand,
		Price:      product.Price,
		Image:      product.Image,
		Quantity:   quantity,
		TotalPrice: product.Price * float64(quantity),
	})
	cs.updateCartTotals(cart)
	log.Printf("CartService.AddItem - Added product %d, cart now has %d lines", product.ID, len(cart.Items))
	return nil
}

// SetQuantity, sepet satırının miktarını günceller. Miktar 1'in altına
// düşerse satır tamamen kaldırılır. Sepette olmayan ürün için işlem yapmaz.
func (cs *CartService) SetQuantity(sessionID string, productID, quantity int) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cart := cs.getOrCreate(sessionID)
	for i := range cart.Items {
		if cart.Items[i].ProductID != productID {
			continue
		}
		if quantity < 1 {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			log.Printf("CartService.SetQuantity - Removed product %d from cart", productID)
		} else {
			cart.Items[i].Quantity = quantity
			cart.Items[i].TotalPrice = float64(quantity) * cart.Items[i].Price
		}
		cs.updateCartTotals(cart)
		return
	}
}

// RemoveItem, satırı miktarından bağımsız olarak sepetten kaldırır.
func (cs *CartService) RemoveItem(sessionID string, productID int) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cart := cs.getOrCreate(sessionID)
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			cs.updateCartTotals(cart)
			return
		}
	}
}

// Clear, sepeti boşaltır; açık/kapalı durumunu korur.
func (cs *CartService) Clear(sessionID string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cart := cs.getOrCreate(sessionID)
	cart.Items = []models.CartItem{}
	cs.updateCartTotals(cart)
}

// Open, sepet panelini açık olarak işaretler.
func (cs *CartService) Open(sessionID string) {
	cs.setOpen(sessionID, true)
}

// Close, sepet panelini kapalı olarak işaretler.
func (cs *CartService) Close(sessionID string) {
	cs.setOpen(sessionID, false)
}

func (cs *CartService) setOpen(sessionID string, open bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cart := cs.getOrCreate(sessionID)
	cart.IsOpen = open
	cs.persist(cart)
}

// ItemCount, sepetteki toplam ürün adedini döndürür.
func (cs *CartService) ItemCount(sessionID string) int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.getOrCreate(sessionID).TotalItems
}

// updateCartTotals, sepet toplamlarını satırlardan yeniden hesaplar ve
// sepeti depoya yazar. Çağıran kilidi tutmalıdır.
func (cs *CartService) updateCartTotals(cart *models.Cart) {
	totalItems := 0
	totalPrice := 0.0
	for _, item := range cart.Items {
		totalItems += item.Quantity
		totalPrice += item.TotalPrice
	}

	cart.TotalItems = totalItems
	cart.TotalPrice = totalPrice
	cart.UpdatedAt = time.Now()
	cs.persist(cart)
}

func (cs *CartService) persist(cart *models.Cart) {
	if err := storage.SetJSON(cs.store, cartKey(cart.SessionID), cart); err != nil {
		log.Printf("CartService.persist - Error saving cart for session %s: %v", cart.SessionID, err)
	}
}

func copyCart(cart *models.Cart) *models.Cart {
	c := *cart
	c.Items = make([]models.CartItem, len(cart.Items))
	copy(c.Items, cart.Items)
	return &c
}
