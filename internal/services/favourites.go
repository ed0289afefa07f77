package services

import (
	"log"
	"sync"

	"glow/internal/models"
	"glow/internal/storage"
)

// maxRecentlyViewed, son görüntülenen listesinin üst sınırıdır.
const maxRecentlyViewed = 10

// favouritesState, bir oturumun favori ve son görüntülenen durumunu tutar.
type favouritesState struct {
	Items          []models.Product `json:"items"`
	IsOpen         bool             `json:"is_open"`
	RecentlyViewed []models.Product `json:"recently_viewed"`
}

// FavouritesService, favoriler ve son görüntülenen ürünler listesini
// yönetir. Favoriler ekleme sırasını korur ve aynı ürünü iki kez tutmaz;
// son görüntülenenler en yeniden eskiye sıralıdır ve 10 kayıtla sınırlıdır.
type FavouritesService struct {
	mu     sync.RWMutex
	store  storage.Store
	states map[string]*favouritesState
}

// NewFavouritesService, yeni bir FavouritesService örneği oluşturur.
func NewFavouritesService(store storage.Store) *FavouritesService {
	return &FavouritesService{
		store:  store,
		states: make(map[string]*favouritesState),
	}
}

func favouritesKey(sessionID string) string {
	return "favourites:" + sessionID
}

func (fs *FavouritesService) getOrCreate(sessionID string) *favouritesState {
	if state, ok := fs.states[sessionID]; ok {
		return state
	}

	state := &favouritesState{
		Items:          []models.Product{},
		RecentlyViewed: []models.Product{},
	}
	if err := storage.GetJSON(fs.store, favouritesKey(sessionID), state); err == nil {
		log.Printf("FavouritesService.getOrCreate - Restored %d favourites for session %s", len(state.Items), sessionID)
	}
	fs.states[sessionID] = state
	return state
}

// Favourites, oturumun favori listesinin kopyasını ekleme sırasıyla döndürür.
func (fs *FavouritesService) Favourites(sessionID string) []models.Product {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	state := fs.getOrCreate(sessionID)
	items := make([]models.Product, len(state.Items))
	copy(items, state.Items)
	return items
}

// Add, ürünü favorilere ekler. Zaten favorideyse işlem yapmaz.
func (fs *FavouritesService) Add(sessionID string, product models.Product) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	state := fs.getOrCreate(sessionID)
	for _, item := range state.Items {
		if item.ID == product.ID {
			return
		}
	}
	state.Items = append(state.Items, product)
	fs.persist(sessionID, state)
}

// Remove, ürünü favorilerden çıkarır.
func (fs *FavouritesService) Remove(sessionID string, productID int) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	state := fs.getOrCreate(sessionID)
	state.Items = removeProduct(state.Items, productID)
	fs.persist(sessionID, state)
}

// Toggle, ürün favorideyse çıkarır, değilse ekler; yeni üyelik durumunu
// döndürür. Karar ve değişiklik aynı kilit altında yapılır.
func (fs *FavouritesService) Toggle(sessionID string, product models.Product) bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	state := fs.getOrCreate(sessionID)
	for _, item := range state.Items {
		if item.ID == product.ID {
			state.Items = removeProduct(state.Items, product.ID)
			fs.persist(sessionID, state)
			return false
		}
	}
	state.Items = append(state.Items, product)
	fs.persist(sessionID, state)
	return true
}

// ClearFavourites, favori listesini boşaltır.
func (fs *FavouritesService) ClearFavourites(sessionID string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	state := fs.getOrCreate(sessionID)
	state.Items = []models.Product{}
	fs.persist(sessionID, state)
}

// Open, favori panelini açık olarak işaretler.
func (fs *FavouritesService) Open(sessionID string) {
	fs.setOpen(sessionID, true)
}

// Close, favori panelini kapalı olarak işaretler.
func (fs *FavouritesService) Close(sessionID string) {
	fs.setOpen(sessionID, false)
}

func (fs *FavouritesService) setOpen(sessionID string, open bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	state := fs.getOrCreate(sessionID)
	state.IsOpen = open
	fs.persist(sessionID, state)
}

// IsOpen, favori panelinin açık olup olmadığını döndürür.
func (fs *FavouritesService) IsOpen(sessionID string) bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.getOrCreate(sessionID).IsOpen
}

// RecordView, ürünü son görüntülenenlerin başına taşır. Listedeki eski
// kaydı kaldırılır, liste 10 kayda kırpılır.
func (fs *FavouritesService) RecordView(sessionID string, product models.Product) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	state := fs.getOrCreate(sessionID)
	state.RecentlyViewed = removeProduct(state.RecentlyViewed, product.ID)
	state.RecentlyViewed = append([]models.Product{product}, state.RecentlyViewed...)
	if len(state.RecentlyViewed) > maxRecentlyViewed {
		state.RecentlyViewed = state.RecentlyViewed[:maxRecentlyViewed]
	}
	fs.persist(sessionID, state)
}

// RecentlyViewed, son görüntülenen ürünlerin kopyasını en yeniden eskiye
// döndürür.
func (fs *FavouritesService) RecentlyViewed(sessionID string) []models.Product {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	state := fs.getOrCreate(sessionID)
	items := make([]models.Product, len(state.RecentlyViewed))
	copy(items, state.RecentlyViewed)
	return items
}

func (fs *FavouritesService) persist(sessionID string, state *favouritesState) {
	if err := storage.SetJSON(fs.store, favouritesKey(sessionID), state); err != nil {
		log.Printf("FavouritesService.persist - Error saving state for session %s: %v", sessionID, err)
	}
}

func removeProduct(items []models.Product, productID int) []models.Product {
	result := items[:0]
	for _, item := range items {
		if item.ID != productID {
			result = append(result, item)
		}
	}
	return result
}
