package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"glow/internal/catalog"
	"glow/internal/config"
	"glow/internal/handlers"
	"glow/internal/services"
	"glow/internal/storage"
)

// newStore, yapılandırmaya göre depolama sürücüsünü seçer. Redis'e
// bağlanılamazsa dosya deposuna düşer.
func newStore(cfg *config.Config) (storage.Store, error) {
	if cfg.StorageDriver == "redis" {
		store, err := storage.NewRedisStore(cfg.RedisAddr)
		if err == nil {
			log.Printf("Storage: redis (%s)", cfg.RedisAddr)
			return store, nil
		}
		log.Printf("Redis'e bağlanılamadı, dosya deposuna geçiliyor: %v", err)
	}

	store, err := storage.NewFileStore(cfg.DataFile)
	if err != nil {
		return nil, err
	}
	log.Printf("Storage: file (%s)", cfg.DataFile)
	return store, nil
}

func main() {
	cfg, err := config.Load("app.env")
	if err != nil {
		log.Fatalf("Yapılandırma okunamadı: %v", err)
	}

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Depolama başlatılamadı: %v", err)
	}

	cat := catalog.New()
	cartService := services.NewCartService(store)
	favouritesService := services.NewFavouritesService(store)
	orderService := services.NewOrderService(store)
	userService := services.NewUserService(store)
	emailService := services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)

	h := handlers.NewHandler(cat, cartService, favouritesService, orderService, userService, emailService)

	// Engine'i manuel olarak oluştur (middleware'leri kontrol etmek için)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	// Proxy güvenlik ayarları
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	// Static dosyaları serve et
	r.Static("/static", "./static")

	// Katalog rotaları
	r.GET("/", h.ListProducts)
	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/categories", h.GetCategories)

	// Sepet rotaları
	r.GET("/cart", h.CartPage)
	r.POST("/cart/add", h.AddToCart)
	r.POST("/cart/update", h.UpdateCartItem)
	r.POST("/cart/remove", h.RemoveFromCart)
	r.POST("/cart/clear", h.ClearCart)
	r.GET("/cart/count", h.GetCartCount)
	r.POST("/cart/open", h.OpenCart)
	r.POST("/cart/close", h.CloseCart)

	// Favoriler ve son görüntülenenler
	r.GET("/favourites", h.GetFavourites)
	r.POST("/favourites/toggle", h.ToggleFavourite)
	r.POST("/favourites/add", h.AddFavourite)
	r.POST("/favourites/remove", h.RemoveFavourite)
	r.POST("/favourites/clear", h.ClearFavourites)
	r.POST("/favourites/open", h.OpenFavourites)
	r.POST("/favourites/close", h.CloseFavourites)
	r.GET("/recently-viewed", h.GetRecentlyViewed)

	// Kullanıcı rotaları
	r.POST("/login", h.HandleLogin)
	r.POST("/register", h.HandleSignup)
	r.POST("/logout", h.UserLogout)
	r.GET("/session", h.GetSession)

	// Ödeme ve herkese açık sipariş takibi
	r.POST("/checkout", h.HandleCheckout)
	r.GET("/track", h.TrackOrder)
	r.GET("/orders/track", h.TrackOrder)

	// Oturum gerektiren sipariş rotaları
	log.Printf("Registering order routes...")
	orders := r.Group("/orders", h.AuthRequired())
	orders.GET("", h.OrdersPage)
	orders.GET("/search", h.SearchOrders)
	orders.GET("/analytics", h.GetOrderAnalytics)
	orders.GET("/:id", h.GetOrderDetail)
	orders.POST("/:id/cancel", h.CancelOrder)
	orders.POST("/:id/status", h.UpdateOrderStatus)
	log.Printf("Order routes registered successfully")

	r.NoRoute(h.NotFound)

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server başlatılamadı: %v", err)
	}
}
