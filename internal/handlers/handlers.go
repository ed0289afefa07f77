package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"glow/internal/catalog"
	"glow/internal/models"
	"glow/internal/services"
)

const (
	sessionCookieName = "user_session"
	sessionMaxAge     = 3600 * 24 * 30
)

// Handler, HTTP isteklerini yönetir. Görünüm katmanı yalnızca buradaki
// uçlar üzerinden durum makinelerinin anlık görüntülerini okur ve işlemleri
// tetikler.
type Handler struct {
	catalog    *catalog.Catalog
	cart       *services.CartService
	favourites *services.FavouritesService
	orders     *services.OrderService
	users      *services.UserService
	email      *services.EmailService
}

// NewHandler, yeni bir Handler örneği oluşturur.
func NewHandler(cat *catalog.Catalog, cart *services.CartService, favourites *services.FavouritesService, orders *services.OrderService, users *services.UserService, email *services.EmailService) *Handler {
	return &Handler{
		catalog:    cat,
		cart:       cart,
		favourites: favourites,
		orders:     orders,
		users:      users,
		email:      email,
	}
}

// sessionID, oturum çerezini okur; yoksa yeni bir oturum başlatır.
func (h *Handler) sessionID(c *gin.Context) string {
	sessionID, _ := c.Cookie(sessionCookieName)
	if sessionID == "" {
		sessionID = uuid.New().String()
		c.SetCookie(sessionCookieName, sessionID, sessionMaxAge, "/", "", false, true)
		log.Printf("Handler.sessionID - Created new session ID: %s", sessionID)
	}
	return sessionID
}

// AuthRequired, oturum açılmış bir kullanıcı gerektiren uçları korur.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := h.users.CurrentUser()
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Login required"})
			c.Abort()
			return
		}
		c.Set("user", user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.SessionUser {
	if v, ok := c.Get("user"); ok {
		if user, ok := v.(*models.SessionUser); ok {
			return user
		}
	}
	return nil
}

// NotFound, eşleşmeyen rotalar için JSON 404 döndürür.
func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Page not found"})
}

// --- Katalog ---

// ListProducts, katalog kökünü filtre/sıralama/sayfalama sorgu
// parametreleriyle döndürür.
func (h *Handler) ListProducts(c *gin.Context) {
	opts := catalog.FilterOptions{
		Category:   c.Query("category"),
		Query:      c.Query("q"),
		PriceRange: c.Query("price"),
		SortBy:     c.Query("sort"),
	}
	if rating := c.Query("rating"); rating != "" {
		if v, err := strconv.ParseFloat(rating, 64); err == nil {
			opts.MinRating = v
		}
	}

	page := 1
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	filtered := catalog.Filter(h.catalog.Products(), opts)
	products := catalog.Paginate(filtered, page, catalog.DefaultPageSize)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"products":    products,
		"total":       len(filtered),
		"page":        page,
		"total_pages": catalog.TotalPages(len(filtered), catalog.DefaultPageSize),
		"categories":  h.catalog.Categories(),
	})
}

// GetProduct, ürün detayını döndürür ve ürünü son görüntülenenlere kaydeder.
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product ID"})
		return
	}

	product := h.catalog.ProductByID(id)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		return
	}

	h.favourites.RecordView(h.sessionID(c), *product)
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// GetCategories, kategori listesini döndürür.
func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": h.catalog.Categories()})
}

// --- Sepet ---

// CartPage, sepetin anlık görüntüsünü döndürür.
func (h *Handler) CartPage(c *gin.Context) {
	cart := h.cart.GetCart(h.sessionID(c))
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
}

// AddToCart, sepete ürün ekler. Ekleme sonrası sepet paneli açılır; bu
// makinenin değil çağıranın politikasıdır.
func (h *Handler) AddToCart(c *gin.Context) {
	sessionID := h.sessionID(c)

	var req struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("AddToCart - JSON bind error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product := h.catalog.ProductByID(req.ProductID)
	if product == nil {
		log.Printf("AddToCart - Product not found: %d", req.ProductID)
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		return
	}

	if err := h.cart.AddItem(sessionID, *product, req.Quantity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	h.cart.Open(sessionID)

	c.JSON(http.StatusOK, gin.H{"success": true, "cart": h.cart.GetCart(sessionID)})
}

// UpdateCartItem, sepet satırının miktarını günceller; 1'in altı satırı
// kaldırır.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sessionID := h.sessionID(c)

	var req struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}

	h.cart.SetQuantity(sessionID, req.ProductID, req.Quantity)
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": h.cart.GetCart(sessionID)})
}

// RemoveFromCart, satırı sepetten kaldırır.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	sessionID := h.sessionID(c)

	var req struct {
		ProductID int `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}

	h.cart.RemoveItem(sessionID, req.ProductID)
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": h.cart.GetCart(sessionID)})
}

// ClearCart, sepeti boşaltır.
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID := h.sessionID(c)
	h.cart.Clear(sessionID)
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": h.cart.GetCart(sessionID)})
}

// GetCartCount, sepetteki toplam ürün adedini döndürür.
func (h *Handler) GetCartCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.cart.ItemCount(h.sessionID(c))})
}

// OpenCart, sepet panelini açar.
func (h *Handler) OpenCart(c *gin.Context) {
	h.cart.Open(h.sessionID(c))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CloseCart, sepet panelini kapatır.
func (h *Handler) CloseCart(c *gin.Context) {
	h.cart.Close(h.sessionID(c))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Favoriler ve son görüntülenenler ---

// GetFavourites, favori listesini döndürür.
func (h *Handler) GetFavourites(c *gin.Context) {
	sessionID := h.sessionID(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"items":   h.favourites.Favourites(sessionID),
		"is_open": h.favourites.IsOpen(sessionID),
	})
}

// ToggleFavourite, ürünü favorilere ekler veya çıkarır.
func (h *Handler) ToggleFavourite(c *gin.Context) {
	var req struct {
		ProductID int `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}

	product := h.catalog.ProductByID(req.ProductID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		return
	}

	favourited := h.favourites.Toggle(h.sessionID(c), *product)
	c.JSON(http.StatusOK, gin.H{"success": true, "favourited": favourited})
}

// AddFavourite, ürünü favorilere ekler. Zaten favoride olan ürün için
// işlem etkisizdir.
func (h *Handler) AddFavourite(c *gin.Context) {
	var req struct {
		ProductID int `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}

	product := h.catalog.ProductByID(req.ProductID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		return
	}

	h.favourites.Add(h.sessionID(c), *product)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RemoveFavourite, ürünü favorilerden çıkarır.
func (h *Handler) RemoveFavourite(c *gin.Context) {
	var req struct {
		ProductID int `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}

	h.favourites.Remove(h.sessionID(c), req.ProductID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ClearFavourites, favori listesini boşaltır.
func (h *Handler) ClearFavourites(c *gin.Context) {
	h.favourites.ClearFavourites(h.sessionID(c))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// OpenFavourites, favori panelini açar.
func (h *Handler) OpenFavourites(c *gin.Context) {
	h.favourites.Open(h.sessionID(c))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CloseFavourites, favori panelini kapatır.
func (h *Handler) CloseFavourites(c *gin.Context) {
	h.favourites.Close(h.sessionID(c))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetRecentlyViewed, son görüntülenen ürünleri en yeniden eskiye döndürür.
func (h *Handler) GetRecentlyViewed(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"items":   h.favourites.RecentlyViewed(h.sessionID(c)),
	})
}

// --- Kullanıcı kimlik doğrulama ---

// HandleLogin, kullanıcı girişini yönetir.
func (h *Handler) HandleLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email and password are required"})
		return
	}

	user, err := h.users.Validate(req.Email, req.Password)
	if err != nil {
		log.Printf("HandleLogin - Login failed for %s", req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid email or password"})
		return
	}

	h.users.SetCurrentUser(user)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// HandleSignup, kullanıcı kaydını yönetir. Başarılı kayıt oturumu da açar.
func (h *Handler) HandleSignup(c *gin.Context) {
	var req struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "All fields are required"})
		return
	}

	user, err := h.users.Signup(req.FirstName, req.LastName, req.Email, req.Password)
	if err == services.ErrUserExists {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "User already exists"})
		return
	}
	if err != nil {
		log.Printf("HandleSignup - Error registering user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Signup failed"})
		return
	}

	go func() {
		if err := h.email.SendWelcomeEmail(user.Email, user.Name); err != nil {
			log.Printf("HandleSignup - Welcome email error: %v", err)
		}
	}()

	h.users.SetCurrentUser(user)
	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
}

// GetSession, kayıtlı oturumu kimlik bilgisi sormadan geri yükler.
func (h *Handler) GetSession(c *gin.Context) {
	user := h.users.CurrentUser()
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user, "logged_in": user != nil})
}

// UserLogout, oturumu koşulsuz kapatır.
func (h *Handler) UserLogout(c *gin.Context) {
	h.users.Logout()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Ödeme ve siparişler ---

// HandleCheckout, sepetten sipariş oluşturur, onay e-postasını kuyruğa alır
// ve sepeti temizler.
func (h *Handler) HandleCheckout(c *gin.Context) {
	sessionID := h.sessionID(c)

	var form models.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		log.Printf("HandleCheckout - Form bind error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid checkout form"})
		return
	}

	cart := h.cart.GetCart(sessionID)
	if len(cart.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Cart is empty"})
		return
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		item := models.OrderItem{
			ProductID:  line.ProductID,
			Name:       line.Name,
			Brand:      line.Brand,
			Price:      line.Price,
			Image:      line.Image,
			Quantity:   line.Quantity,
			TotalPrice: line.TotalPrice,
		}
		if product := h.catalog.ProductByID(line.ProductID); product != nil {
			item.OriginalPrice = product.OriginalPrice
		}
		items = append(items, item)
	}

	shippingAddr := models.Address{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Address:   form.Address,
		City:      form.City,
		State:     form.State,
		ZipCode:   form.ZipCode,
		Country:   form.Country,
		Phone:     form.Phone,
	}
	billingAddr := shippingAddr
	billingAddr.Phone = ""
	if !form.BillingSame && form.BillingAddress != "" {
		billingAddr = models.Address{
			FirstName: form.FirstName,
			LastName:  form.LastName,
			Address:   form.BillingAddress,
			City:      form.BillingCity,
			State:     form.BillingState,
			ZipCode:   form.BillingZipCode,
			Country:   form.BillingCountry,
		}
	}

	payment := models.PaymentMethod{
		Type:  form.PaymentType,
		Last4: form.CardLast4,
		Brand: form.CardBrand,
	}

	userID := 0
	user := h.users.CurrentUser()
	if user != nil {
		userID = user.ID
	}

	order, err := h.orders.CreateOrder(userID, items, shippingAddr, billingAddr, payment)
	if err != nil {
		log.Printf("HandleCheckout - Order create error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Order could not be created"})
		return
	}

	if user != nil {
		go func() {
			if err := h.email.SendOrderConfirmation(user.Email, order); err != nil {
				log.Printf("HandleCheckout - Confirmation email error: %v", err)
			}
		}()
	}

	h.cart.Clear(sessionID)
	h.cart.Close(sessionID)

	c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
}

// OrdersPage, oturumdaki kullanıcının siparişlerini döndürür.
func (h *Handler) OrdersPage(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": h.orders.GetByUser(user.ID)})
}

// GetOrderDetail, sipariş detayını döndürür; yalnızca sipariş sahibi
// görebilir.
func (h *Handler) GetOrderDetail(c *gin.Context) {
	user := currentUser(c)

	order := h.orders.GetByID(c.Param("id"))
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		return
	}
	if order.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "You are not allowed to view this order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// SearchOrders, kullanıcının siparişlerinde arama yapar.
func (h *Handler) SearchOrders(c *gin.Context) {
	user := currentUser(c)
	results := h.orders.Search(c.Query("q"), user.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": results})
}

// TrackOrder, sipariş numarası veya takip numarasıyla herkese açık takip
// yapar. ?tracking= parametresi parça eşleşmesi kabul eder.
func (h *Handler) TrackOrder(c *gin.Context) {
	ref := c.Query("tracking")
	if ref == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Tracking number is required"})
		return
	}

	order := h.orders.FindByReference(ref)
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found. Please check your tracking number."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// CancelOrder, pending durumundaki siparişi iptal eder.
func (h *Handler) CancelOrder(c *gin.Context) {
	user := currentUser(c)
	orderID := c.Param("id")

	order := h.orders.GetByID(orderID)
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		return
	}
	if order.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "You are not allowed to cancel this order"})
		return
	}

	switch err := h.orders.Cancel(orderID); err {
	case nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "order": h.orders.GetByID(orderID)})
	case services.ErrOrderNotCancellable:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Only pending orders can be cancelled"})
	default:
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
	}
}

// UpdateOrderStatus, sipariş geçmişine yeni bir durum kaydı ekler.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status      string `json:"status" binding:"required"`
		Description string `json:"description"`
		Location    string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Status is required"})
		return
	}

	status := models.OrderStatus(req.Status)
	if !validStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order status"})
		return
	}

	entry := models.StatusEntry{
		Status:      status,
		Description: req.Description,
		Location:    req.Location,
	}
	if err := h.orders.AppendStatus(c.Param("id"), entry); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": h.orders.GetByID(c.Param("id"))})
}

// GetOrderAnalytics, kullanıcının sipariş istatistiklerini döndürür.
func (h *Handler) GetOrderAnalytics(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "analytics": h.orders.Analytics(user.ID)})
}

func validStatus(status models.OrderStatus) bool {
	switch status {
	case models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusProcessing,
		models.OrderStatusShipped, models.OrderStatusDelivered, models.OrderStatusCancelled:
		return true
	}
	return false
}
