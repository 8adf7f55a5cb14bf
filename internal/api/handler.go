package api

import (
	"net/http"
	"strconv"
	"time"

	"shop-service/internal/service"
	"shop-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	catalogService  *service.CatalogService
	orderService    *service.OrderService
	reviewService   *service.ReviewService
	wishlistService *service.WishlistService
	userService     *service.UserService
	statsService    *service.StatsService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	catalogService *service.CatalogService,
	orderService *service.OrderService,
	reviewService *service.ReviewService,
	wishlistService *service.WishlistService,
	userService *service.UserService,
	statsService *service.StatsService,
) *Handler {
	return &Handler{
		catalogService:  catalogService,
		orderService:    orderService,
		reviewService:   reviewService,
		wishlistService: wishlistService,
		userService:     userService,
		statsService:    statsService,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.register)
			auth.POST("/login", h.login)
			auth.GET("/users", h.listUsers)
		}

		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)
		api.GET("/products/search/:query", h.searchProducts)
		api.GET("/categories", h.listCategories)

		api.POST("/orders", h.createOrder)
		api.GET("/orders/:id", h.getOrder)
		api.GET("/orders/user/:user_id", h.listUserOrders)

		api.POST("/reviews", h.createReview)
		api.GET("/reviews/product/:product_id", h.listProductReviews)

		api.POST("/wishlist", h.addToWishlist)
		api.GET("/wishlist/:user_id", h.getWishlist)
		api.DELETE("/wishlist/:user_id/:product_id", h.removeFromWishlist)

		admin := api.Group("/admin")
		{
			admin.GET("/all-orders", h.listAllOrders)
			admin.GET("/stats", h.adminStats)
		}
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// register handles user registration
func (h *Handler) register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// login handles user login
func (h *Handler) login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}

// listUsers returns all registered users
func (h *Handler) listUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.userService.ListUsers(c.Request.Context()))
}

// listProducts returns the catalog, optionally filtered by category
func (h *Handler) listProducts(c *gin.Context) {
	category := c.Query("category")
	c.JSON(http.StatusOK, h.catalogService.ListProducts(c.Request.Context(), category))
}

// getProduct returns a single product
func (h *Handler) getProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// searchProducts matches products by name or description
func (h *Handler) searchProducts(c *gin.Context) {
	query := c.Param("query")
	c.JSON(http.StatusOK, h.catalogService.SearchProducts(c.Request.Context(), query))
}

// listCategories returns distinct category labels
func (h *Handler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.catalogService.Categories(c.Request.Context()),
	})
}

// createOrder handles order creation
func (h *Handler) createOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// getOrder handles get order by ID
func (h *Handler) getOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// listUserOrders returns a user's order history, newest first
func (h *Handler) listUserOrders(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.orderService.ListOrdersByUser(c.Request.Context(), userID))
}

// createReview handles review creation
func (h *Handler) createReview(c *gin.Context) {
	var req service.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// listProductReviews returns a product's reviews, newest first
func (h *Handler) listProductReviews(c *gin.Context) {
	productID, ok := pathID(c, "product_id")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.reviewService.ListReviewsByProduct(c.Request.Context(), productID))
}

// addToWishlist saves a product to a user's wishlist
func (h *Handler) addToWishlist(c *gin.Context) {
	var req service.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	entry, err := h.wishlistService.Add(c.Request.Context(), req.UserID, req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Added to wishlist",
		"item":    entry,
	})
}

// getWishlist returns a user's wishlist hydrated with product fields
func (h *Handler) getWishlist(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.wishlistService.ListByUser(c.Request.Context(), userID))
}

// removeFromWishlist deletes a wishlist entry
func (h *Handler) removeFromWishlist(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	productID, ok := pathID(c, "product_id")
	if !ok {
		return
	}

	if err := h.wishlistService.Remove(c.Request.Context(), userID, productID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
}

// listAllOrders returns every committed order, newest first
func (h *Handler) listAllOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.orderService.ListOrders(c.Request.Context()))
}

// adminStats returns aggregate totals
func (h *Handler) adminStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsService.Admin(c.Request.Context()))
}

// pathID parses an integer path parameter, answering 400 on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name,
		})
		return 0, false
	}
	return id, true
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
