package handler

import "github.com/gin-gonic/gin"

// Static sub-paths are registered before parameterized ones so gin does
// not shadow them with the :id wildcard.

// RegisterRoutes registers product endpoints
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.GET("", h.List)
	products.GET("/best-price", h.BestPrices)
	products.GET("/low-stock", h.LowStock)
	products.GET("/:id", h.Get)
	products.POST("", h.Create)
	products.POST("/bulk-update-prices", h.BulkUpdatePrices)
	products.PUT("/:id", h.Update)
	products.DELETE("/:id", h.Delete)
}

// RegisterRoutes registers sale endpoints
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	sales.GET("", h.List)
	sales.GET("/today", h.Today)
	sales.GET("/current-month", h.CurrentMonth)
	sales.GET("/financial-report/today", h.TodayFinancialReport)
	sales.GET("/financial-report/current-month", h.CurrentMonthFinancialReport)
	sales.GET("/:id", h.Get)
	sales.POST("", h.Create)
	sales.POST("/with-items", h.CreateWithItems)
	sales.PUT("/:id", h.Update)
	sales.DELETE("/:id", h.Delete)
}

// RegisterRoutes registers raw line-item endpoints
func (h *TicketItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/item-tickets")
	items.GET("", h.List)
	items.GET("/sale/:id", h.BySale)
	items.GET("/:id", h.Get)
	items.POST("", h.Create)
	items.PUT("/:id", h.Update)
	items.DELETE("/:id", h.Delete)
}

// RegisterRoutes registers supplier endpoints
func (h *SupplierHandler) RegisterRoutes(rg *gin.RouterGroup) {
	suppliers := rg.Group("/suppliers")
	suppliers.GET("", h.List)
	suppliers.GET("/:id", h.Get)
	suppliers.POST("", h.Create)
	suppliers.PUT("/:id", h.Update)
	suppliers.DELETE("/:id", h.Delete)
}

// RegisterRoutes registers supplier quote endpoints
func (h *SupplierPriceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	prices := rg.Group("/supplier-product-prices")
	prices.GET("", h.List)
	prices.GET("/supplier/:id", h.BySupplier)
	prices.GET("/product/:id", h.ByProduct)
	prices.GET("/:id", h.Get)
	prices.POST("", h.Create)
	prices.PUT("/:id", h.Update)
	prices.DELETE("/:id", h.Delete)
}

// RegisterRoutes registers promotion endpoints
func (h *PromotionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	promotions := rg.Group("/promotions")
	promotions.GET("", h.List)
	promotions.GET("/active", h.Active)
	promotions.GET("/:id", h.Get)
	promotions.GET("/:id/validate", h.Validate)
	promotions.POST("", h.Create)
	promotions.PUT("/:id", h.Update)
	promotions.DELETE("/:id", h.Delete)
}

// RegisterRoutes registers stock movement endpoints
func (h *MovementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	movements := rg.Group("/business-movements")
	movements.GET("", h.List)
	movements.GET("/product/:id", h.ByProduct)
	movements.GET("/:id", h.Get)
	movements.POST("", h.Create)
	movements.DELETE("/:id", h.Delete)
}

// RegisterRoutes registers ledger state endpoints
func (h *BusinessStateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	states := rg.Group("/business-states")
	states.GET("", h.List)
	states.GET("/latest", h.Latest)
	states.GET("/:id", h.Get)
	states.POST("", h.Create)
	states.POST("/balance/add", h.AddBalance)
	states.POST("/balance/subtract", h.SubtractBalance)
	states.PUT("/:id", h.Update)
	states.DELETE("/:id", h.Delete)
}
