package handler

import (
	"github.com/gin-gonic/gin"

	pricingapp "github.com/retail/backend/internal/application/pricing"
)

// SupplierPriceHandler handles supplier quote API endpoints
type SupplierPriceHandler struct {
	BaseHandler
	priceService *pricingapp.SupplierPriceService
}

// NewSupplierPriceHandler creates a new SupplierPriceHandler
func NewSupplierPriceHandler(priceService *pricingapp.SupplierPriceService) *SupplierPriceHandler {
	return &SupplierPriceHandler{priceService: priceService}
}

// CreateSupplierPriceRequest represents a request to record a quote
type CreateSupplierPriceRequest struct {
	SupplierID uint    `json:"supplier_id" binding:"required"`
	ProductID  uint    `json:"product_id" binding:"required"`
	UnitPrice  float64 `json:"unit_price" binding:"gte=0"`
}

// UpdateSupplierPriceRequest represents a request to replace a quote's
// unit price
type UpdateSupplierPriceRequest struct {
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
}

// List returns all quotes
func (h *SupplierPriceHandler) List(c *gin.Context) {
	prices, err := h.priceService.GetAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, prices)
}

// Get returns a single quote by ID
func (h *SupplierPriceHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid price ID")
		return
	}
	price, err := h.priceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, price)
}

// BySupplier returns all quotes from one supplier
func (h *SupplierPriceHandler) BySupplier(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}
	prices, err := h.priceService.GetBySupplier(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, prices)
}

// ByProduct returns all quotes for one product
func (h *SupplierPriceHandler) ByProduct(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	prices, err := h.priceService.GetByProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, prices)
}

// Create records a quote
func (h *SupplierPriceHandler) Create(c *gin.Context) {
	var req CreateSupplierPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	price, err := h.priceService.Create(c.Request.Context(), pricingapp.CreateSupplierPriceRequest{
		SupplierID: req.SupplierID,
		ProductID:  req.ProductID,
		UnitPrice:  toDecimal(req.UnitPrice),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, price)
}

// Update replaces a quote's unit price
func (h *SupplierPriceHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid price ID")
		return
	}

	var req UpdateSupplierPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	price, err := h.priceService.Update(c.Request.Context(), id, pricingapp.UpdateSupplierPriceRequest{
		UnitPrice: toDecimal(req.UnitPrice),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, price)
}

// Delete deletes a quote
func (h *SupplierPriceHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid price ID")
		return
	}
	if err := h.priceService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Supplier price deleted successfully"})
}
