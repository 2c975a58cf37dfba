package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/retail/backend/internal/application/catalog"
)

// ProductHandler handles product-related API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=200"`
	Description    string `json:"description"`
	AmountToSale   int    `json:"amount_to_sale" binding:"gte=0"`
	AmountSupplier int    `json:"amount_supplier" binding:"gte=0"`
	Stock          int    `json:"stock" binding:"gte=0"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description    *string `json:"description"`
	AmountToSale   *int    `json:"amount_to_sale" binding:"omitempty,gte=0"`
	AmountSupplier *int    `json:"amount_supplier" binding:"omitempty,gte=0"`
	Stock          *int    `json:"stock" binding:"omitempty,gte=0"`
}

// List returns all products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// Get returns a single product by ID
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Create creates a new product
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	product, err := h.productService.Create(c.Request.Context(), catalogapp.CreateProductRequest{
		Name:           req.Name,
		Description:    req.Description,
		AmountToSale:   req.AmountToSale,
		AmountSupplier: req.AmountSupplier,
		Stock:          req.Stock,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Update applies a partial update to a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, catalogapp.UpdateProductRequest{
		Name:           req.Name,
		Description:    req.Description,
		AmountToSale:   req.AmountToSale,
		AmountSupplier: req.AmountSupplier,
		Stock:          req.Stock,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete deletes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Product deleted successfully"})
}

// BestPrices returns the minimum supplier quote for every product
func (h *ProductHandler) BestPrices(c *gin.Context) {
	prices, err := h.productService.BestPrices(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, prices)
}

// LowStock returns products with stock below the threshold query
// parameter (default 5)
func (h *ProductHandler) LowStock(c *gin.Context) {
	threshold := 0
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.BadRequest(c, "Invalid threshold")
			return
		}
		threshold = parsed
	}

	result, err := h.productService.LowStock(c.Request.Context(), threshold)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// BulkUpdatePrices writes each product's best quote back into its
// supplier cost
func (h *ProductHandler) BulkUpdatePrices(c *gin.Context) {
	result, err := h.productService.BulkUpdatePrices(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
