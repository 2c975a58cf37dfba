package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	promotionapp "github.com/retail/backend/internal/application/promotion"
)

// PromotionHandler handles promotion-related API endpoints
type PromotionHandler struct {
	BaseHandler
	promotionService *promotionapp.PromotionService
}

// NewPromotionHandler creates a new PromotionHandler
func NewPromotionHandler(promotionService *promotionapp.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionService: promotionService}
}

// PromotionItemRequest represents one bundle line
type PromotionItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"omitempty,gte=1"`
}

// CreatePromotionRequest represents a request to create a promotion
type CreatePromotionRequest struct {
	Name        string                 `json:"name" binding:"required,min=1,max=200"`
	Description string                 `json:"description"`
	Price       float64                `json:"price" binding:"gte=0"`
	StartDate   *time.Time             `json:"start_date"`
	EndDate     *time.Time             `json:"end_date"`
	IsActive    *bool                  `json:"is_active"`
	Items       []PromotionItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdatePromotionRequest represents a request to update a promotion
type UpdatePromotionRequest struct {
	Name        *string                `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string                `json:"description"`
	Price       *float64               `json:"price" binding:"omitempty,gte=0"`
	StartDate   *time.Time             `json:"start_date"`
	EndDate     *time.Time             `json:"end_date"`
	IsActive    *bool                  `json:"is_active"`
	Items       []PromotionItemRequest `json:"items" binding:"omitempty,dive"`
}

// List returns all promotions with their items
func (h *PromotionHandler) List(c *gin.Context) {
	promotions, err := h.promotionService.GetAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, promotions)
}

// Active returns promotions whose availability window is open now
func (h *PromotionHandler) Active(c *gin.Context) {
	promotions, err := h.promotionService.GetActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, promotions)
}

// Get returns a single promotion by ID
func (h *PromotionHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid promotion ID")
		return
	}
	promo, err := h.promotionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, promo)
}

// Create creates a promotion with its item set
func (h *PromotionHandler) Create(c *gin.Context) {
	var req CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	appReq := promotionapp.CreatePromotionRequest{
		Name:        req.Name,
		Description: req.Description,
		Price:       toDecimal(req.Price),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    req.IsActive,
	}
	for _, item := range req.Items {
		appReq.Items = append(appReq.Items, promotionapp.PromotionItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	promo, err := h.promotionService.Create(c.Request.Context(), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, promo)
}

// Update applies a partial update; a non-nil item list replaces the
// promotion's full item set
func (h *PromotionHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid promotion ID")
		return
	}

	var req UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	appReq := promotionapp.UpdatePromotionRequest{
		Name:        req.Name,
		Description: req.Description,
		Price:       toDecimalPtr(req.Price),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    req.IsActive,
	}
	if req.Items != nil {
		appReq.Items = make([]promotionapp.PromotionItemRequest, 0, len(req.Items))
		for _, item := range req.Items {
			appReq.Items = append(appReq.Items, promotionapp.PromotionItemRequest{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}
	}

	promo, err := h.promotionService.Update(c.Request.Context(), id, appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, promo)
}

// Delete deletes a promotion
func (h *PromotionHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid promotion ID")
		return
	}
	if err := h.promotionService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Promotion deleted successfully"})
}

// Validate runs the read-only availability check for a promotion
func (h *PromotionHandler) Validate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid promotion ID")
		return
	}
	result, err := h.promotionService.ValidateAvailability(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
