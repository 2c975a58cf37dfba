package handler

import (
	"github.com/gin-gonic/gin"

	salesapp "github.com/retail/backend/internal/application/sales"
)

// TicketItemHandler handles raw line-item API endpoints
type TicketItemHandler struct {
	BaseHandler
	itemService *salesapp.TicketItemService
}

// NewTicketItemHandler creates a new TicketItemHandler
func NewTicketItemHandler(itemService *salesapp.TicketItemService) *TicketItemHandler {
	return &TicketItemHandler{itemService: itemService}
}

// CreateTicketItemRequest represents a request to create a raw line item
type CreateTicketItemRequest struct {
	SaleID    uint    `json:"sale_id" binding:"required"`
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Amount    float64 `json:"amount" binding:"gte=0"`
	Print     string  `json:"print"`
}

// UpdateTicketItemRequest represents a request to update a line item
type UpdateTicketItemRequest struct {
	Quantity *int     `json:"quantity" binding:"omitempty,gt=0"`
	Amount   *float64 `json:"amount" binding:"omitempty,gte=0"`
	Print    *string  `json:"print"`
}

// List returns all ticket items
func (h *TicketItemHandler) List(c *gin.Context) {
	items, err := h.itemService.GetAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Get returns a single ticket item by ID
func (h *TicketItemHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid ticket item ID")
		return
	}
	item, err := h.itemService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// BySale returns the items belonging to one sale
func (h *TicketItemHandler) BySale(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}
	items, err := h.itemService.GetBySale(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Create inserts a raw line item outside the sale workflow
func (h *TicketItemHandler) Create(c *gin.Context) {
	var req CreateTicketItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), salesapp.CreateTicketItemRequest{
		SaleID:    req.SaleID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Amount:    toDecimal(req.Amount),
		Print:     req.Print,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// Update applies a partial update to a line item
func (h *TicketItemHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid ticket item ID")
		return
	}

	var req UpdateTicketItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), id, salesapp.UpdateTicketItemRequest{
		Quantity: req.Quantity,
		Amount:   toDecimalPtr(req.Amount),
		Print:    req.Print,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete deletes a ticket item
func (h *TicketItemHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid ticket item ID")
		return
	}
	if err := h.itemService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Ticket item deleted successfully"})
}
