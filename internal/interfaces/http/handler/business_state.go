package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	ledgerapp "github.com/retail/backend/internal/application/ledger"
)

// BusinessStateHandler handles ledger state API endpoints
type BusinessStateHandler struct {
	BaseHandler
	stateService *ledgerapp.StateService
}

// NewBusinessStateHandler creates a new BusinessStateHandler
func NewBusinessStateHandler(stateService *ledgerapp.StateService) *BusinessStateHandler {
	return &BusinessStateHandler{stateService: stateService}
}

// CreateStateRequest represents a request to create a snapshot row
type CreateStateRequest struct {
	TotalStockValue float64    `json:"total_stock_value" binding:"gte=0"`
	TotalSales      float64    `json:"total_sales" binding:"gte=0"`
	TotalPurchases  float64    `json:"total_purchases" binding:"gte=0"`
	Balance         float64    `json:"balance"`
	Notes           string     `json:"notes"`
	Date            *time.Time `json:"date"`
}

// UpdateStateRequest represents a request to update a snapshot row
type UpdateStateRequest struct {
	TotalStockValue *float64   `json:"total_stock_value" binding:"omitempty,gte=0"`
	TotalSales      *float64   `json:"total_sales" binding:"omitempty,gte=0"`
	TotalPurchases  *float64   `json:"total_purchases" binding:"omitempty,gte=0"`
	Balance         *float64   `json:"balance"`
	Notes           *string    `json:"notes"`
	Date            *time.Time `json:"date"`
}

// BalanceRequest represents a balance adjustment
type BalanceRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// List returns all state rows
func (h *BusinessStateHandler) List(c *gin.Context) {
	states, err := h.stateService.GetAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, states)
}

// Get returns a state row enriched with the current stock value
func (h *BusinessStateHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid state ID")
		return
	}
	state, err := h.stateService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, state)
}

// Latest returns the most recent state row
func (h *BusinessStateHandler) Latest(c *gin.Context) {
	state, err := h.stateService.GetLatest(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, state)
}

// Create creates a snapshot row
func (h *BusinessStateHandler) Create(c *gin.Context) {
	var req CreateStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	state, err := h.stateService.Create(c.Request.Context(), ledgerapp.CreateStateRequest{
		TotalStockValue: toDecimal(req.TotalStockValue),
		TotalSales:      toDecimal(req.TotalSales),
		TotalPurchases:  toDecimal(req.TotalPurchases),
		Balance:         toDecimal(req.Balance),
		Notes:           req.Notes,
		Date:            req.Date,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, state)
}

// Update applies a partial update to a snapshot row
func (h *BusinessStateHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid state ID")
		return
	}

	var req UpdateStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	state, err := h.stateService.Update(c.Request.Context(), id, ledgerapp.UpdateStateRequest{
		TotalStockValue: toDecimalPtr(req.TotalStockValue),
		TotalSales:      toDecimalPtr(req.TotalSales),
		TotalPurchases:  toDecimalPtr(req.TotalPurchases),
		Balance:         toDecimalPtr(req.Balance),
		Notes:           req.Notes,
		Date:            req.Date,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, state)
}

// Delete deletes a state row
func (h *BusinessStateHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid state ID")
		return
	}
	if err := h.stateService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "State deleted successfully"})
}

// AddBalance adds an amount to the running balance
func (h *BusinessStateHandler) AddBalance(c *gin.Context) {
	var req BalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	state, err := h.stateService.AddBalance(c.Request.Context(), toDecimal(req.Amount))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, state)
}

// SubtractBalance subtracts an amount from the running balance
func (h *BusinessStateHandler) SubtractBalance(c *gin.Context) {
	var req BalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	state, err := h.stateService.SubtractBalance(c.Request.Context(), toDecimal(req.Amount))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, state)
}
