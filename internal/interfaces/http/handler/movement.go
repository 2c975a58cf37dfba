package handler

import (
	"github.com/gin-gonic/gin"

	ledgerapp "github.com/retail/backend/internal/application/ledger"
	"github.com/retail/backend/internal/domain/ledger"
)

// MovementHandler handles stock movement API endpoints
type MovementHandler struct {
	BaseHandler
	movementService *ledgerapp.MovementService
}

// NewMovementHandler creates a new MovementHandler
func NewMovementHandler(movementService *ledgerapp.MovementService) *MovementHandler {
	return &MovementHandler{movementService: movementService}
}

// CreateMovementRequest represents a request to record a stock movement
type CreateMovementRequest struct {
	ProductID     uint     `json:"product_id" binding:"required"`
	SupplierID    *uint    `json:"supplier_id"`
	Type          string   `json:"type" binding:"required,oneof=IN OUT"`
	Reason        string   `json:"reason" binding:"required,oneof=SALE PURCHASE ADJUSTMENT LOSS"`
	Quantity      int      `json:"quantity" binding:"required,gt=0"`
	UnitCost      *float64 `json:"unit_cost" binding:"omitempty,gte=0"`
	ReferenceID   *uint    `json:"reference_id"`
	ReferenceType string   `json:"reference_type" binding:"max=50"`
}

// List returns all movements
func (h *MovementHandler) List(c *gin.Context) {
	movements, err := h.movementService.GetAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, movements)
}

// Get returns a single movement by ID
func (h *MovementHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid movement ID")
		return
	}
	movement, err := h.movementService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, movement)
}

// ByProduct returns the movements touching one product
func (h *MovementHandler) ByProduct(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	movements, err := h.movementService.GetByProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, movements)
}

// Create records a movement
func (h *MovementHandler) Create(c *gin.Context) {
	var req CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	movement, err := h.movementService.Create(c.Request.Context(), ledgerapp.CreateMovementRequest{
		ProductID:     req.ProductID,
		SupplierID:    req.SupplierID,
		Type:          ledger.MovementType(req.Type),
		Reason:        ledger.MovementReason(req.Reason),
		Quantity:      req.Quantity,
		UnitCost:      toDecimalPtr(req.UnitCost),
		ReferenceID:   req.ReferenceID,
		ReferenceType: req.ReferenceType,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, movement)
}

// Delete deletes a movement
func (h *MovementHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid movement ID")
		return
	}
	if err := h.movementService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Movement deleted successfully"})
}
