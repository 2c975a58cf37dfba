package handler

import (
	"github.com/gin-gonic/gin"

	salesapp "github.com/retail/backend/internal/application/sales"
)

// SaleHandler handles sale-related API endpoints
type SaleHandler struct {
	BaseHandler
	saleService *salesapp.SaleService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService *salesapp.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// CreateSaleRequest represents a request to create a bare sale row
type CreateSaleRequest struct {
	Amount       float64 `json:"amount" binding:"gte=0"`
	TicketNumber string  `json:"ticket_number" binding:"max=50"`
}

// UpdateSaleRequest represents a request to update a sale
type UpdateSaleRequest struct {
	Amount       *float64 `json:"amount" binding:"omitempty,gte=0"`
	TicketNumber *string  `json:"ticket_number" binding:"omitempty,max=50"`
}

// SaleItemRequest represents one requested ticket line
type SaleItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Amount    float64 `json:"amount" binding:"gte=0"`
}

// CreateSaleWithItemsRequest represents a full checkout request
type CreateSaleWithItemsRequest struct {
	Amount        float64           `json:"amount" binding:"gte=0"`
	PaymentAmount float64           `json:"payment_amount" binding:"gte=0"`
	TicketNumber  string            `json:"ticket_number" binding:"max=50"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// List returns all sales with their line items
func (h *SaleHandler) List(c *gin.Context) {
	sales, err := h.saleService.GetAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sales)
}

// Get returns a single sale by ID
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}
	sale, err := h.saleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sale)
}

// Create creates a bare sale row without items
func (h *SaleHandler) Create(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	sale, err := h.saleService.Create(c.Request.Context(), salesapp.CreateSaleRequest{
		Amount:       toDecimal(req.Amount),
		TicketNumber: req.TicketNumber,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, sale)
}

// Update applies a partial update to a sale
func (h *SaleHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	var req UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	sale, err := h.saleService.Update(c.Request.Context(), id, salesapp.UpdateSaleRequest{
		Amount:       toDecimalPtr(req.Amount),
		TicketNumber: req.TicketNumber,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sale)
}

// Delete deletes a sale
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}
	if err := h.saleService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Sale deleted successfully"})
}

// CreateWithItems runs the checkout workflow: payment check, stock
// validation, then the atomic sale + items + stock decrement
func (h *SaleHandler) CreateWithItems(c *gin.Context) {
	var req CreateSaleWithItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	appReq := salesapp.CreateSaleWithItemsRequest{
		Amount:        toDecimal(req.Amount),
		PaymentAmount: toDecimal(req.PaymentAmount),
		TicketNumber:  req.TicketNumber,
	}
	for _, item := range req.Items {
		appReq.Items = append(appReq.Items, salesapp.SaleItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Amount:    toDecimal(item.Amount),
		})
	}

	sale, err := h.saleService.CreateWithItems(c.Request.Context(), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, sale)
}

// Today lists the current business day's sales with a summary
func (h *SaleHandler) Today(c *gin.Context) {
	result, err := h.saleService.TodaySales(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// CurrentMonth lists this month's sales with per-day aggregates
func (h *SaleHandler) CurrentMonth(c *gin.Context) {
	result, err := h.saleService.CurrentMonthSales(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// TodayFinancialReport returns the financial report for the current
// business day
func (h *SaleHandler) TodayFinancialReport(c *gin.Context) {
	report, err := h.saleService.TodayFinancialReport(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// CurrentMonthFinancialReport returns the financial report for the
// month to date
func (h *SaleHandler) CurrentMonthFinancialReport(c *gin.Context) {
	report, err := h.saleService.CurrentMonthFinancialReport(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}
