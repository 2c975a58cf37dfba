package sales

import (
	"github.com/shopspring/decimal"

	"github.com/retail/backend/internal/domain/sales"
)

// CreateSaleRequest creates a bare sale row without line items.
type CreateSaleRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	TicketNumber string          `json:"ticket_number"`
}

// UpdateSaleRequest applies a partial update to a sale.
type UpdateSaleRequest struct {
	Amount       *decimal.Decimal `json:"amount"`
	TicketNumber *string          `json:"ticket_number"`
}

// SaleItemRequest is one requested ticket line.
type SaleItemRequest struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
}

// CreateSaleWithItemsRequest drives the full checkout workflow.
type CreateSaleWithItemsRequest struct {
	Amount        decimal.Decimal   `json:"amount"`
	PaymentAmount decimal.Decimal   `json:"payment_amount"`
	TicketNumber  string            `json:"ticket_number"`
	Items         []SaleItemRequest `json:"items"`
}

// DailySales aggregates one calendar day inside a month summary.
type DailySales struct {
	Date   string          `json:"date"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// DaySalesSummary accompanies the today-sales listing.
type DaySalesSummary struct {
	TotalSales  int             `json:"total_sales"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalItems  int             `json:"total_items"`
	Date        string          `json:"date"`
}

// DaySalesResponse is the payload for the today-sales query.
type DaySalesResponse struct {
	Sales   []sales.Sale    `json:"sales"`
	Summary DaySalesSummary `json:"summary"`
}

// MonthSalesSummary accompanies the current-month listing.
type MonthSalesSummary struct {
	TotalSales  int             `json:"total_sales"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalItems  int             `json:"total_items"`
	MonthStart  string          `json:"month_start"`
	MonthEnd    string          `json:"month_end"`
	SalesByDay  []DailySales    `json:"sales_by_day"`
}

// MonthSalesResponse is the payload for the current-month query.
type MonthSalesResponse struct {
	Sales   []sales.Sale      `json:"sales"`
	Summary MonthSalesSummary `json:"summary"`
}

// ReportFigures holds the monetary aggregates of a financial report.
// Restock cost is valued at the current supplier price, so the
// reinvestment figure equals the invested figure.
type ReportFigures struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalInvested     decimal.Decimal `json:"total_invested"`
	TotalReinvestment decimal.Decimal `json:"total_reinvestment"`
	RealProfit        decimal.Decimal `json:"real_profit"`
	ProfitMargin      decimal.Decimal `json:"profit_margin"`
}

// ReportSummary is the human-readable tail of a financial report.
type ReportSummary struct {
	TotalSales int    `json:"total_sales"`
	Message    string `json:"message"`
}

// FinancialReport is the response of the financial-report queries.
type FinancialReport struct {
	Period      string        `json:"period"`
	PeriodStart string        `json:"period_start"`
	Report      ReportFigures `json:"report"`
	Summary     ReportSummary `json:"summary"`
}
