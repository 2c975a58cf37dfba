package sales

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/sales"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/domain/shared/period"
)

const dateLayout = "2006-01-02"

// SaleService handles sale business operations
type SaleService struct {
	saleRepo sales.SaleRepository
	scope    TransactionScope
	now      func() time.Time
}

// NewSaleService creates a new SaleService
func NewSaleService(saleRepo sales.SaleRepository, scope TransactionScope) *SaleService {
	return &SaleService{
		saleRepo: saleRepo,
		scope:    scope,
		now:      time.Now,
	}
}

// WithClock overrides the service clock. Used by tests to pin period
// boundaries.
func (s *SaleService) WithClock(now func() time.Time) *SaleService {
	s.now = now
	return s
}

// GetAll retrieves all sales with their items, newest first
func (s *SaleService) GetAll(ctx context.Context) ([]sales.Sale, error) {
	return s.saleRepo.FindAll(ctx)
}

// GetByID retrieves a sale with its items
func (s *SaleService) GetByID(ctx context.Context, id uint) (*sales.Sale, error) {
	return s.saleRepo.FindByID(ctx, id)
}

// Create creates a bare sale row without line items
func (s *SaleService) Create(ctx context.Context, req CreateSaleRequest) (*sales.Sale, error) {
	sale, err := sales.NewSale(req.Amount, req.TicketNumber)
	if err != nil {
		return nil, err
	}
	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Update applies a partial update to a sale
func (s *SaleService) Update(ctx context.Context, id uint, req UpdateSaleRequest) (*sales.Sale, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, shared.NewDomainError("INVALID_AMOUNT", "Sale amount cannot be negative")
		}
		sale.Amount = *req.Amount
	}
	if req.TicketNumber != nil {
		sale.TicketNumber = *req.TicketNumber
	}
	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Delete deletes a sale
func (s *SaleService) Delete(ctx context.Context, id uint) error {
	return s.saleRepo.Delete(ctx, id)
}

// CreateWithItems runs the checkout workflow: verify the payment covers
// the total, verify stock for every requested line, then atomically
// persist the sale, its ticket items, and the stock decrements. Any
// failure rolls the whole unit back; no partial sale is ever visible.
//
// Product rows are read under a row lock inside the transaction, so the
// stock check and the decrement cannot interleave with a concurrent
// sale of the same product.
func (s *SaleService) CreateWithItems(ctx context.Context, req CreateSaleWithItemsRequest) (*sales.Sale, error) {
	if req.PaymentAmount.LessThan(req.Amount) {
		return nil, shared.ErrInsufficientPayment
	}
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Sale requires at least one item")
	}

	sale, err := sales.NewSale(req.Amount, req.TicketNumber)
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		// Lock and check every product before mutating anything. The
		// locks are held until commit, keeping the checks valid through
		// the decrement phase.
		products := repos.Products()
		locked := make(map[uint]*catalog.Product, len(req.Items))
		for _, item := range req.Items {
			if _, ok := locked[item.ProductID]; ok {
				continue
			}
			product, err := products.FindByIDForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			locked[item.ProductID] = product
		}
		for _, item := range req.Items {
			if !locked[item.ProductID].HasStock(item.Quantity) {
				return shared.NewDomainError("INSUFFICIENT_STOCK",
					fmt.Sprintf("Insufficient stock for %s. Available: %d, Requested: %d",
						locked[item.ProductID].Name, locked[item.ProductID].Stock, item.Quantity))
			}
		}

		if err := repos.Sales().Save(ctx, sale); err != nil {
			return err
		}
		for _, item := range req.Items {
			line, err := sale.AddItem(item.ProductID, item.Quantity, item.Amount)
			if err != nil {
				return err
			}
			line.SaleID = sale.ID
			if err := repos.Items().Save(ctx, line); err != nil {
				return err
			}

			product := locked[item.ProductID]
			if err := product.DecreaseStock(item.Quantity); err != nil {
				return err
			}
			if err := products.Save(ctx, product); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.saleRepo.FindByID(ctx, sale.ID)
}

// TodaySales lists the current business day's sales with a summary
func (s *SaleService) TodaySales(ctx context.Context) (*DaySalesResponse, error) {
	day := period.Day(s.now())
	list, err := s.saleRepo.FindBetween(ctx, day.From, day.To)
	if err != nil {
		return nil, err
	}

	summary := DaySalesSummary{
		TotalAmount: decimal.Zero,
		Date:        day.From.Format(dateLayout),
	}
	for _, sale := range list {
		summary.TotalSales++
		summary.TotalAmount = summary.TotalAmount.Add(sale.Amount)
		summary.TotalItems += len(sale.Items)
	}
	return &DaySalesResponse{Sales: list, Summary: summary}, nil
}

// CurrentMonthSales lists sales from the first of the month through now,
// with per-day aggregates
func (s *SaleService) CurrentMonthSales(ctx context.Context) (*MonthSalesResponse, error) {
	month := period.MonthToDate(s.now())
	list, err := s.saleRepo.FindBetween(ctx, month.From, month.To)
	if err != nil {
		return nil, err
	}

	summary := MonthSalesSummary{
		TotalAmount: decimal.Zero,
		MonthStart:  month.From.Format(dateLayout),
		MonthEnd:    month.To.Format(dateLayout),
	}
	byDay := make(map[string]*DailySales)
	for _, sale := range list {
		summary.TotalSales++
		summary.TotalAmount = summary.TotalAmount.Add(sale.Amount)
		summary.TotalItems += len(sale.Items)

		key := sale.CreatedAt.In(period.BusinessTimezone).Format(dateLayout)
		day, ok := byDay[key]
		if !ok {
			day = &DailySales{Date: key, Amount: decimal.Zero}
			byDay[key] = day
		}
		day.Count++
		day.Amount = day.Amount.Add(sale.Amount)
	}

	days := make([]DailySales, 0, len(byDay))
	for _, day := range byDay {
		days = append(days, *day)
	}
	sortDailySales(days)
	summary.SalesByDay = days

	return &MonthSalesResponse{Sales: list, Summary: summary}, nil
}

// TodayFinancialReport builds the financial report for the current
// business day
func (s *SaleService) TodayFinancialReport(ctx context.Context) (*FinancialReport, error) {
	day := period.Day(s.now())
	list, err := s.saleRepo.FindBetween(ctx, day.From, day.To)
	if err != nil {
		return nil, err
	}
	return buildFinancialReport(list, "Current day", day.From), nil
}

// CurrentMonthFinancialReport builds the financial report from the
// first of the month through now
func (s *SaleService) CurrentMonthFinancialReport(ctx context.Context) (*FinancialReport, error) {
	month := period.MonthToDate(s.now())
	list, err := s.saleRepo.FindBetween(ctx, month.From, month.To)
	if err != nil {
		return nil, err
	}
	return buildFinancialReport(list, "Current month", month.From), nil
}

// buildFinancialReport derives the period aggregates from a sale set.
// Invested cost is valued at each product's current supplier price, not
// the price paid when the stock was bought, so the reinvestment figure
// (what restocking the sold units costs today) equals the invested one.
func buildFinancialReport(list []sales.Sale, label string, start time.Time) *FinancialReport {
	totalRevenue := decimal.Zero
	totalInvested := decimal.Zero

	for _, sale := range list {
		totalRevenue = totalRevenue.Add(sale.Amount)
		for _, item := range sale.Items {
			if item.Product == nil {
				continue
			}
			cost := decimal.NewFromInt(int64(item.Product.AmountSupplier)).
				Mul(decimal.NewFromInt(int64(item.Quantity)))
			totalInvested = totalInvested.Add(cost)
		}
	}

	realProfit := totalRevenue.Sub(totalInvested)
	profitMargin := decimal.Zero
	if totalRevenue.IsPositive() {
		profitMargin = realProfit.Div(totalRevenue).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return &FinancialReport{
		Period:      label,
		PeriodStart: start.Format(dateLayout),
		Report: ReportFigures{
			TotalRevenue:      totalRevenue.Round(2),
			TotalInvested:     totalInvested.Round(2),
			TotalReinvestment: totalInvested.Round(2),
			RealProfit:        realProfit.Round(2),
			ProfitMargin:      profitMargin,
		},
		Summary: ReportSummary{
			TotalSales: len(list),
			Message: fmt.Sprintf(
				"Across %d sales, %s was invested and %s earned, for a real profit of %s. Restocking the sold units requires reinvesting %s.",
				len(list),
				totalInvested.Round(2).StringFixed(2),
				totalRevenue.Round(2).StringFixed(2),
				realProfit.Round(2).StringFixed(2),
				totalInvested.Round(2).StringFixed(2),
			),
		},
	}
}

func sortDailySales(days []DailySales) {
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
}
