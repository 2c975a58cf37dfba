package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	catalogapp "github.com/retail/backend/internal/application/catalog"
	ledgerapp "github.com/retail/backend/internal/application/ledger"
	partnerapp "github.com/retail/backend/internal/application/partner"
	pricingapp "github.com/retail/backend/internal/application/pricing"
	promotionapp "github.com/retail/backend/internal/application/promotion"
	salesapp "github.com/retail/backend/internal/application/sales"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/retail/backend/internal/domain/partner"
	"github.com/retail/backend/internal/domain/pricing"
	"github.com/retail/backend/internal/domain/promotion"
	"github.com/retail/backend/internal/domain/sales"
	"github.com/retail/backend/internal/infrastructure/persistence"
	"github.com/retail/backend/internal/interfaces/http/router"
)

// newTestRouter wires the full HTTP stack over an in-memory SQLite
// database, mirroring the production wiring in cmd/server.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&catalog.Product{},
		&partner.Supplier{},
		&pricing.SupplierPrice{},
		&sales.Sale{},
		&sales.TicketItem{},
		&promotion.Promotion{},
		&promotion.PromotionItem{},
		&ledger.Movement{},
		&ledger.BusinessState{},
	))

	productRepo := persistence.NewGormProductRepository(db)
	supplierRepo := persistence.NewGormSupplierRepository(db)
	priceRepo := persistence.NewGormSupplierPriceRepository(db)
	saleRepo := persistence.NewGormSaleRepository(db)
	itemRepo := persistence.NewGormTicketItemRepository(db)
	promotionRepo := persistence.NewGormPromotionRepository(db)
	movementRepo := persistence.NewGormMovementRepository(db)
	stateRepo := persistence.NewGormStateRepository(db)

	productService := catalogapp.NewProductService(productRepo, priceRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	priceService := pricingapp.NewSupplierPriceService(priceRepo, supplierRepo, productRepo)
	saleService := salesapp.NewSaleService(saleRepo, persistence.NewGormSaleTransactionScope(db))
	itemService := salesapp.NewTicketItemService(itemRepo)
	promotionService := promotionapp.NewPromotionService(promotionRepo, persistence.NewGormPromotionTransactionScope(db))
	movementService := ledgerapp.NewMovementService(movementRepo, productRepo)
	stateService := ledgerapp.NewStateService(stateRepo, productRepo)

	engine := gin.New()
	router.NewRouter(engine).
		Register(NewProductHandler(productService)).
		Register(NewSupplierHandler(supplierService)).
		Register(NewSupplierPriceHandler(priceService)).
		Register(NewSaleHandler(saleService)).
		Register(NewTicketItemHandler(itemService)).
		Register(NewPromotionHandler(promotionService)).
		Register(NewMovementHandler(movementService)).
		Register(NewBusinessStateHandler(stateService)).
		Setup()

	return engine, db
}

// perform runs one request against the engine and returns the recorder.
func perform(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

// envelope decodes the standard response wrapper.
type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data"`
	Error   *errorInfo `json:"error"`
}

type errorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details []struct {
		Path    string `json:"path"`
		Message string `json:"message"`
	} `json:"details"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

// dataMap returns the envelope data as an object.
func dataMap(t *testing.T, env envelope) map[string]any {
	t.Helper()
	m, ok := env.Data.(map[string]any)
	require.True(t, ok, "response data is not an object")
	return m
}
