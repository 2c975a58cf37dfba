package persistence

import (
	"testing"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/ledger"
	"github.com/retail/backend/internal/domain/partner"
	"github.com/retail/backend/internal/domain/pricing"
	"github.com/retail/backend/internal/domain/promotion"
	"github.com/retail/backend/internal/domain/sales"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with the full
// schema migrated. Connections are capped at one so every session sees
// the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
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
	return db
}

// seedProduct inserts a product and returns it.
func seedProduct(t *testing.T, db *gorm.DB, name string, salePrice, supplierPrice, stock int) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, "", salePrice, supplierPrice, stock)
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)
	return product
}
