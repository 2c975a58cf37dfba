package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockProductRepository creates a GormProductRepository against a
// mocked postgres connection, for asserting generated SQL.
func newMockProductRepository(t *testing.T) (*GormProductRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return NewGormProductRepository(gormDB), mock, mockDB
}

func TestGormProductRepository_FindByIDForUpdate(t *testing.T) {
	t.Run("locks the row on postgres", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name", "amount_to_sale", "amount_supplier", "stock"}).
			AddRow(7, "Cola", 25, 18, 10)

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY .* LIMIT .* FOR UPDATE`).
			WithArgs(7, 1).
			WillReturnRows(rows)

		product, err := repo.FindByIDForUpdate(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, uint(7), product.ID)
		assert.Equal(t, 10, product.Stock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing rows to not found", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY .* LIMIT .* FOR UPDATE`).
			WithArgs(42, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByIDForUpdate(context.Background(), 42)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_FindLowStock(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormProductRepository(db)

	seedProduct(t, db, "Zucchini", 10, 5, 2)
	seedProduct(t, db, "Apple", 10, 5, 2)
	seedProduct(t, db, "Milk", 10, 5, 0)
	seedProduct(t, db, "Bread", 10, 5, 5)
	seedProduct(t, db, "Cheese", 10, 5, 12)

	got, err := repo.FindLowStock(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 3, "threshold is exclusive")

	// Ordered by stock ascending, then name ascending.
	assert.Equal(t, "Milk", got[0].Name)
	assert.Equal(t, "Apple", got[1].Name)
	assert.Equal(t, "Zucchini", got[2].Name)
}

func TestGormProductRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormProductRepository(db)

	product := seedProduct(t, db, "Cola", 25, 18, 10)
	require.NoError(t, repo.Delete(ctx, product.ID))
	assert.ErrorIs(t, repo.Delete(ctx, product.ID), shared.ErrNotFound)
}
