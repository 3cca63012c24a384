package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&ProductRecord{}))

	return db
}

func TestRepository_LoadStoreKeepsPositionOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	products := DefaultProducts()
	// insert in reverse so ordering must come from position
	for i := len(products) - 1; i >= 0; i-- {
		rec := NewProductRecord(products[i], i)
		require.NoError(t, db.Create(&rec).Error)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(products)), count)

	store, err := repo.LoadStore(ctx)
	require.NoError(t, err)
	assert.Equal(t, products, store.Products())
}

func TestRepository_LoadStoreRejectsBadRows(t *testing.T) {
	db := setupTestDB(t)
	rec := ProductRecord{ID: "x-01", Name: "Mystery", Price: 100, Category: "shoes"}
	require.NoError(t, db.Create(&rec).Error)

	_, err := NewRepository(db).LoadStore(context.Background())
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestRepository_EmptyTable(t *testing.T) {
	db := setupTestDB(t)

	products, err := NewRepository(db).LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}
