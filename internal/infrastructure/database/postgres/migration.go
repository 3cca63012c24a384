// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"context"
	"fmt"

	"github.com/hooked-store/storefront/internal/domain/catalog"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db     *gorm.DB
	logger logrus.FieldLogger
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, logger logrus.FieldLogger) *Migration {
	return &Migration{
		db:     db,
		logger: logger,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	m.logger.Info("🔄 Running database auto-migrations...")

	models := []interface{}{
		&catalog.ProductRecord{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	m.logger.Info("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for catalog reads
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_catalog_products_category_position ON catalog_products(category, position)",
		"CREATE INDEX IF NOT EXISTS idx_catalog_products_best_seller ON catalog_products(best_seller, position)",
		"CREATE INDEX IF NOT EXISTS idx_catalog_products_price ON catalog_products(price)",
	}

	for _, stmt := range indexes {
		if err := m.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

// SeedCatalog inserts the given products when the catalog table is empty
func (m *Migration) SeedCatalog(ctx context.Context, products []catalog.Product) error {
	var count int64
	if err := m.db.WithContext(ctx).Model(&catalog.ProductRecord{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count catalog products: %w", err)
	}

	if count > 0 {
		m.logger.WithField("products", count).Info("⏭️ Catalog already seeded")
		return nil
	}

	records := make([]catalog.ProductRecord, len(products))
	for i, p := range products {
		records[i] = catalog.NewProductRecord(p, i)
	}

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&records).Error
	})
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	m.logger.WithField("products", len(records)).Info("🛍️ Seeded catalog products")
	return nil
}
