// internal/domain/catalog/repository.go
package catalog

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ProductRecord is the database row backing a catalog product
type ProductRecord struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	Position   int       `gorm:"not null;index" json:"position"`
	Name       string    `gorm:"not null;size:255" json:"name"`
	Price      int64     `gorm:"not null" json:"price"`
	Category   string    `gorm:"not null;size:32;index" json:"category"`
	Image      string    `gorm:"size:500" json:"img"`
	BestSeller bool      `gorm:"default:false" json:"best_seller"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (ProductRecord) TableName() string {
	return "catalog_products"
}

// ToProduct converts a row to the domain record
func (r ProductRecord) ToProduct() Product {
	return Product{
		ID:         r.ID,
		Name:       r.Name,
		Price:      r.Price,
		Category:   Category(r.Category),
		Image:      r.Image,
		BestSeller: r.BestSeller,
	}
}

// NewProductRecord converts a domain product to a row at the given position
func NewProductRecord(p Product, position int) ProductRecord {
	return ProductRecord{
		ID:         p.ID,
		Position:   position,
		Name:       p.Name,
		Price:      p.Price,
		Category:   string(p.Category),
		Image:      p.Image,
		BestSeller: p.BestSeller,
	}
}

// Repository reads catalog rows from the database
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LoadAll returns every product in catalog order
func (r *Repository) LoadAll(ctx context.Context) ([]Product, error) {
	var rows []ProductRecord
	if err := r.db.WithContext(ctx).Order("position ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load catalog products: %w", err)
	}

	products := make([]Product, len(rows))
	for i, row := range rows {
		products[i] = row.ToProduct()
	}
	return products, nil
}

// Count returns the number of stored products
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ProductRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count catalog products: %w", err)
	}
	return count, nil
}

// LoadStore builds an immutable Store from the database contents
func (r *Repository) LoadStore(ctx context.Context) (*Store, error) {
	products, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return New(products)
}
