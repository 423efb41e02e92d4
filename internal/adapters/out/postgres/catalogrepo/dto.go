// Package catalogrepo persists product categories and products. A product
// row carries its own copy of the category it was created under.
package catalogrepo

import (
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CategoryDTO is the categories table row.
type CategoryDTO struct {
	CategoryID  string `gorm:"type:varchar(64);primaryKey"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null;default:''"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

// ProductDTO is the products table row. Status is deliberately left
// unconstrained in the schema; out-of-domain values are reported by the
// product status watcher.
type ProductDTO struct {
	ProductID     string              `gorm:"type:varchar(64);primaryKey"`
	Name          string              `gorm:"type:varchar(255);not null"`
	Price         decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	Category      CategorySnapshotDTO `gorm:"embedded;embeddedPrefix:category_"`
	StockQuantity int                 `gorm:"not null;check:chk_products_stock_nonnegative,stock_quantity >= 0"`
	Status        string              `gorm:"type:varchar(32);not null"`
	SellerID      string              `gorm:"type:varchar(64);not null;index"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// CategorySnapshotDTO is the category copy embedded into a product row.
type CategorySnapshotDTO struct {
	ID          string `gorm:"type:varchar(64);not null"`
	Name        string `gorm:"type:varchar(255);not null;index"`
	Description string `gorm:"type:text;not null;default:''"`
}

func categoryFromDomain(c catalog.Category) CategoryDTO {
	return CategoryDTO{
		CategoryID:  c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func categoryToDomain(dto CategoryDTO) (catalog.Category, error) {
	return catalog.NewCategory(dto.CategoryID, dto.Name, dto.Description)
}

func productFromDomain(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ProductID: p.ID(),
		Name:      p.Name(),
		Price:     p.Price().Amount(),
		Category: CategorySnapshotDTO{
			ID:          p.Category().ID(),
			Name:        p.Category().Name(),
			Description: p.Category().Description(),
		},
		StockQuantity: p.StockQuantity(),
		Status:        p.Status().String(),
		SellerID:      p.SellerID(),
	}
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	category, err := catalog.NewCategory(dto.Category.ID, dto.Category.Name, dto.Category.Description)
	if err != nil {
		return nil, err
	}

	status, err := catalog.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return catalog.NewProduct(dto.ProductID, dto.Name, price, category, dto.StockQuantity, status, dto.SellerID)
}
