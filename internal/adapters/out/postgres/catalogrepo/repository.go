package catalogrepo

import (
	"context"

	"marketplace/internal/adapters/out/postgres/dberr"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// GormCategoryRepository implements ports.CategoryRepository using GORM.
type GormCategoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormCategoryRepository(db *gorm.DB, tracker aggregateTracker) *GormCategoryRepository {
	return &GormCategoryRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCategoryRepository) Add(ctx context.Context, c catalog.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate(err, "categories", dto.CategoryID)
	}

	r.tracker.TrackAggregate("categories/"+c.ID(), c)
	return nil
}

func (r *GormCategoryRepository) Get(ctx context.Context, categoryID string) (catalog.Category, error) {
	var dto CategoryDTO
	if err := r.db.WithContext(ctx).Take(&dto, "category_id = ?", categoryID).Error; err != nil {
		return catalog.Category{}, dberr.Translate(err, "category", categoryID)
	}

	return categoryToDomain(dto)
}

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormProductRepository) Add(ctx context.Context, aggregate *catalog.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate(err, "products", dto.ProductID)
	}

	r.tracker.TrackAggregate("products/"+aggregate.ID(), aggregate)
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, productID string) (*catalog.Product, error) {
	return r.get(r.db.WithContext(ctx), productID)
}

// GetForUpdate takes a row lock on the product. Outside a transaction the
// lock is released as soon as the statement completes.
func (r *GormProductRepository) GetForUpdate(ctx context.Context, productID string) (*catalog.Product, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), productID)
}

func (r *GormProductRepository) get(db *gorm.DB, productID string) (*catalog.Product, error) {
	var dto ProductDTO
	if err := db.Take(&dto, "product_id = ?", productID).Error; err != nil {
		return nil, dberr.Translate(err, "product", productID)
	}

	return productToDomain(dto)
}

// AdjustStock applies delta with a single guarded UPDATE, so concurrent
// callers can never drive stock below zero.
func (r *GormProductRepository) AdjustStock(ctx context.Context, productID string, delta int) error {
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("product_id = ? AND stock_quantity + ? >= 0", productID, delta).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", delta))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 1 {
		return nil
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).Select("stock_quantity").Take(&dto, "product_id = ?", productID).Error; err != nil {
		return dberr.Translate(err, "product", productID)
	}
	return errs.NewInsufficientStockError(productID, -delta, dto.StockQuantity)
}
