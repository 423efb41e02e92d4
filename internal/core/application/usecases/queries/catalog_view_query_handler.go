package queries

import (
	"context"

	"marketplace/internal/core/domain/model/catalog"

	"gorm.io/gorm"
)

// CatalogViewQueryHandler reads the category snapshot stored on each product,
// not the categories table.
type CatalogViewQueryHandler struct {
	db *gorm.DB
}

func NewCatalogViewQueryHandler(db *gorm.DB) CatalogViewQueryHandler {
	return CatalogViewQueryHandler{db: db}
}

func (h CatalogViewQueryHandler) Handle(
	ctx context.Context,
	query CatalogViewQuery,
) ([]CatalogViewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result := make([]CatalogViewQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT product_id, name, price, status, category_name, category_description
		FROM products
		WHERE status = ? AND category_name IN ?
		ORDER BY category_name, name, product_id
	`, catalog.Available.String(), query.Categories()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row CatalogViewQueryResponse
		if err = rows.Scan(
			&row.ProductID,
			&row.ProductName,
			&row.Price,
			&row.Status,
			&row.Category,
			&row.CategoryDescription,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
