package queries

import (
	"context"

	"marketplace/internal/core/domain/model/payment"

	"gorm.io/gorm"
)

type SalesRollupQueryHandler struct {
	db *gorm.DB
}

func NewSalesRollupQueryHandler(db *gorm.DB) SalesRollupQueryHandler {
	return SalesRollupQueryHandler{db: db}
}

// Handle sorts detail rows before subtotals within each category, and the
// per-status and grand total rows last.
func (h SalesRollupQueryHandler) Handle(
	ctx context.Context,
	query SalesRollupQuery,
) ([]SalesRollupQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result := make([]SalesRollupQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.category_name,
			o.status,
			COUNT(*) AS order_count,
			SUM(p.price * (line.item ->> 'quantity')::int) AS total_sales,
			GROUPING(p.category_name) AS category_grouping,
			GROUPING(o.status) AS status_grouping
		FROM orders o
		CROSS JOIN LATERAL jsonb_array_elements(o.lines) AS line(item)
		JOIN products p ON p.product_id = line.item ->> 'productid'
		JOIN role_bindings c ON c.role = 'customer' AND c.binding_id = o.customer_id
		WHERE o.payment_transaction_status = ?
		GROUP BY GROUPING SETS ((p.category_name, o.status), (p.category_name), (o.status), ())
		ORDER BY category_grouping, p.category_name, status_grouping, o.status
	`, payment.Completed.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row SalesRollupQueryResponse
		if err = rows.Scan(
			&row.Category,
			&row.OrderStatus,
			&row.OrderCount,
			&row.TotalSales,
			&row.CategoryGrouping,
			&row.StatusGrouping,
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
