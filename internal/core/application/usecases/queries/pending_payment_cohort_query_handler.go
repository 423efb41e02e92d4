package queries

import (
	"context"

	"marketplace/internal/core/domain/model/payment"

	"gorm.io/gorm"
)

type PendingPaymentCohortQueryHandler struct {
	db *gorm.DB
}

func NewPendingPaymentCohortQueryHandler(db *gorm.DB) PendingPaymentCohortQueryHandler {
	return PendingPaymentCohortQueryHandler{db: db}
}

// Handle explodes each order's lines and keeps only lines whose product,
// customer, user and shipping all resolve. Months are calendar months of
// the order date in UTC.
func (h PendingPaymentCohortQueryHandler) Handle(
	ctx context.Context,
	query PendingPaymentCohortQuery,
) ([]PendingPaymentCohortQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result := make([]PendingPaymentCohortQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.category_name AS category,
			u.name AS customer_name,
			EXTRACT(MONTH FROM o.order_date AT TIME ZONE 'UTC')::int AS order_month,
			COUNT(*) AS order_count,
			AVG(EXTRACT(EPOCH FROM (s.updated_at - o.order_date)) / 86400.0)::float8 AS avg_processing_days
		FROM orders o
		CROSS JOIN LATERAL jsonb_array_elements(o.lines) AS line(item)
		JOIN products p ON p.product_id = line.item ->> 'productid'
		JOIN role_bindings c ON c.role = 'customer' AND c.binding_id = o.customer_id
		JOIN users u ON u.user_id = c.user_id
		JOIN shippings s ON s.shipping_id = o.shipping_id
		WHERE o.payment_transaction_status = ?
			AND o.order_date >= ?
		GROUP BY category, customer_name, order_month
		HAVING COUNT(*) > 0
		ORDER BY category, customer_name, order_month
	`, payment.Pending.String(), query.Since()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row PendingPaymentCohortQueryResponse
		if err = rows.Scan(
			&row.Category,
			&row.CustomerName,
			&row.OrderMonth,
			&row.OrderCount,
			&row.AvgProcessingDays,
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
