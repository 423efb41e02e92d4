package queries

import (
	"context"

	"gorm.io/gorm"
)

// OrderDetailsQueryHandler joins orders to customer, user, payment and
// shipping with direct SQL.
type OrderDetailsQueryHandler struct {
	db *gorm.DB
}

func NewOrderDetailsQueryHandler(db *gorm.DB) OrderDetailsQueryHandler {
	return OrderDetailsQueryHandler{db: db}
}

func (h OrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query OrderDetailsQuery,
) ([]OrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result := make([]OrderDetailsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.order_id,
			o.order_date,
			o.status,
			u.name,
			u.address_city,
			p.transaction_status,
			s.tracking_no,
			s.delivery_status,
			s.address_city
		FROM orders o
		JOIN role_bindings c ON c.role = 'customer' AND c.binding_id = o.customer_id
		JOIN users u ON u.user_id = c.user_id
		LEFT JOIN payments p ON p.payment_id = o.payment_id
		LEFT JOIN shippings s ON s.shipping_id = o.shipping_id
		WHERE u.address_district = ?
		ORDER BY o.order_date DESC, o.order_id DESC
	`, query.District()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row OrderDetailsQueryResponse
		if err = rows.Scan(
			&row.OrderID,
			&row.OrderDate,
			&row.OrderStatus,
			&row.CustomerName,
			&row.CustomerCity,
			&row.PaymentStatus,
			&row.TrackingNo,
			&row.ShippingStatus,
			&row.ShippingCity,
		); err != nil {
			return nil, err
		}
		row.OrderDate = row.OrderDate.UTC()
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
