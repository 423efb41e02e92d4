package queries

import (
	"context"

	"gorm.io/gorm"
)

type PartyDirectoryQueryHandler struct {
	db *gorm.DB
}

func NewPartyDirectoryQueryHandler(db *gorm.DB) PartyDirectoryQueryHandler {
	return PartyDirectoryQueryHandler{db: db}
}

// Handle returns the union of both roles. A binding only counts when the
// user it points at carries the same role.
func (h PartyDirectoryQueryHandler) Handle(
	ctx context.Context,
	query PartyDirectoryQuery,
) ([]PartyDirectoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result := make([]PartyDirectoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT b.binding_id AS id, u.name AS name, u.email, u.contact,
			'Customer' AS user_type, u.address_city AS city
		FROM role_bindings b
		JOIN users u ON u.user_id = b.user_id
		WHERE b.role = 'customer' AND u.role = 'customer' AND u.address_city IN ?
		UNION ALL
		SELECT b.binding_id AS id, u.name AS name, u.email, u.contact,
			'Seller' AS user_type, u.address_city AS city
		FROM role_bindings b
		JOIN users u ON u.user_id = b.user_id
		WHERE b.role = 'seller' AND u.role = 'seller' AND u.address_city IN ?
		ORDER BY city, name, id
	`, query.Cities(), query.Cities()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row PartyDirectoryQueryResponse
		if err = rows.Scan(&row.ID, &row.Name, &row.Email, &row.Contact, &row.UserType, &row.City); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
