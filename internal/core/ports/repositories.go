package ports

import (
	"context"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/domain/model/shipping"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/model/warehouse"
)

// Every repository follows the same contract:
//   - Add fails with errs.DuplicateKeyError when the natural key is taken
//   - Get fails with errs.ObjectNotFoundError when nothing matches the key
//   - reads see committed data, or the uncommitted writes of the enclosing
//     transaction

type UserRepository interface {
	Add(ctx context.Context, u *user.User) error
	Get(ctx context.Context, userID string) (*user.User, error)
}

// RoleBindingRepository stores customers, sellers and employees. Each role has
// its own key space.
type RoleBindingRepository interface {
	Add(ctx context.Context, b *user.Binding) error
	Get(ctx context.Context, role user.Role, id string) (*user.Binding, error)
}

type CategoryRepository interface {
	Add(ctx context.Context, c catalog.Category) error
	Get(ctx context.Context, categoryID string) (catalog.Category, error)
}

// ProductRepository is the only repository with an in-place update, and it
// is limited to stock.
type ProductRepository interface {
	Add(ctx context.Context, p *catalog.Product) error
	Get(ctx context.Context, productID string) (*catalog.Product, error)

	// GetForUpdate reads the product and locks its row until the enclosing
	// transaction ends.
	GetForUpdate(ctx context.Context, productID string) (*catalog.Product, error)

	// AdjustStock adds delta to the stock quantity in one statement. A change
	// that would make stock negative fails with errs.InsufficientStockError
	// and changes nothing.
	AdjustStock(ctx context.Context, productID string, delta int) error
}

type PaymentRepository interface {
	Add(ctx context.Context, p payment.Payment) error
	Get(ctx context.Context, paymentID string) (payment.Payment, error)
}

type ShippingRepository interface {
	Add(ctx context.Context, s *shipping.Shipping) error
	Get(ctx context.Context, shippingID string) (*shipping.Shipping, error)
	Exists(ctx context.Context, shippingID string) (bool, error)
}

// OrderRepository has no delete: orders are append-only.
type OrderRepository interface {
	Add(ctx context.Context, o *order.Order) error
	Get(ctx context.Context, id order.ID) (*order.Order, error)

	// FindByPrefix returns every order whose id starts with prefix, oldest first.
	FindByPrefix(ctx context.Context, prefix string) ([]*order.Order, error)

	// UpdateStatus persists o.Status(). No other column is written.
	UpdateStatus(ctx context.Context, o *order.Order) error
}

type WarehouseRepository interface {
	Add(ctx context.Context, w *warehouse.Warehouse) error
	Get(ctx context.Context, warehouseID string) (*warehouse.Warehouse, error)
}
