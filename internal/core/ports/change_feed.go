package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Collections observed by the change feed.
const (
	CollectionProducts = "products"
	CollectionOrders   = "orders"
)

// Operation is the kind of committed write a Change describes.
type Operation string

const (
	OperationInsert Operation = "insert"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// Change is one committed write to products or orders.
//
// For inserts and updates exactly one of Product or Order holds the row as it
// is after the write. Deletes carry only the key. Field values are raw stored
// values and may violate domain rules; that is what the watchers look for.
type Change struct {
	Collection string
	Operation  Operation
	Key        string
	Product    *ProductDocument
	Order      *OrderDocument
	ObservedAt time.Time
}

// ProductDocument is the stored state of a product row.
type ProductDocument struct {
	ProductID     string
	Status        string
	Price         decimal.Decimal
	StockQuantity int
}

// OrderDocument is the stored state of an order row.
type OrderDocument struct {
	OrderID       string
	CustomerID    string
	PaymentAmount decimal.Decimal
	Lines         []OrderLineDocument
}

type OrderLineDocument struct {
	ProductID string
	Quantity  int
}

// ChangeFeed streams committed changes.
//
// Run sends changes to out until ctx is cancelled or the feed fails. It
// returns nil on cancellation. Run does not close out.
type ChangeFeed interface {
	Run(ctx context.Context, out chan<- Change) error
}

// ChangeSnapshot replays the current state of every watched row as
// changes. It is the sweep used when notifications may have been missed.
type ChangeSnapshot interface {
	Snapshot(ctx context.Context) ([]Change, error)
}
