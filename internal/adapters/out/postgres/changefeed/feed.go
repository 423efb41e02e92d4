// Package changefeed turns Postgres NOTIFY messages from the notify_change
// trigger into ports.Change values.
//
// The trigger publishes only {collection, operation, key}. For inserts and
// updates the feed reloads the current row, so a change may carry a newer
// state than the one that fired it. Deletes carry the key alone.
package changefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"marketplace/internal/adapters/out/postgres/catalogrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/ports"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Channel is the NOTIFY channel the trigger publishes on.
const Channel = "marketplace_changes"

const (
	minReconnectInterval = 100 * time.Millisecond
	maxReconnectInterval = 10 * time.Second
	pingInterval         = 90 * time.Second
)

var errRowGone = errors.New("row no longer exists")

type notification struct {
	Collection string `json:"collection"`
	Operation  string `json:"operation"`
	Key        string `json:"key"`
}

// PostgresChangeFeed implements ports.ChangeFeed over LISTEN/NOTIFY.
type PostgresChangeFeed struct {
	dsn    string
	db     *gorm.DB
	logger *slog.Logger
	now    func() time.Time

	readyOnce sync.Once
	ready     chan struct{}
}

// NewPostgresChangeFeed builds a feed. dsn opens the dedicated listener
// connection; db is used to reload changed rows.
func NewPostgresChangeFeed(dsn string, db *gorm.DB, logger *slog.Logger) *PostgresChangeFeed {
	return &PostgresChangeFeed{
		dsn:    dsn,
		db:     db,
		logger: logger.With("component", "change_feed"),
		now:    time.Now,
		ready:  make(chan struct{}),
	}
}

// Ready is closed once the first LISTEN has been acknowledged by the server.
func (f *PostgresChangeFeed) Ready() <-chan struct{} {
	return f.ready
}

// Run listens until ctx is done. It returns nil on cancellation and an error
// only if the initial LISTEN fails; later connection loss is retried by the
// listener. out is never closed.
func (f *PostgresChangeFeed) Run(ctx context.Context, out chan<- ports.Change) error {
	listener := pq.NewListener(f.dsn, minReconnectInterval, maxReconnectInterval, f.reportEvent)
	defer func() {
		_ = listener.Close()
	}()

	if err := listener.Listen(Channel); err != nil {
		return fmt.Errorf("listen on %s: %w", Channel, err)
	}
	f.readyOnce.Do(func() { close(f.ready) })
	f.logger.Info("listening for changes", "channel", Channel)

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := listener.Ping(); err != nil {
				f.logger.Warn("listener ping failed", "error", err)
			}
		case n := <-listener.Notify:
			if n == nil {
				// Sent after a reconnect; anything published meanwhile is lost.
				f.logger.Warn("listener reconnected, changes may have been missed")
				continue
			}

			change, err := f.decode(ctx, n.Extra)
			if errors.Is(err, errRowGone) {
				f.logger.Debug("changed row vanished before reload", "payload", n.Extra)
				continue
			}
			if err != nil {
				f.logger.Error("failed to decode change", "payload", n.Extra, "error", err)
				continue
			}

			select {
			case out <- change:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func (f *PostgresChangeFeed) reportEvent(ev pq.ListenerEventType, err error) {
	switch ev {
	case pq.ListenerEventDisconnected:
		f.logger.Warn("listener disconnected", "error", err)
	case pq.ListenerEventConnectionAttemptFailed:
		f.logger.Warn("listener connection attempt failed", "error", err)
	case pq.ListenerEventReconnected:
		f.logger.Info("listener reconnected")
	}
}

func (f *PostgresChangeFeed) decode(ctx context.Context, payload string) (ports.Change, error) {
	var n notification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		return ports.Change{}, err
	}

	change := ports.Change{
		Collection: n.Collection,
		Operation:  ports.Operation(n.Operation),
		Key:        n.Key,
		ObservedAt: f.now().UTC(),
	}

	switch change.Operation {
	case ports.OperationDelete:
		return change, nil
	case ports.OperationInsert, ports.OperationUpdate:
	default:
		return ports.Change{}, fmt.Errorf("unknown operation %q", n.Operation)
	}

	var err error
	switch change.Collection {
	case ports.CollectionProducts:
		change.Product, err = f.loadProduct(ctx, change.Key)
	case ports.CollectionOrders:
		change.Order, err = f.loadOrder(ctx, change.Key)
	default:
		err = fmt.Errorf("unknown collection %q", n.Collection)
	}
	if err != nil {
		return ports.Change{}, err
	}
	return change, nil
}

// loadProduct reads the raw row. It does not go through the domain mapping
// so that out-of-domain values reach the watchers unchanged.
func (f *PostgresChangeFeed) loadProduct(ctx context.Context, key string) (*ports.ProductDocument, error) {
	var dto catalogrepo.ProductDTO
	if err := f.db.WithContext(ctx).Take(&dto, "product_id = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errRowGone
		}
		return nil, err
	}
	return ProductDocumentFromDTO(dto), nil
}

func (f *PostgresChangeFeed) loadOrder(ctx context.Context, key string) (*ports.OrderDocument, error) {
	var dto orderrepo.OrderDTO
	if err := f.db.WithContext(ctx).Take(&dto, "order_id = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errRowGone
		}
		return nil, err
	}
	return OrderDocumentFromDTO(dto), nil
}

// ProductDocumentFromDTO copies a stored product row into the shape the
// watchers consume.
func ProductDocumentFromDTO(dto catalogrepo.ProductDTO) *ports.ProductDocument {
	return &ports.ProductDocument{
		ProductID:     dto.ProductID,
		Status:        dto.Status,
		Price:         dto.Price,
		StockQuantity: dto.StockQuantity,
	}
}

// OrderDocumentFromDTO copies a stored order row into the shape the watchers
// consume.
func OrderDocumentFromDTO(dto orderrepo.OrderDTO) *ports.OrderDocument {
	lines := make([]ports.OrderLineDocument, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		lines = append(lines, ports.OrderLineDocument{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return &ports.OrderDocument{
		OrderID:       dto.OrderID,
		CustomerID:    dto.CustomerID,
		PaymentAmount: dto.Payment.Amount,
		Lines:         lines,
	}
}

const snapshotBatchSize = 500

// Snapshot reads every product and order row. Products are reported as
// updates. Orders are append-only, so each is reported as the insert that
// created it and gets the same checks a fresh order would.
func (f *PostgresChangeFeed) Snapshot(ctx context.Context) ([]ports.Change, error) {
	observedAt := f.now().UTC()
	changes := make([]ports.Change, 0)

	var products []catalogrepo.ProductDTO
	if err := f.db.WithContext(ctx).Order("product_id").
		FindInBatches(&products, snapshotBatchSize, func(_ *gorm.DB, _ int) error {
			for _, dto := range products {
				changes = append(changes, ports.Change{
					Collection: ports.CollectionProducts,
					Operation:  ports.OperationUpdate,
					Key:        dto.ProductID,
					Product:    ProductDocumentFromDTO(dto),
					ObservedAt: observedAt,
				})
			}
			return nil
		}).Error; err != nil {
		return nil, fmt.Errorf("snapshot products: %w", err)
	}

	var orders []orderrepo.OrderDTO
	if err := f.db.WithContext(ctx).Order("order_id").
		FindInBatches(&orders, snapshotBatchSize, func(_ *gorm.DB, _ int) error {
			for _, dto := range orders {
				changes = append(changes, ports.Change{
					Collection: ports.CollectionOrders,
					Operation:  ports.OperationInsert,
					Key:        dto.OrderID,
					Order:      OrderDocumentFromDTO(dto),
					ObservedAt: observedAt,
				})
			}
			return nil
		}).Error; err != nil {
		return nil, fmt.Errorf("snapshot orders: %w", err)
	}

	return changes, nil
}
