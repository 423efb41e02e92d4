package changefeed_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/changefeed"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/suite"
)

type ChangeFeedIntegrationTestSuite struct {
	suite.Suite
	pg *pgtest.Database

	feed    *changefeed.PostgresChangeFeed
	changes chan ports.Change
	cancel  context.CancelFunc
	done    chan error
}

func (suite *ChangeFeedIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *ChangeFeedIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.feed = changefeed.NewPostgresChangeFeed(suite.pg.DSN, suite.pg.DB, logger)
	suite.changes = make(chan ports.Change, 16)
	suite.done = make(chan error, 1)

	ctx, cancel := context.WithCancel(context.Background())
	suite.cancel = cancel
	go func() { suite.done <- suite.feed.Run(ctx, suite.changes) }()

	select {
	case <-suite.feed.Ready():
	case err := <-suite.done:
		suite.FailNow("feed stopped before listening", "error: %v", err)
	case <-time.After(10 * time.Second):
		suite.FailNow("feed did not start listening")
	}
}

func (suite *ChangeFeedIntegrationTestSuite) TearDownTest() {
	suite.cancel()
	suite.Require().NoError(<-suite.done)
}

func (suite *ChangeFeedIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

// next returns the next change for collection, skipping others.
func (suite *ChangeFeedIntegrationTestSuite) next(collection string) ports.Change {
	timeout := time.After(10 * time.Second)
	for {
		select {
		case c := <-suite.changes:
			if c.Collection == collection {
				return c
			}
		case <-timeout:
			suite.FailNow("no change received", "collection %s", collection)
			return ports.Change{}
		}
	}
}

func (suite *ChangeFeedIntegrationTestSuite) TestProductChangesCarryRawRow() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.pg.SeedMarketplace(ctx))

	inserted := suite.next(ports.CollectionProducts)
	suite.Equal(ports.OperationInsert, inserted.Operation)
	suite.Equal("P001", inserted.Key)
	suite.Require().NotNil(inserted.Product)
	suite.Equal("available", inserted.Product.Status)

	suite.Require().NoError(suite.pg.DB.Exec(
		"UPDATE products SET status = 'discontinued' WHERE product_id = 'P001'").Error)

	updated := suite.next(ports.CollectionProducts)
	suite.Equal(ports.OperationUpdate, updated.Operation)
	suite.Require().NotNil(updated.Product)
	suite.Equal("discontinued", updated.Product.Status)
	suite.Equal("999.99", updated.Product.Price.StringFixed(2))
}

func (suite *ChangeFeedIntegrationTestSuite) TestOrderDeleteCarriesKeyOnly() {
	suite.Require().NoError(suite.pg.DB.Exec(`
		INSERT INTO orders (order_id, order_date, status, customer_id, shipping_id,
			payment_id, payment_amount, payment_transaction_status, lines)
		VALUES ('ORD-20250530-000001', now(), 'pending', 'C001', 'S1',
			'PAY1', 999.99, 'pending', '[{"productid":"P001","quantity":1}]')`).Error)

	inserted := suite.next(ports.CollectionOrders)
	suite.Equal(ports.OperationInsert, inserted.Operation)
	suite.Require().NotNil(inserted.Order)
	suite.Equal("C001", inserted.Order.CustomerID)
	suite.Equal([]ports.OrderLineDocument{{ProductID: "P001", Quantity: 1}}, inserted.Order.Lines)

	suite.Require().NoError(suite.pg.DB.Exec("DELETE FROM orders").Error)

	deleted := suite.next(ports.CollectionOrders)
	suite.Equal(ports.OperationDelete, deleted.Operation)
	suite.Equal("ORD-20250530-000001", deleted.Key)
	suite.Nil(deleted.Order)
}

func (suite *ChangeFeedIntegrationTestSuite) TestSnapshot() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.pg.SeedMarketplace(ctx))

	changes, err := suite.feed.Snapshot(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(changes, 1)
	suite.Equal(ports.CollectionProducts, changes[0].Collection)
	suite.Equal(50, changes[0].Product.StockQuantity)
}

func TestChangeFeedIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ChangeFeedIntegrationTestSuite))
}
