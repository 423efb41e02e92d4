package watchers_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/changefeed"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/application/watchers"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/suite"
)

// SupervisorIntegrationTestSuite drives the watchers from real Postgres
// notifications.
type SupervisorIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory *postgres_adapter.GormUnitOfWorkFactory

	alerts      <-chan ports.Alert
	unsubscribe func()
	cancel      context.CancelFunc
	done        chan error
}

func (suite *SupervisorIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(pg.DB)
}

func (suite *SupervisorIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *SupervisorIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.Require().NoError(suite.pg.SeedMarketplace(suite.T().Context()))

	insert, err := watchers.NewOrderInsertWatcher(suite.factory.Create().ProductRepository())
	suite.Require().NoError(err)
	supervisor, err := watchers.NewSupervisor(
		[]watchers.Watcher{watchers.NewProductStatusWatcher(), watchers.NewOrderDeletionWatcher(), insert},
		nil,
		discardLogger(),
		time.Now,
	)
	suite.Require().NoError(err)
	suite.alerts, suite.unsubscribe = supervisor.Subscribe(16)

	feed := changefeed.NewPostgresChangeFeed(suite.pg.DSN, suite.pg.DB, discardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	suite.cancel = cancel
	suite.done = make(chan error, 1)
	go func() { suite.done <- supervisor.Run(ctx, feed) }()

	select {
	case <-feed.Ready():
	case err := <-suite.done:
		suite.FailNow("supervisor stopped before listening", "error: %v", err)
	case <-time.After(10 * time.Second):
		suite.FailNow("feed did not start listening")
	}
}

func (suite *SupervisorIntegrationTestSuite) TearDownTest() {
	suite.cancel()
	suite.Require().NoError(<-suite.done)
	suite.unsubscribe()
}

func (suite *SupervisorIntegrationTestSuite) nextAlert() ports.Alert {
	select {
	case a := <-suite.alerts:
		return a
	case <-time.After(10 * time.Second):
		suite.FailNow("no alert received")
		return ports.Alert{}
	}
}

func (suite *SupervisorIntegrationTestSuite) addOrder(id, amount string, quantity int) {
	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	m, err := kernel.MoneyFromString(amount)
	suite.Require().NoError(err)
	pay, err := payment.NewPayment("PAY-"+id, m, payment.Pending)
	suite.Require().NoError(err)
	orderID, err := order.ParseID(id)
	suite.Require().NoError(err)
	lines, err := order.NewLineItems([]string{"P001"}, []int{quantity})
	suite.Require().NoError(err)
	o, err := order.NewOrder(orderID, time.Now(), "C001", pay, "S-"+id, lines)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *SupervisorIntegrationTestSuite) TestOrderDeletionRaisesImmutabilityAlert() {
	suite.addOrder("ORD-20250530-000001", "999.99", 1)

	suite.Require().NoError(suite.pg.DB.Exec(
		"DELETE FROM orders WHERE order_id = ?", "ORD-20250530-000001",
	).Error)

	alert := suite.nextAlert()
	suite.Equal(ports.AlertImmutabilityViolation, alert.Kind)
	suite.Equal("ORD-20250530-000001", alert.Key)
	suite.Contains(alert.Message(), "orders are append-only")
}

func (suite *SupervisorIntegrationTestSuite) TestMispricedOrderRaisesPaymentAlert() {
	suite.addOrder("ORD-20250530-000002", "999.99", 3)

	alert := suite.nextAlert()
	suite.Equal(ports.AlertPaymentMismatch, alert.Kind)
	suite.Equal("order_insert", alert.Source)
	suite.Equal("ORD-20250530-000002", alert.Key)
}

func (suite *SupervisorIntegrationTestSuite) TestOutOfDomainStatusRaisesDomainAlert() {
	suite.Require().NoError(suite.pg.DB.Exec(
		"UPDATE products SET status = 'discontinued' WHERE product_id = 'P001'",
	).Error)

	alert := suite.nextAlert()
	suite.Equal(ports.AlertDomainViolation, alert.Kind)
	suite.Equal("P001", alert.Key)
	suite.Contains(alert.Message(), `"discontinued"`)
}

func TestSupervisorIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SupervisorIntegrationTestSuite))
}
