package cmd

import (
	"errors"
	"log/slog"
	"time"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/changefeed"
	"marketplace/internal/adapters/out/postgres/sequencerepo"
	"marketplace/internal/adapters/out/rabbitmq"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/application/watchers"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	clock      func() time.Time

	changeFeed     *changefeed.PostgresChangeFeed
	alertPublisher *rabbitmq.AlertPublisher
	supervisor     *watchers.Supervisor
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		clock:      time.Now,
	}
}

func (c *CompositionRoot) CreateAddUserCommandHandler() commands.AddUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddUserCommandHandler(f)
}

func (c *CompositionRoot) CreateAddRoleBindingCommandHandler() commands.AddRoleBindingCommandHandler {
	var f commands.RoleBindingUoWFactory = FuncRoleBindingUoWFactory(func() commands.RoleBindingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddRoleBindingCommandHandler(f)
}

func (c *CompositionRoot) CreateAddProductCategoryCommandHandler() commands.AddProductCategoryCommandHandler {
	var f commands.CategoryUoWFactory = FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddProductCategoryCommandHandler(f)
}

func (c *CompositionRoot) CreateAddProductCommandHandler() commands.AddProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddProductCommandHandler(f)
}

func (c *CompositionRoot) CreateAddWarehouseCommandHandler() commands.AddWarehouseCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddWarehouseCommandHandler(f)
}

// CreatePlaceOrderCommandHandler mints order numbers on the root connection,
// outside the placement transaction.
func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, sequencerepo.NewGormSequenceGenerator(c.gormDB), c.clock)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGenerateInvoiceQueryHandler() queries.GenerateInvoiceQueryHandler {
	var f queries.InvoiceRepositoriesFactory = FuncInvoiceRepositoriesFactory(func() queries.InvoiceRepositories {
		return c.uowFactory.Create()
	})
	return queries.NewGenerateInvoiceQueryHandler(f)
}

func (c *CompositionRoot) CreateOrderDetailsQueryHandler() queries.OrderDetailsQueryHandler {
	return queries.NewOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePartyDirectoryQueryHandler() queries.PartyDirectoryQueryHandler {
	return queries.NewPartyDirectoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCatalogViewQueryHandler() queries.CatalogViewQueryHandler {
	return queries.NewCatalogViewQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePendingPaymentCohortQueryHandler() queries.PendingPaymentCohortQueryHandler {
	return queries.NewPendingPaymentCohortQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSalesRollupQueryHandler() queries.SalesRollupQueryHandler {
	return queries.NewSalesRollupQueryHandler(c.gormDB)
}

// CreateHandlers collects every use case served over HTTP.
func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	return httpin.Handlers{
		AddUser:            c.CreateAddUserCommandHandler(),
		AddRoleBinding:     c.CreateAddRoleBindingCommandHandler(),
		AddProductCategory: c.CreateAddProductCategoryCommandHandler(),
		AddProduct:         c.CreateAddProductCommandHandler(),
		AddWarehouse:       c.CreateAddWarehouseCommandHandler(),
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		AdvanceOrderStatus: c.CreateAdvanceOrderStatusCommandHandler(),

		GenerateInvoice:      c.CreateGenerateInvoiceQueryHandler(),
		OrderDetails:         c.CreateOrderDetailsQueryHandler(),
		PartyDirectory:       c.CreatePartyDirectoryQueryHandler(),
		CatalogView:          c.CreateCatalogViewQueryHandler(),
		PendingPaymentCohort: c.CreatePendingPaymentCohortQueryHandler(),
		SalesRollup:          c.CreateSalesRollupQueryHandler(),
	}
}

func (c *CompositionRoot) CreateServer() (*httpin.Server, error) {
	return httpin.NewServer(c.CreateHandlers(), c.clock)
}

// ChangeFeed is shared by the supervisor and the audit job.
func (c *CompositionRoot) ChangeFeed() *changefeed.PostgresChangeFeed {
	if c.changeFeed == nil {
		c.changeFeed = changefeed.NewPostgresChangeFeed(c.config.DSN(), c.gormDB, c.logger)
	}
	return c.changeFeed
}

// AlertPublishers returns the AMQP publisher when AMQP_URL is set and no
// publisher otherwise; alerts are then only logged.
func (c *CompositionRoot) AlertPublishers() ([]ports.AlertPublisher, error) {
	if !c.config.AlertsEnabled() {
		return nil, nil
	}
	if c.alertPublisher == nil {
		publisher, err := rabbitmq.NewAlertPublisher(c.config.AMQPURL, c.config.AMQPExchange, c.logger)
		if err != nil {
			return nil, err
		}
		c.alertPublisher = publisher
	}
	return []ports.AlertPublisher{c.alertPublisher}, nil
}

// Supervisor wires the three invariant watchers. The payment watcher reads
// prices outside any transaction.
func (c *CompositionRoot) Supervisor() (*watchers.Supervisor, error) {
	if c.supervisor != nil {
		return c.supervisor, nil
	}

	orderInsert, err := watchers.NewOrderInsertWatcher(c.uowFactory.Create().ProductRepository())
	if err != nil {
		return nil, err
	}
	publishers, err := c.AlertPublishers()
	if err != nil {
		return nil, err
	}

	supervisor, err := watchers.NewSupervisor(
		[]watchers.Watcher{
			watchers.NewProductStatusWatcher(),
			watchers.NewOrderDeletionWatcher(),
			orderInsert,
		},
		publishers,
		c.logger,
		c.clock,
	)
	if err != nil {
		return nil, err
	}
	c.supervisor = supervisor
	return supervisor, nil
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	supervisor, err := c.Supervisor()
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(c.ChangeFeed(), supervisor, c.config.AuditSchedule, c.logger), nil
}

// Close releases the connections opened by the root.
func (c *CompositionRoot) Close() error {
	var errList []error
	if c.alertPublisher != nil {
		errList = append(errList, c.alertPublisher.Close())
	}
	if sqlDB, err := c.gormDB.DB(); err == nil {
		errList = append(errList, sqlDB.Close())
	} else {
		errList = append(errList, err)
	}
	return errors.Join(errList...)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncRoleBindingUoWFactory func() commands.RoleBindingUoW

func (f FuncRoleBindingUoWFactory) Create() commands.RoleBindingUoW {
	return f()
}

type FuncCategoryUoWFactory func() commands.CategoryUoW

func (f FuncCategoryUoWFactory) Create() commands.CategoryUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncInvoiceRepositoriesFactory func() queries.InvoiceRepositories

func (f FuncInvoiceRepositoriesFactory) Create() queries.InvoiceRepositories {
	return f()
}
