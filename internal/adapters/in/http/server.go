package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/domain/model/shipping"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Use case handlers the server delegates to.
type (
	AddUserHandler interface {
		Handle(ctx context.Context, cmd commands.AddUserCommand) error
	}
	AddRoleBindingHandler interface {
		Handle(ctx context.Context, cmd commands.AddRoleBindingCommand) error
	}
	AddProductCategoryHandler interface {
		Handle(ctx context.Context, cmd commands.AddProductCategoryCommand) error
	}
	AddProductHandler interface {
		Handle(ctx context.Context, cmd commands.AddProductCommand) error
	}
	AddWarehouseHandler interface {
		Handle(ctx context.Context, cmd commands.AddWarehouseCommand) error
	}
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (order.ID, error)
	}
	AdvanceOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) (order.Status, error)
	}
	GenerateInvoiceHandler interface {
		Handle(ctx context.Context, query queries.GenerateInvoiceQuery) string
	}
	OrderDetailsHandler interface {
		Handle(ctx context.Context, query queries.OrderDetailsQuery) ([]queries.OrderDetailsQueryResponse, error)
	}
	PartyDirectoryHandler interface {
		Handle(ctx context.Context, query queries.PartyDirectoryQuery) ([]queries.PartyDirectoryQueryResponse, error)
	}
	CatalogViewHandler interface {
		Handle(ctx context.Context, query queries.CatalogViewQuery) ([]queries.CatalogViewQueryResponse, error)
	}
	PendingPaymentCohortHandler interface {
		Handle(
			ctx context.Context,
			query queries.PendingPaymentCohortQuery,
		) ([]queries.PendingPaymentCohortQueryResponse, error)
	}
	SalesRollupHandler interface {
		Handle(ctx context.Context, query queries.SalesRollupQuery) ([]queries.SalesRollupQueryResponse, error)
	}
)

// Handlers groups every use case the API exposes.
type Handlers struct {
	AddUser            AddUserHandler
	AddRoleBinding     AddRoleBindingHandler
	AddProductCategory AddProductCategoryHandler
	AddProduct         AddProductHandler
	AddWarehouse       AddWarehouseHandler
	PlaceOrder         PlaceOrderHandler
	AdvanceOrderStatus AdvanceOrderStatusHandler

	GenerateInvoice      GenerateInvoiceHandler
	OrderDetails         OrderDetailsHandler
	PartyDirectory       PartyDirectoryHandler
	CatalogView          CatalogViewHandler
	PendingPaymentCohort PendingPaymentCohortHandler
	SalesRollup          SalesRollupHandler
}

func (h Handlers) validate() error {
	var missing []error
	check := func(ok bool, name string) {
		if !ok {
			missing = append(missing, errs.NewValueIsRequiredError(name))
		}
	}
	check(h.AddUser != nil, "AddUser")
	check(h.AddRoleBinding != nil, "AddRoleBinding")
	check(h.AddProductCategory != nil, "AddProductCategory")
	check(h.AddProduct != nil, "AddProduct")
	check(h.AddWarehouse != nil, "AddWarehouse")
	check(h.PlaceOrder != nil, "PlaceOrder")
	check(h.AdvanceOrderStatus != nil, "AdvanceOrderStatus")
	check(h.GenerateInvoice != nil, "GenerateInvoice")
	check(h.OrderDetails != nil, "OrderDetails")
	check(h.PartyDirectory != nil, "PartyDirectory")
	check(h.CatalogView != nil, "CatalogView")
	check(h.PendingPaymentCohort != nil, "PendingPaymentCohort")
	check(h.SalesRollup != nil, "SalesRollup")
	return errors.Join(missing...)
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	clock    func() time.Time
}

// NewServer creates a new HTTP server with the required command and query
// handlers. clock supplies "now" for the pending-payment cohort report.
func NewServer(handlers Handlers, clock func() time.Time) (*Server, error) {
	if err := handlers.validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = time.Now
	}
	return &Server{handlers: handlers, clock: clock}, nil
}

var _ ServerInterface = (*Server)(nil)

// bind decodes the body into dst and runs the struct validator. The
// returned error is the message for a 400 response.
func bind(ctx echo.Context, dst any) error {
	if err := ctx.Bind(dst); err != nil {
		return errors.New("Invalid request body")
	}
	if err := ctx.Validate(dst); err != nil {
		return errors.New("Invalid request body: " + err.Error())
	}
	return nil
}

func toAddress(a Address) (kernel.Address, error) {
	return kernel.NewAddress(a.Street, a.City, a.District)
}

// AddUser handles POST /api/v1/users.
func (s *Server) AddUser(ctx echo.Context) error {
	var body NewUser
	if err := bind(ctx, &body); err != nil {
		return badRequest(ctx, err.Error())
	}

	role, err := user.ParseRole(body.Role)
	if err != nil {
		return writeError(ctx, err)
	}
	address, err := toAddress(body.Address)
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewAddUserCommand(body.UserID, body.Name, body.Email, body.Contact, address, role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.AddUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// AddCustomer handles POST /api/v1/customers.
func (s *Server) AddCustomer(ctx echo.Context) error {
	return s.addRoleBinding(ctx, user.Customer)
}

// AddSeller handles POST /api/v1/sellers.
func (s *Server) AddSeller(ctx echo.Context) error {
	return s.addRoleBinding(ctx, user.Seller)
}

// AddEmployee handles POST /api/v1/employees.
func (s *Server) AddEmployee(ctx echo.Context) error {
	return s.addRoleBinding(ctx, user.Employee)
}

func (s *Server) addRoleBinding(ctx echo.Context, role user.Role) error {
	var body NewRoleBinding
	if err := bind(ctx, &body); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAddRoleBindingCommand(role, body.ID, body.UserID)
	if err != nil {
		return writeError(ctx, err)
	}
	if err = s.handlers.AddRoleBinding.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// AddProductCategory handles POST /api/v1/categories.
func (s *Server) AddProductCategory(ctx echo.Context) error {
	var body NewCategory
	if err := bind(ctx, &body); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAddProductCategoryCommand(body.CategoryID, body.Name, body.Description)
	if err != nil {
		return writeError(ctx, err)
	}
	if err = s.handlers.AddProductCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// AddProduct handles POST /api/v1/products.
func (s *Server) AddProduct(ctx echo.Context) error {
	var body NewProduct
	if err := bind(ctx, &body); err != nil {
		return badRequest(ctx, err.Error())
	}

	price, err := kernel.NewMoney(body.Price)
	if err != nil {
		return writeError(ctx, err)
	}
	status, err := catalog.ParseStatus(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewAddProductCommand(
		body.ProductID, body.Name, price, body.CategoryID, body.StockQuantity, status, body.SellerID,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.AddProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// AddWarehouse handles POST /api/v1/warehouses.
func (s *Server) AddWarehouse(ctx echo.Context) error {
	var body NewWarehouse
	if err := bind(ctx, &body); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAddWarehouseCommand(body.WarehouseID, body.Location, body.Capacity, body.EmployeeID)
	if err != nil {
		return writeError(ctx, err)
	}
	if err = s.handlers.AddWarehouse.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body NewOrder
	if err := bind(ctx, &body); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := s.placeOrderCommand(body)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, PlacedOrder{OrderID: id.String()})
}

func (s *Server) placeOrderCommand(body NewOrder) (commands.PlaceOrderCommand, error) {
	amount, err := kernel.NewMoney(body.Payment.Amount)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}
	payStatus, err := payment.ParseStatus(body.Payment.TransactionStatus)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}
	pay, err := payment.NewPayment(body.Payment.PaymentID, amount, payStatus)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	shipStatus, err := shipping.ParseStatus(body.Shipping.DeliveryStatus)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}
	address, err := toAddress(body.Shipping.Address)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}
	ship, err := shipping.NewShipping(body.Shipping.ShippingID, body.Shipping.TrackingNo, shipStatus, address)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	return commands.NewPlaceOrderCommand(body.CustomerID, body.ProductIDs, body.Quantities, pay, ship)
}

// AdvanceOrderStatus handles POST /api/v1/orders/{orderId}/advance.
func (s *Server) AdvanceOrderStatus(ctx echo.Context, orderID string) error {
	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	status, err := s.handlers.AdvanceOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, OrderStatus{OrderID: orderID, Status: status.String()})
}

// GenerateInvoice handles GET /api/v1/invoices/{orderIdPrefix}. The body is
// always text: either the invoice or an "Error..." line.
func (s *Server) GenerateInvoice(ctx echo.Context, orderIDPrefix string) error {
	query, err := queries.NewGenerateInvoiceQuery(orderIDPrefix)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.String(http.StatusOK, s.handlers.GenerateInvoice.Handle(ctx.Request().Context(), query))
}

// GetOrderDetails handles GET /api/v1/reports/order-details.
func (s *Server) GetOrderDetails(ctx echo.Context, params GetOrderDetailsParams) error {
	query, err := queries.NewOrderDetailsQuery(params.District)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.handlers.OrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, rows)
}

// GetPartyDirectory handles GET /api/v1/reports/parties.
func (s *Server) GetPartyDirectory(ctx echo.Context, params GetPartyDirectoryParams) error {
	var cities []string
	if params.Cities != nil {
		cities = *params.Cities
	}

	rows, err := s.handlers.PartyDirectory.Handle(ctx.Request().Context(), queries.NewPartyDirectoryQuery(cities))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, rows)
}

// GetCatalogView handles GET /api/v1/reports/catalog.
func (s *Server) GetCatalogView(ctx echo.Context, params GetCatalogViewParams) error {
	var categories []string
	if params.Categories != nil {
		categories = *params.Categories
	}

	rows, err := s.handlers.CatalogView.Handle(ctx.Request().Context(), queries.NewCatalogViewQuery(categories))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, rows)
}

// GetPendingPaymentCohorts handles GET /api/v1/reports/pending-payment-cohorts.
func (s *Server) GetPendingPaymentCohorts(ctx echo.Context, params GetPendingPaymentCohortsParams) error {
	months := 0
	if params.Months != nil {
		months = *params.Months
	}
	query, err := queries.NewPendingPaymentCohortQuery(s.clock(), months)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.handlers.PendingPaymentCohort.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, rows)
}

// GetSalesRollup handles GET /api/v1/reports/sales-rollup.
func (s *Server) GetSalesRollup(ctx echo.Context) error {
	rows, err := s.handlers.SalesRollup.Handle(ctx.Request().Context(), queries.NewSalesRollupQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, rows)
}
